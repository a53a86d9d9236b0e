package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge"
	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell *ishell.Shell
	// Exec runs servo commands, locally or on a bridge.
	Exec bridge.Executor
	// Controller is set when the device is attached directly.
	Controller *maestro.Controller
	// Registry resolves parameter addresses.
	Registry maestro.Registry
}

const shellKey = "$shell"

var (
	// flags

	evalOnly   bool
	outputJSON bool

	commands []*ishell.Cmd
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(exec bridge.Executor, registry maestro.Registry) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:    ishell.New(),
		Exec:     exec,
		Registry: registry,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("maestro > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// NewLocal creates a shell operating a directly attached controller.
func NewLocal(ctl *maestro.Controller) *Shell {
	s := New(&bridge.Local{Servo: ctl}, ctl.Registry)
	s.Controller = ctl
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeLocal wraps command func requires a directly attached controller.
func MustBeLocal(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Controller == nil {
			c.Err(fmt.Errorf("only available with a local device"))
			return
		}
		fn(c)
	}
}

// Print prints v as JSON or with fmt.
func Print(c *ishell.Context, v interface{}) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(v)
}

// DoRequest runs a request and prints the result.
func DoRequest(c *ishell.Context, req *msgs.Request) (*msgs.Reply, error) {
	s := ShellFrom(c)
	reply, err := s.Exec.Do(context.Background(), req)
	if err == nil {
		err = reply.Err()
	}
	if err != nil {
		c.Err(err)
		return nil, err
	}
	if s.OutputJSON {
		out, err := json.Marshal(reply)
		if err != nil {
			c.Err(err)
			return nil, err
		}
		c.Println(string(out))
		return reply, nil
	}
	c.Println(FormatReply(req.Command, reply))
	return reply, nil
}

// FormatReply renders a successful reply for display.
func FormatReply(command string, reply *msgs.Reply) string {
	switch command {
	case "pos":
		return strconv.Itoa(int(reply.Value))
	case "moving":
		if reply.State {
			return "moving"
		}
		return "stopped"
	case "script.status":
		if reply.State {
			return "running"
		}
		return "stopped"
	case "errors":
		return maestro.ErrorBits(reply.Value).String()
	case "raw":
		return fmt.Sprintf("% x", reply.Data)
	}
	return "OK"
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			glog.Exit(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	glog.Exit("command expected")
}

// IntArgs parses the arguments of a command as integers.
// Values must fit in 32 bits as they are sent in requests as int32.
func IntArgs(c *ishell.Context, names ...string) ([]int, bool) {
	vals, err := ParseIntArgs(c.Args, names...)
	if err != nil {
		c.Err(err)
		return nil, false
	}
	return vals, true
}

// ParseIntArgs parses the leading args as 32-bit integers named by names.
func ParseIntArgs(args []string, names ...string) ([]int, error) {
	if len(args) < len(names) {
		return nil, fmt.Errorf("%s required", names[len(args)])
	}
	vals := make([]int, len(names))
	for n, name := range names {
		val, err := strconv.ParseInt(args[n], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", name, err)
		}
		vals[n] = int(val)
	}
	return vals, nil
}
