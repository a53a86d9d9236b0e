package servo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/cli/sh"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

func channelValueCmd(name, alias, valueName string) ishell.Cmd {
	return ishell.Cmd{
		Name:    name,
		Aliases: []string{alias},
		Help:    "CH " + valueName,
		Func: func(c *ishell.Context) {
			if args, ok := sh.IntArgs(c, "CH", valueName); ok {
				sh.DoRequest(c, &msgs.Request{
					Command: name,
					Channel: int32(args[0]),
					Value:   int32(args[1]),
				})
			}
		},
	}
}

var (
	// TargetCmd sets the target of a channel.
	TargetCmd = channelValueCmd("target", "t", "TARGET(0.25us)")

	// SpeedCmd sets the speed limit of a channel.
	SpeedCmd = channelValueCmd("speed", "s", "SPEED")

	// AccelCmd sets the acceleration limit of a channel.
	AccelCmd = channelValueCmd("accel", "a", "ACCEL")

	// NormCmd sets the target of a channel in [-1, 1].
	NormCmd = ishell.Cmd{
		Name:    "norm",
		Aliases: []string{"n"},
		Help:    "CH VALUE(-1..1)",
		Func: func(c *ishell.Context) {
			args, ok := sh.IntArgs(c, "CH")
			if !ok {
				return
			}
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("VALUE required"))
				return
			}
			val, err := strconv.ParseFloat(c.Args[1], 64)
			if err != nil {
				c.Err(fmt.Errorf("invalid VALUE: %v", err))
				return
			}
			sh.DoRequest(c, &msgs.Request{Command: "norm", Channel: int32(args[0]), Normalized: val})
		},
	}

	// PWMCmd sets the PWM output.
	PWMCmd = ishell.Cmd{
		Name: "pwm",
		Help: "ONTIME PERIOD",
		Func: func(c *ishell.Context) {
			if args, ok := sh.IntArgs(c, "ONTIME", "PERIOD"); ok {
				sh.DoRequest(c, &msgs.Request{Command: "pwm", Value: int32(args[0]), Param: int32(args[1])})
			}
		},
	}

	// PosCmd reads the position of a channel.
	PosCmd = ishell.Cmd{
		Name:    "pos",
		Aliases: []string{"p"},
		Help:    "CH",
		Func: func(c *ishell.Context) {
			if args, ok := sh.IntArgs(c, "CH"); ok {
				sh.DoRequest(c, &msgs.Request{Command: "pos", Channel: int32(args[0])})
			}
		},
	}

	// MovingCmd tells whether servos are moving.
	MovingCmd = ishell.Cmd{
		Name: "moving",
		Help: "",
		Func: func(c *ishell.Context) {
			sh.DoRequest(c, &msgs.Request{Command: "moving"})
		},
	}

	// ErrorsCmd reads and clears the error bits.
	ErrorsCmd = ishell.Cmd{
		Name:    "errors",
		Aliases: []string{"err"},
		Help:    "",
		Func: func(c *ishell.Context) {
			sh.DoRequest(c, &msgs.Request{Command: "errors"})
		},
	}

	// HomeCmd sends all servos home.
	HomeCmd = ishell.Cmd{
		Name: "home",
		Help: "",
		Func: func(c *ishell.Context) {
			sh.DoRequest(c, &msgs.Request{Command: "home"})
		},
	}

	// RawCmd sends an opcode with raw operand bytes.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "OPCODE|NAME [OPERAND...]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("OPCODE required"))
				return
			}
			op, err := parseOpcode(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			req := &msgs.Request{Command: "raw", Value: int32(op)}
			for _, arg := range c.Args[1:] {
				b, err := strconv.ParseUint(arg, 0, 8)
				if err != nil {
					c.Err(fmt.Errorf("invalid OPERAND %q: %v", arg, err))
					return
				}
				req.Operands = append(req.Operands, byte(b))
			}
			sh.DoRequest(c, req)
		},
	}
)

func parseOpcode(s string) (maestro.Opcode, error) {
	if v, err := strconv.ParseUint(s, 0, 8); err == nil {
		return maestro.Opcode(v), nil
	}
	return maestro.ParseOpcode(strings.ToUpper(s))
}

func init() {
	sh.AddCmds(
		&TargetCmd,
		&NormCmd,
		&SpeedCmd,
		&AccelCmd,
		&PWMCmd,
		&PosCmd,
		&MovingCmd,
		&ErrorsCmd,
		&HomeCmd,
		&RawCmd,
	)
}
