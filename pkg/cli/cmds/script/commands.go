package script

import (
	"github.com/abiosoft/ishell"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/cli/sh"
)

var (
	// StopCmd stops the script.
	StopCmd = ishell.Cmd{
		Name: "script.stop",
		Help: "",
		Func: func(c *ishell.Context) {
			sh.DoRequest(c, &msgs.Request{Command: "script.stop"})
		},
	}

	// RestartCmd restarts the script at a subroutine.
	RestartCmd = ishell.Cmd{
		Name: "script.restart",
		Help: "SUB [PARAM]",
		Func: func(c *ishell.Context) {
			args, ok := sh.IntArgs(c, "SUB")
			if !ok {
				return
			}
			req := &msgs.Request{Command: "script.restart", Value: int32(args[0])}
			if len(c.Args) > 1 {
				if args, ok = sh.IntArgs(c, "SUB", "PARAM"); !ok {
					return
				}
				req.Param, req.HasParam = int32(args[1]), true
			}
			sh.DoRequest(c, req)
		},
	}

	// StatusCmd tells whether the script is running.
	StatusCmd = ishell.Cmd{
		Name: "script.status",
		Help: "",
		Func: func(c *ishell.Context) {
			sh.DoRequest(c, &msgs.Request{Command: "script.status"})
		},
	}
)

func init() {
	sh.AddCmds(
		&StopCmd,
		&RestartCmd,
		&StatusCmd,
	)
}
