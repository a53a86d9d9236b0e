package params

import (
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/maestro.go/pkg/cli/sh"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

var (
	// ParamCmd shows the address of a device parameter.
	ParamCmd = ishell.Cmd{
		Name: "param",
		Help: "[NAME]",
		Func: func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			if len(c.Args) == 0 {
				c.Println(strings.Join(maestro.Parameters.Names(), "\n"))
				return
			}
			addr, err := s.Registry.AddressOf(strings.ToUpper(c.Args[0]))
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, addr)
		},
	}

	// ServoParamCmd shows the address of a per channel parameter.
	ServoParamCmd = ishell.Cmd{
		Name: "servo.param",
		Help: "CH [FIELD]",
		Func: func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			args, ok := sh.IntArgs(c, "CH")
			if !ok {
				return
			}
			if len(c.Args) < 2 {
				for _, field := range maestro.ServoFields.Names() {
					addr, err := s.Registry.ServoAddressOf(args[0], field)
					if err != nil {
						c.Err(err)
						return
					}
					c.Printf("%s %s\n", field, addr)
				}
				return
			}
			addr, err := s.Registry.ServoAddressOf(args[0], strings.ToUpper(c.Args[1]))
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, addr)
		},
	}

	// RangeCmd shows or sets the range of normalized targets of a channel.
	RangeCmd = ishell.Cmd{
		Name: "range",
		Help: "CH [MIN MAX]",
		Func: sh.MustBeLocal(func(c *ishell.Context) {
			ctl := sh.ShellFrom(c).Controller
			args, ok := sh.IntArgs(c, "CH")
			if !ok {
				return
			}
			if len(c.Args) > 1 {
				if args, ok = sh.IntArgs(c, "CH", "MIN", "MAX"); !ok {
					return
				}
				if err := ctl.SetRange(args[0], maestro.Range{Min: args[1], Max: args[2]}); err != nil {
					c.Err(err)
					return
				}
			} else if err := ctl.Registry.CheckChannel(args[0]); err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, ctl.Range(args[0]))
		}),
	}

	// OpcodesCmd lists the command opcodes.
	OpcodesCmd = ishell.Cmd{
		Name: "opcodes",
		Help: "",
		Func: func(c *ishell.Context) {
			for _, v := range maestro.Opcodes.Values() {
				op := maestro.Opcode(v)
				spec, _ := maestro.SpecOf(op)
				c.Println(fmt.Sprintf("0x%02x %-44s operands=%d reply=%d", v, op, spec.Operands, spec.Response))
			}
		},
	}
)

func init() {
	sh.AddCmds(
		&ParamCmd,
		&ServoParamCmd,
		&RangeCmd,
		&OpcodesCmd,
	)
}
