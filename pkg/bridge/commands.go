package bridge

import (
	"fmt"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

// CommandFunc executes a Request and fills the Reply.
type CommandFunc func(s Servo, req *msgs.Request, reply *msgs.Reply) error

// Commands are the commands understood by a Pipe, keyed by Request.Command.
var Commands = map[string]CommandFunc{
	"target": func(s Servo, req *msgs.Request, _ *msgs.Reply) error {
		return s.SetTarget(int(req.Channel), int(req.Value))
	},
	"norm": func(s Servo, req *msgs.Request, _ *msgs.Reply) error {
		return s.SetTargetNormalized(int(req.Channel), req.Normalized)
	},
	"speed": func(s Servo, req *msgs.Request, _ *msgs.Reply) error {
		return s.SetSpeed(int(req.Channel), int(req.Value))
	},
	"accel": func(s Servo, req *msgs.Request, _ *msgs.Reply) error {
		return s.SetAcceleration(int(req.Channel), int(req.Value))
	},
	"pwm": func(s Servo, req *msgs.Request, _ *msgs.Reply) error {
		return s.SetPWM(int(req.Value), int(req.Param))
	},
	"pos": func(s Servo, req *msgs.Request, reply *msgs.Reply) error {
		pos, err := s.GetPosition(int(req.Channel))
		reply.Value = int32(pos)
		return err
	},
	"moving": func(s Servo, _ *msgs.Request, reply *msgs.Reply) (err error) {
		reply.State, err = s.GetMovingState()
		return
	},
	"errors": func(s Servo, _ *msgs.Request, reply *msgs.Reply) error {
		bits, err := s.GetErrors()
		reply.Value = int32(bits)
		return err
	},
	"home": func(s Servo, _ *msgs.Request, _ *msgs.Reply) error {
		return s.GoHome()
	},
	"script.stop": func(s Servo, _ *msgs.Request, _ *msgs.Reply) error {
		return s.StopScript()
	},
	"script.restart": func(s Servo, req *msgs.Request, _ *msgs.Reply) error {
		if req.HasParam {
			return s.RestartScriptWithParameter(int(req.Value), int(req.Param))
		}
		return s.RestartScript(int(req.Value))
	},
	"script.status": func(s Servo, _ *msgs.Request, reply *msgs.Reply) (err error) {
		reply.State, err = s.GetScriptStatus()
		return
	},
	"raw": func(s Servo, req *msgs.Request, reply *msgs.Reply) (err error) {
		if req.Value < 0 || req.Value > 0xff {
			return fmt.Errorf("%w: opcode %d", maestro.ErrValueOutOfRange, req.Value)
		}
		reply.Data, err = s.Do(maestro.Opcode(req.Value), req.Operands...)
		return
	},
}

// Execute runs a Request on s.
func Execute(s Servo, req *msgs.Request) *msgs.Reply {
	reply := &msgs.Reply{Seq: req.Seq}
	fn := Commands[req.Command]
	if fn == nil {
		reply.Error = fmt.Sprintf("unknown command %q", req.Command)
		return reply
	}
	if err := fn(s, req, reply); err != nil {
		reply.Error = err.Error()
	}
	return reply
}
