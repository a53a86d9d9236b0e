package bridge

import (
	"context"
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	fx "github.com/robotalks/maestro.go/pkg/framework"
)

// Pipe serves Requests received from a PacketReadWriter.
type Pipe struct {
	ReadWriter PacketReadWriter
	Servo      Servo

	sendLock sync.Mutex
}

// NewPipe creates a Pipe with given PacketReadWriter.
func NewPipe(rw PacketReadWriter, servo Servo) *Pipe {
	return &Pipe{ReadWriter: rw, Servo: servo}
}

// Send sends a message.
func (p *Pipe) Send(msg msgs.Message) error {
	pkt, err := msgs.Encode(msg)
	if err != nil {
		return err
	}
	return p.WritePacket(pkt)
}

// WritePacket implements PacketWriter, so a Pipe can be attached to a Hub.
func (p *Pipe) WritePacket(pkt []byte) error {
	p.sendLock.Lock()
	defer p.sendLock.Unlock()
	return p.ReadWriter.WritePacket(pkt)
}

// Run implements Runnable.
func (p *Pipe) Run(ctx context.Context) error {
	if closer, ok := p.ReadWriter.(io.Closer); ok {
		return fx.RunWithContextCloser(ctx, closer, p.serve)
	}
	return fx.RunWithContext(ctx, p.serve)
}

func (p *Pipe) serve() error {
	for {
		pkt, err := p.ReadWriter.ReadPacket()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		msg, err := msgs.Decode(pkt)
		if err != nil {
			glog.Warningf("drop bad packet: %v", err)
			continue
		}
		req, ok := msg.(*msgs.Request)
		if !ok {
			glog.V(1).Infof("ignore message kind %d", msg.Kind())
			continue
		}
		reply := Execute(p.Servo, req)
		if glog.V(2) {
			glog.Infof("REQ %s => %s", req.String(), reply.String())
		}
		if err = p.Send(reply); err != nil {
			return err
		}
	}
}
