package mqtt

import (
	"context"
	"io"
	"sync"
)

// Topic suffixes of a bridge named NAME:
//
//	NAME/cmd   requests from clients
//	NAME/msg   replies and status from the bridge
//	NAME/meta  retained description of the bridge, empty when offline
const (
	CmdTopic  = "cmd"
	MsgTopic  = "msg"
	MetaTopic = "meta"
)

// ReadWriter implements PacketReadWriter.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh chan []byte
	doneCh   chan struct{}
	doneOnce sync.Once
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		doneCh:   make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForBridge sets topics used by the bridge:
// SubTopic = name/cmd
// PubTopic = name/msg
func (p *ReadWriter) ForBridge(name string) *ReadWriter {
	return p.WithTopics(name+"/"+CmdTopic, name+"/"+MsgTopic)
}

// ForClient sets topics used by a client of the bridge:
// SubTopic = name/msg
// PubTopic = name/cmd
func (p *ReadWriter) ForClient(name string) *ReadWriter {
	return p.WithTopics(name+"/"+MsgTopic, name+"/"+CmdTopic)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.doneCh:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Run implements Runnable.
func (p *ReadWriter) Run(ctx context.Context) error {
	sub := p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	defer sub.Close()
	defer p.Close()
	<-ctx.Done()
	return ctx.Err()
}

// Close stops ReadPacket.
func (p *ReadWriter) Close() error {
	p.doneOnce.Do(func() { close(p.doneCh) })
	return nil
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.doneCh:
	}
}
