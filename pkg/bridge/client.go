package bridge

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/bridge/stream"
	ws "github.com/robotalks/maestro.go/pkg/bridge/websocket"
	fx "github.com/robotalks/maestro.go/pkg/framework"
)

// Executor runs Requests.
type Executor interface {
	Do(ctx context.Context, req *msgs.Request) (*msgs.Reply, error)
}

// Local runs Requests directly on a Servo.
type Local struct {
	Servo Servo
}

// Do implements Executor.
func (l *Local) Do(ctx context.Context, req *msgs.Request) (*msgs.Reply, error) {
	return Execute(l.Servo, req), nil
}

// DefaultRequestTimeout is the default time a Client waits for a Reply.
const DefaultRequestTimeout = time.Second

// Client sends Requests to a remote bridge.
// Run must be running to receive Replies.
type Client struct {
	ReadWriter PacketReadWriter
	Timeout    time.Duration
	// OnStatus is called with Status events from the bridge.
	OnStatus func(*msgs.Status)

	seq      uint32
	lock     sync.Mutex
	pending  map[uint32]chan *msgs.Reply
	sendLock sync.Mutex
}

// NewClient creates a Client.
func NewClient(rw PacketReadWriter) *Client {
	return &Client{
		ReadWriter: rw,
		Timeout:    DefaultRequestTimeout,
		pending:    make(map[uint32]chan *msgs.Reply),
	}
}

// Do implements Executor.
func (c *Client) Do(ctx context.Context, req *msgs.Request) (*msgs.Reply, error) {
	req.Seq = atomic.AddUint32(&c.seq, 1)
	replyCh := make(chan *msgs.Reply, 1)
	c.lock.Lock()
	c.pending[req.Seq] = replyCh
	c.lock.Unlock()
	defer func() {
		c.lock.Lock()
		delete(c.pending, req.Seq)
		c.lock.Unlock()
	}()

	pkt, err := msgs.Encode(req)
	if err != nil {
		return nil, err
	}
	c.sendLock.Lock()
	err = c.ReadWriter.WritePacket(pkt)
	c.sendLock.Unlock()
	if err != nil {
		return nil, err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case reply := <-replyCh:
		return reply, nil
	case <-timer.C:
		return nil, fmt.Errorf("request %q timeout", req.Command)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run implements Runnable.
func (c *Client) Run(ctx context.Context) error {
	if closer, ok := c.ReadWriter.(io.Closer); ok {
		return fx.RunWithContextCloser(ctx, closer, c.receive)
	}
	return fx.RunWithContext(ctx, c.receive)
}

func (c *Client) receive() error {
	for {
		pkt, err := c.ReadWriter.ReadPacket()
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
		switch m := msg.(type) {
		case *msgs.Reply:
			c.lock.Lock()
			replyCh := c.pending[m.Seq]
			c.lock.Unlock()
			if replyCh == nil {
				glog.V(1).Infof("drop reply of unknown seq %d", m.Seq)
				continue
			}
			select {
			case replyCh <- m:
			default:
			}
		case *msgs.Status:
			if c.OnStatus != nil {
				c.OnStatus(m)
			}
		}
	}
}

// Dial connects to a bridge by URL:
// ws://host:port/ws for websocket, tcp://host:port for a stream.
func Dial(bridgeURL string) (PacketReadWriter, error) {
	u, err := url.Parse(bridgeURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "ws", "wss":
		return ws.Dial(bridgeURL)
	case "tcp":
		conn, err := net.Dial("tcp", u.Host)
		if err != nil {
			return nil, err
		}
		return stream.New(conn), nil
	}
	return nil, fmt.Errorf("unsupported bridge URL %q", bridgeURL)
}
