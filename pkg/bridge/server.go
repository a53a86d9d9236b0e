package bridge

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/bridge/stream"
	ws "github.com/robotalks/maestro.go/pkg/bridge/websocket"
	fx "github.com/robotalks/maestro.go/pkg/framework"
)

// Server serves clients over any PacketReadWriter and publishes status
// to all of them.
type Server struct {
	Servo Servo
	Hub   Hub
}

// NewServer creates a Server.
func NewServer(servo Servo) *Server {
	return &Server{Servo: servo}
}

// Publish implements Publisher.
func (s *Server) Publish(msg msgs.Message) error {
	return s.Hub.Publish(msg)
}

// ServeConn serves a client until the connection fails or ctx is done.
func (s *Server) ServeConn(ctx context.Context, rw PacketReadWriter) error {
	pipe := NewPipe(rw, s.Servo)
	detach := s.Hub.Attach(pipe)
	defer detach()
	return pipe.Run(ctx)
}

// ServeListener accepts stream clients from ln.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	return fx.RunWithContextCloser(ctx, ln, func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return err
			}
			go func() {
				glog.Infof("stream client %s connected", conn.RemoteAddr())
				if err := s.ServeConn(ctx, stream.New(conn)); err != nil && ctx.Err() == nil {
					glog.Warningf("stream client %s: %v", conn.RemoteAddr(), err)
				}
				glog.Infof("stream client %s disconnected", conn.RemoteAddr())
			}()
		}
	})
}

// WebsocketHandler serves websocket clients.
func (s *Server) WebsocketHandler(ctx context.Context) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		conn.PayloadType = websocket.BinaryFrame
		addr := conn.Request().RemoteAddr
		glog.Infof("websocket client %s connected", addr)
		if err := s.ServeConn(ctx, ws.New(conn)); err != nil && ctx.Err() == nil {
			glog.V(1).Infof("websocket client %s: %v", addr, err)
		}
		glog.Infof("websocket client %s disconnected", addr)
	})
}

// ServeHTTP runs an HTTP server until ctx is done.
func ServeHTTP(ctx context.Context, addr string, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	glog.Infof("HTTP listening on %s", ln.Addr())
	server := &http.Server{Handler: handler}
	return fx.RunWithContextCloser(ctx, server, func() error {
		return server.Serve(ln)
	})
}
