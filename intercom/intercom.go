// Package intercom provides a loopback channel between a runner and
// the node process it spawned. The runner starts a Server on an
// ephemeral port and passes the port number to the child, which dials
// back with Open. Messages are exchanged as packets.
package intercom

import (
	"context"
	"fmt"
	"net"
	"sync"

	"golang.org/x/exp/slog"
)

// Server listens on the loopback interface for a single peer.
type Server struct {
	ln        net.Listener
	log       *slog.Logger
	connected chan struct{}

	mu   sync.Mutex
	conn net.Conn
}

// Start opens a listener on an ephemeral loopback port and begins
// accepting the peer connection in the background. A nil logger means
// slog.Default.
func Start(logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{
		ln:        ln,
		log:       logger,
		connected: make(chan struct{}),
	}
	go s.accept()
	return s, nil
}

func (s *Server) accept() {
	conn, err := s.ln.Accept()
	if err != nil {
		s.log.Debug("intercom accept failed", "error", err)
		return
	}
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	close(s.connected)
	s.log.Debug("intercom peer connected", "addr", conn.RemoteAddr())
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

// WaitConnected blocks until the peer has dialed in and returns the
// connection.
func (s *Server) WaitConnected(ctx context.Context) (net.Conn, error) {
	select {
	case <-s.connected:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.conn, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close shuts down the listener and the peer connection, if any.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.mu.Unlock()
	return s.ln.Close()
}

// Open dials an intercom server listening on the loopback interface.
func Open(ctx context.Context, port int) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp", fmt.Sprintf("127.0.0.1:%d", port))
}
