package httpapi

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

// ErrNilListener is returned by Run when no listener is supplied.
var ErrNilListener = errors.New("nil listener")

// Server is a running HTTP server attached to a caller-provided listener.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	done       chan struct{}
	err        error
}

// Run attaches the router to an already-bound listener and starts serving in the
// background. It returns as soon as the server is running; callers decide whether
// to Wait on it. Run fails if the listener is nil or already closed.
func Run(listener net.Listener) (*Server, error) {
	if err := attach(listener); err != nil {
		return nil, err
	}

	s := &Server{
		httpServer: &http.Server{Handler: NewRouter()},
		listener:   listener,
		done:       make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.err = fmt.Errorf("http serve: %w", err)
		}
	}()

	return s, nil
}

// attach checks that the listener's socket is still usable.
func attach(listener net.Listener) error {
	if listener == nil {
		return ErrNilListener
	}
	sc, ok := listener.(syscall.Conn)
	if !ok {
		return nil
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return fmt.Errorf("attach listener %s: %w", listener.Addr(), err)
	}
	if err := raw.Control(func(uintptr) {}); err != nil {
		return fmt.Errorf("attach listener %s: %w", listener.Addr(), err)
	}
	return nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Wait blocks until the server stops. It returns nil after Close.
func (s *Server) Wait() error {
	<-s.done
	return s.err
}

// Close stops the listener and drops active connections immediately.
func (s *Server) Close() error {
	err := s.httpServer.Close()
	// Serve may not have tracked the listener yet.
	_ = s.listener.Close()
	return err
}
