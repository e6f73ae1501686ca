package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// Server is the connection dispatcher: it accepts connections and starts one
// goroutine per connection without waiting for it.
type Server struct {
	handler *Handler
	logger  *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	closing  atomic.Bool
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics records connection metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.handler.Metrics = m
	}
}

// WithReadTimeout bounds how long a connection may take to send its request.
// Zero, the default, waits forever.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.handler.ReadTimeout = d
	}
}

// New creates a Server answering with replier.
func New(replier Replier, opts ...Option) *Server {
	s := &Server{
		handler: &Handler{Replier: replier},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.handler.Logger = s.logger
	return s
}

// ListenAndServe binds addr and serves it.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until ln fails or Close is called.
// It returns nil after Close.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("listening", "addr", ln.Addr().String())

	ctx := context.Background()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.closing.Load() && errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}
		go s.handler.Handle(ctx, conn)
	}
}

// Addr returns the listening address, or nil before Serve is called.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close stops accepting connections. Connections already accepted run to completion.
func (s *Server) Close() error {
	s.closing.Store(true)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}
