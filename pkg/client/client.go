// Package client sends one batch to a bwtnet server and returns its reply.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"

	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/aretw0/bwtnet/pkg/protocol"
)

// Client talks to one server address. Each Exchange uses a fresh connection.
type Client struct {
	addr   string
	dialer net.Dialer
	logger *slog.Logger
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for host:port.
// It returns domain.ErrInvalidPort for ports outside 1..65535.
func New(host string, port int, opts ...Option) (*Client, error) {
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPort, port)
	}

	c := &Client{addr: net.JoinHostPort(host, strconv.Itoa(port))}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}

// Addr returns the host:port the client dials.
func (c *Client) Addr() string {
	return c.addr
}

// Exchange sends payload as one framed request and returns the unframed reply.
// An unresolvable host is reported as domain.ErrInvalidAddress.
func (c *Client) Exchange(ctx context.Context, payload string) (string, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
		}
		return "", fmt.Errorf("failed to connect to %s: %w", c.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return "", fmt.Errorf("failed to set deadline: %w", err)
		}
	}

	c.logger.Debug("sending batch", "addr", c.addr, "bytes", len(payload))
	if err := protocol.WriteFrame(conn, []byte(payload)); err != nil {
		return "", fmt.Errorf("failed to send batch: %w", err)
	}

	reply, err := protocol.ReadFrame(conn)
	if err != nil {
		return "", fmt.Errorf("failed to read reply: %w", err)
	}
	c.logger.Debug("reply received", "addr", c.addr, "bytes", len(reply))

	return string(reply), nil
}
