package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/aretw0/bwtnet/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoServer answers every request with the request payload prefixed by "echo:".
func echoServer(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				req, err := protocol.ReadFrame(conn)
				if err != nil {
					return
				}
				_ = protocol.WriteFrame(conn, append([]byte("echo:"), req...))
			}()
		}
	}()

	return ln.Addr().String()
}

func TestNew_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 65536, 70000} {
		_, err := New("localhost", port)
		assert.ErrorIs(t, err, domain.ErrInvalidPort, "port %d", port)
	}

	c, err := New("localhost", 5500)
	require.NoError(t, err)
	assert.Equal(t, "localhost:5500", c.Addr())
}

func TestExchange(t *testing.T) {
	host, portStr, err := net.SplitHostPort(echoServer(t))
	require.NoError(t, err)
	port, err := net.LookupPort("tcp", portStr)
	require.NoError(t, err)

	c, err := New(host, port)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reply, err := c.Exchange(ctx, ">seq1\nACGT\n")
	require.NoError(t, err)
	assert.Equal(t, "echo:>seq1\nACGT\n", reply)
}

func TestExchange_InvalidAddress(t *testing.T) {
	c, err := New("host.invalid", 5500)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = c.Exchange(ctx, ">seq1\nACGT\n")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestExchange_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	c, err := New("127.0.0.1", port)
	require.NoError(t, err)

	_, err = c.Exchange(context.Background(), ">seq1\nACGT\n")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidAddress)
}
