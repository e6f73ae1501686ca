package server

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/bwtnet/pkg/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperReplier struct{}

func (upperReplier) Reply(_ context.Context, message string) string {
	return strings.ToUpper(message)
}

func TestHandler_OneExchange(t *testing.T) {
	serverSide, clientSide := net.Pipe()
	defer clientSide.Close()

	metrics := NewMetrics(prometheus.NewRegistry())
	h := &Handler{Replier: upperReplier{}, Metrics: metrics}

	done := make(chan struct{})
	go func() {
		h.Handle(context.Background(), serverSide)
		close(done)
	}()

	require.NoError(t, protocol.WriteFrame(clientSide, []byte(">seq1\nacgt\n")))
	reply, err := protocol.ReadFrame(clientSide)
	require.NoError(t, err)
	assert.Equal(t, ">SEQ1\nACGT\n", string(reply))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after the exchange")
	}

	// The handler closed its side.
	_, err = clientSide.Read(make([]byte, 1))
	assert.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.connections))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.frameErrors))
}

func TestHandler_ClientClosesEarly(t *testing.T) {
	serverSide, clientSide := net.Pipe()

	metrics := NewMetrics(prometheus.NewRegistry())
	h := &Handler{Replier: upperReplier{}, Metrics: metrics}

	done := make(chan struct{})
	go func() {
		h.Handle(context.Background(), serverSide)
		close(done)
	}()

	_, err := clientSide.Write([]byte(">seq1\nACGT"))
	require.NoError(t, err)
	clientSide.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after the peer closed")
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.frameErrors))
}

func TestHandler_ReadTimeout(t *testing.T) {
	serverSide, clientSide := net.Pipe()
	defer clientSide.Close()

	h := &Handler{Replier: upperReplier{}, ReadTimeout: 50 * time.Millisecond}

	done := make(chan struct{})
	go func() {
		h.Handle(context.Background(), serverSide)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler ignored its read timeout")
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.Nil(t, NewMetrics(nil))
	assert.NotPanics(t, func() {
		m.connectionAccepted()
		m.frameError()
		m.requestHandled(10, 0.1)
		_ = m.Hooks()
	})
}
