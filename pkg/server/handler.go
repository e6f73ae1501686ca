package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/aretw0/bwtnet/pkg/protocol"
)

// Replier turns one request message into one reply payload.
// bwtnet.Converter satisfies it.
type Replier interface {
	Reply(ctx context.Context, message string) string
}

// Handler serves exactly one request/response exchange per connection.
type Handler struct {
	Replier     Replier
	Logger      *slog.Logger
	Metrics     *Metrics
	ReadTimeout time.Duration
}

// Handle reads one framed request from conn, writes the framed reply and closes
// conn on every path.
func (h *Handler) Handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	logger := h.logger().With("remote", conn.RemoteAddr().String())
	logger.Info("connection accepted")
	h.Metrics.connectionAccepted()

	if h.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(start.Add(h.ReadTimeout)); err != nil {
			logger.Warn("failed to set read deadline", "err", err)
		}
	}

	request, err := protocol.ReadFrame(conn)
	if err != nil {
		logger.Warn("request not received", "err", err)
		h.Metrics.frameError()
		return
	}

	reply := h.Replier.Reply(ctx, string(request))

	if err := protocol.WriteFrame(conn, []byte(reply)); err != nil {
		logger.Warn("failed to send reply", "err", err)
		h.Metrics.frameError()
		return
	}

	elapsed := time.Since(start)
	h.Metrics.requestHandled(len(request), elapsed.Seconds())
	logger.Info("reply sent", "request_bytes", len(request), "reply_bytes", len(reply), "duration", elapsed)
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return h.Logger
}
