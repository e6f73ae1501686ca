package bwtnet

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aretw0/bwtnet/internal/batch"
	"github.com/aretw0/bwtnet/pkg/bwt"
	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/aretw0/bwtnet/pkg/ports"
)

// Converter is the high-level entry point of the library.
// It turns one batch message into one reply payload. A Converter keeps no state
// between calls and is safe for concurrent use.
type Converter struct {
	parser *batch.Parser
	cache  ports.TransformCache
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Converter) {
		c.hooks = hooks
	}
}

// WithCache makes the Converter consult cache before running a transform.
func WithCache(cache ports.TransformCache) Option {
	return func(c *Converter) {
		c.cache = cache
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New initializes a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	c.parser = batch.NewParser(
		batch.WithTransformer(c.transform),
		batch.WithLifecycleHooks(c.hooks),
		batch.WithLogger(c.logger),
	)
	return c
}

// Convert parses message and converts every valid record.
// It returns domain.ErrBatchRejected when the message is not a batch at all.
func (c *Converter) Convert(ctx context.Context, message string) (*domain.Outcome, error) {
	return c.parser.Parse(ctx, message)
}

// Reply converts message and renders the reply payload, including the fixed
// rejection text for messages that are not a batch.
func (c *Converter) Reply(ctx context.Context, message string) string {
	out, err := c.Convert(ctx, message)
	if errors.Is(err, domain.ErrBatchRejected) {
		return domain.RejectionMessage
	}
	return batch.Assemble(out.ErrorTags, out.Records)
}

func (c *Converter) transform(ctx context.Context, rec domain.Record) string {
	if c.cache == nil {
		return bwt.Apply(rec.Direction, rec.Body)
	}

	if out, found, err := c.cache.Get(ctx, rec.Direction, rec.Body); err != nil {
		c.logger.Warn("transform cache lookup failed", "header", rec.Header, "err", err)
	} else if found {
		return out
	}

	out := bwt.Apply(rec.Direction, rec.Body)
	if err := c.cache.Put(ctx, rec.Direction, rec.Body, out); err != nil {
		c.logger.Warn("transform cache store failed", "header", rec.Header, "err", err)
	}
	return out
}
