package batch

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/bwtnet/pkg/bwt"
	"github.com/aretw0/bwtnet/pkg/domain"
)

// Transformer converts the body of a record that passed validation.
type Transformer func(ctx context.Context, rec domain.Record) string

// Parser splits a batch message into records and converts each of them.
// A Parser holds no per-batch state and may be shared.
type Parser struct {
	transform Transformer
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Parser.
type Option func(*Parser)

// WithTransformer replaces the default in-process transform.
func WithTransformer(fn Transformer) Option {
	return func(p *Parser) {
		p.transform = fn
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Parser) {
		p.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.transform == nil {
		p.transform = func(_ context.Context, rec domain.Record) string {
			return bwt.Apply(rec.Direction, rec.Body)
		}
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Parse converts every record of message.
// It returns domain.ErrBatchRejected when the message has fewer than two
// non-empty lines or does not begin with a header.
func (p *Parser) Parse(ctx context.Context, message string) (*domain.Outcome, error) {
	lines := nonEmptyLines(message)
	if len(lines) < 2 || !domain.IsHeader(lines[0]) {
		p.logger.Debug("batch rejected", "lines", len(lines))
		if p.hooks.OnBatchRejected != nil {
			p.hooks.OnBatchRejected(ctx, &domain.BatchEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventBatchRejected},
				Lines:     len(lines),
			})
		}
		return nil, domain.ErrBatchRejected
	}

	out := &domain.Outcome{}
	current := domain.NewRecord(lines[0])
	var body strings.Builder

	for _, line := range lines[1:] {
		if !domain.IsHeader(line) {
			body.WriteString(line)
			continue
		}
		current.Body = body.String()
		p.flush(ctx, out, current)

		current = domain.NewRecord(line)
		body.Reset()
	}

	// The last record has no following header.
	current.Body = body.String()
	p.flush(ctx, out, current)

	return out, nil
}

// flush closes one record: invalid bodies become error tags, the rest are converted.
func (p *Parser) flush(ctx context.Context, out *domain.Outcome, rec domain.Record) {
	if !bwt.Validate(rec.Body) || !bwt.Admissible(rec.Direction, rec.Body) {
		p.logger.Debug("record skipped", "header", rec.Header, "length", len(rec.Body))
		out.ErrorTags = append(out.ErrorTags, domain.ErrorTag{Header: rec.Header})
		p.emit(ctx, p.hooks.OnRecordSkipped, domain.EventRecordSkipped, rec)
		return
	}

	out.Records = append(out.Records, domain.TransformedRecord{
		Marker: rec.Direction.OutputMarker(),
		Label:  rec.Label,
		Body:   p.transform(ctx, rec),
	})
	p.emit(ctx, p.hooks.OnRecordConverted, domain.EventRecordConverted, rec)
}

func (p *Parser) emit(ctx context.Context, hook func(context.Context, *domain.RecordEvent), typ domain.EventType, rec domain.Record) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.RecordEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Header:    rec.Header,
		Direction: rec.Direction,
		Length:    len(rec.Body),
	})
}

func nonEmptyLines(message string) []string {
	raw := strings.Split(message, "\n")
	lines := raw[:0]
	for _, l := range raw {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
