package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/bwtnet/internal/logging"
	"github.com/aretw0/bwtnet/pkg/domain"
)

// createLogger builds the process logger from a configured level name.
func createLogger(level string) (*slog.Logger, slog.Level, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, lvl, err
	}
	return logging.New(lvl), lvl, nil
}

// createDebugHooks logs the fate of every record and batch.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRecordConverted: func(ctx context.Context, e *domain.RecordEvent) {
			logger.Debug("Record Converted", "header", e.Header, "direction", e.Direction.String(), "length", e.Length)
		},
		OnRecordSkipped: func(ctx context.Context, e *domain.RecordEvent) {
			logger.Debug("Record Skipped", "header", e.Header, "length", e.Length)
		},
		OnBatchRejected: func(ctx context.Context, e *domain.BatchEvent) {
			logger.Debug("Batch Rejected", "lines", e.Lines)
		},
	}
}

// chainHooks calls every non-nil hook of each set in order.
func chainHooks(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, s := range sets {
		out.OnRecordConverted = chain(out.OnRecordConverted, s.OnRecordConverted)
		out.OnRecordSkipped = chain(out.OnRecordSkipped, s.OnRecordSkipped)
		out.OnBatchRejected = chain(out.OnBatchRejected, s.OnBatchRejected)
	}
	return out
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}

func printSystemMessage(format string, args ...any) {
	fmt.Printf("[bwtnet] "+format+"\n", args...)
}
