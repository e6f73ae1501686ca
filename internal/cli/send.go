package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/bwtnet/internal/config"
	"github.com/aretw0/bwtnet/internal/report"
	"github.com/aretw0/bwtnet/pkg/client"
	"github.com/aretw0/bwtnet/pkg/domain"
)

// Send reads inputPath, sends it as one batch and writes the reply through the
// report writer selected by cfg.
func Send(ctx context.Context, cfg config.Client, inputPath string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, _, err := createLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInputNotFound, err)
	}

	c, err := client.New(cfg.Address, cfg.Port, client.WithLogger(logger))
	if err != nil {
		return err
	}

	reply, err := c.Exchange(ctx, string(content))
	if err != nil {
		return err
	}

	return report.New(os.Stdout, cfg.Output, cfg.Verbosity).Write(reply)
}
