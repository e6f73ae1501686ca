package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/bwtnet"
	httpAdapter "github.com/aretw0/bwtnet/internal/adapters/http"
	"github.com/aretw0/bwtnet/internal/config"
	"github.com/aretw0/bwtnet/internal/presentation/tui"
	"github.com/aretw0/bwtnet/pkg/adapters/redis"
	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/aretw0/bwtnet/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Serve runs the conversion server until the process is terminated or the
// listener fails.
func Serve(cfg config.Server) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, level, err := createLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	srv, cleanup, err := buildServer(cfg, logger, level)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := net.JoinHostPort(cfg.Bind, strconv.Itoa(cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
		}
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	tui.PrintBanner(bwtnet.Version)
	printSystemMessage("Listening on address %s and port %d", cfg.Bind, cfg.Port)

	return srv.Serve(ln)
}

// buildServer wires metrics, the optional cache and the admin surface around a Converter.
func buildServer(cfg config.Server, logger *slog.Logger, level slog.Level) (*server.Server, func(), error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := server.NewMetrics(reg)

	hooks := metrics.Hooks()
	if level <= slog.LevelDebug {
		hooks = chainHooks(hooks, createDebugHooks(logger))
	}

	convOpts := []bwtnet.Option{
		bwtnet.WithLogger(logger),
		bwtnet.WithLifecycleHooks(hooks),
	}

	var closers []func() error
	if cfg.Redis.Addr != "" {
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithTTL(cfg.Redis.TTL))
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("transform cache unreachable, continuing", "addr", cfg.Redis.Addr, "err", err)
		}
		cancel()
		convOpts = append(convOpts, bwtnet.WithCache(cache))
		closers = append(closers, cache.Close)
		logger.Info("transform cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	if cfg.MetricsAddr != "" {
		admin := &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: httpAdapter.NewHandler(reg),
		}
		go func() {
			logger.Info("admin server started", "addr", cfg.MetricsAddr)
			if err := admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("admin server failed", "err", err)
			}
		}()
		closers = append(closers, admin.Close)
	}

	srv := server.New(
		bwtnet.New(convOpts...),
		server.WithLogger(logger),
		server.WithMetrics(metrics),
		server.WithReadTimeout(cfg.ReadTimeout),
	)

	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("cleanup failed", "err", err)
			}
		}
	}
	return srv, cleanup, nil
}
