package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/curator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/curator-backend/internal/config"
	"github.com/heartmarshall/curator-backend/internal/metrics"
)

// Run is the server entry point. It loads configuration, connects to the
// database, serves HTTP until ctx is cancelled and then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.String("read_mode", cfg.Enrichment.ReadMode),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	collector := metrics.NewCollector("curator")
	deps := NewDeps(cfg, pool, collector, logger)

	handler, limiter := NewHandler(cfg, deps, pool, collector, logger)
	defer limiter.Stop()

	srv := NewServer(cfg.Server, handler)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
