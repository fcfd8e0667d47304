package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/curator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/curator-backend/internal/app"
	"github.com/heartmarshall/curator-backend/internal/config"
)

// commandContext lazily loads configuration and opens the database pool
// shared by the subcommands of one invocation.
type commandContext struct {
	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error

	poolOnce sync.Once
	pool     *pgxpool.Pool
	poolErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, *slog.Logger, error) {
	c.configOnce.Do(func() {
		cfg, err := config.LoadTools()
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = app.NewLogger(cfg.Log)
	})
	return c.config, c.logger, c.configErr
}

func (c *commandContext) ensurePool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, _, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.poolOnce.Do(func() {
		c.pool, c.poolErr = postgres.NewPool(ctx, cfg.Database)
	})
	return c.pool, c.poolErr
}

// deps builds the service graph without metrics. Commands that only need
// the schema use ensurePool directly.
func (c *commandContext) deps(ctx context.Context) (*app.Deps, error) {
	pool, err := c.ensurePool(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	cfg, logger, _ := c.ensureConfig()
	return app.NewDeps(cfg, pool, nil, logger), nil
}

func (c *commandContext) close() {
	if c.pool != nil {
		c.pool.Close()
	}
}
