package app

import (
	"log/slog"

	"github.com/heartmarshall/curator-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/curator-backend/internal/adapter/provider/breaker"
	"github.com/heartmarshall/curator-backend/internal/adapter/provider/groq"
	"github.com/heartmarshall/curator-backend/internal/config"
	"github.com/heartmarshall/curator-backend/internal/enrichment"
)

// NewCompleter builds the configured language model client, wrapped in a
// circuit breaker when enabled.
func NewCompleter(cfg config.LLMConfig, logger *slog.Logger) enrichment.Completer {
	var c enrichment.Completer
	switch cfg.Provider {
	case config.ProviderAnthropic:
		c = anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.AnthropicAPIKey,
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
		}, logger)
	default:
		c = groq.NewClient(groq.Config{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
		}, logger)
	}

	if cfg.Breaker.Enabled {
		c = breaker.New(c, breaker.Settings{
			Name:             cfg.Provider,
			FailureThreshold: cfg.Breaker.FailureThreshold,
			OpenTimeout:      cfg.Breaker.OpenTimeout,
		}, logger)
	}

	if cfg.ProviderKey() == "" {
		logger.Warn("llm api key not set, content analysis disabled",
			slog.String("provider", cfg.Provider))
	}
	return c
}
