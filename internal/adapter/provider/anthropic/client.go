// Package anthropic is an alternative language model backend built on the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

const (
	DefaultModel     = "claude-haiku-4-5"
	DefaultMaxTokens = 256
	DefaultTimeout   = 30 * time.Second
)

// Config holds the Anthropic connection settings.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client sends one message per Complete call. SDK retries are disabled.
type Client struct {
	client    sdk.Client
	enabled   bool
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewClient builds a Client. An empty API key yields a client whose
// Complete returns domain.ErrProviderNotConfigured.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:    sdk.NewClient(opts...),
		enabled:   strings.TrimSpace(cfg.APIKey) != "",
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Complete sends the prompts and returns the concatenated text blocks of
// the answer.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.enabled {
		return "", domain.ErrProviderNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: %w: %w", domain.ErrProviderUnavailable, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("anthropic: %w: empty response", domain.ErrProviderUnavailable)
	}

	c.log.DebugContext(ctx, "anthropic response",
		slog.String("stop_reason", string(msg.StopReason)),
	)

	return b.String(), nil
}
