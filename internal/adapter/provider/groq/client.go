// Package groq talks to an OpenAI-compatible chat-completions endpoint
// (Groq by default). Each call is a single attempt; there are no retries.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

const (
	// DefaultBaseURL is the Groq chat-completions endpoint.
	DefaultBaseURL   = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel     = "llama3-8b-8192"
	DefaultMaxTokens = 256
	DefaultTimeout   = 30 * time.Second

	maxErrorBody = 2048
)

// Config captures the settings needed to reach the endpoint.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client sends chat-completion requests.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient constructs a Client. Empty settings fall back to the Groq defaults.
// An empty API key is allowed: Complete then reports domain.ErrProviderNotConfigured.
func NewClient(cfg Config, logger *slog.Logger, opts ...Option) *Client {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "groq"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// httpStatusError is returned for any non-200 answer.
type httpStatusError struct {
	StatusCode int
	Body       string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

func (e *httpStatusError) Unwrap() error { return domain.ErrProviderUnavailable }

// Complete sends one system/user prompt pair and returns
// choices[0].message.content. It performs no I/O when the API key is unset.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", domain.ErrProviderNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: c.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("groq: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("groq: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq: %w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "groq response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("groq: %w", &httpStatusError{StatusCode: resp.StatusCode, Body: string(body)})
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("groq: %w: decode response: %w", domain.ErrProviderUnavailable, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("groq: %w: empty choices", domain.ErrProviderUnavailable)
	}

	return completion.Choices[0].Message.Content, nil
}
