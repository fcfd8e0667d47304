// Package breaker wraps a language model client in a circuit breaker so a
// failing provider is skipped instead of blocking every request for the
// full timeout.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

type completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Settings configures when the breaker opens and how long it stays open.
type Settings struct {
	Name string
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before a trial request.
	OpenTimeout time.Duration
}

// Client guards next with a circuit breaker.
type Client struct {
	next completer
	cb   *gobreaker.CircuitBreaker
}

// New wraps next.
func New(next completer, s Settings, logger *slog.Logger) *Client {
	if s.Name == "" {
		s.Name = "llm"
	}
	if s.FailureThreshold == 0 {
		s.FailureThreshold = 5
	}
	log := logger.With("adapter", "breaker")

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// A missing key is a configuration state, not a provider fault.
			return err == nil || errors.Is(err, domain.ErrProviderNotConfigured)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{next: next, cb: cb}
}

// Complete forwards to the wrapped client unless the breaker is open, in
// which case it fails immediately with domain.ErrProviderUnavailable.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	out, err := c.cb.Execute(func() (any, error) {
		return c.next.Complete(ctx, systemPrompt, userPrompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
		}
		return "", err
	}
	return out.(string), nil
}

// State reports the breaker state name (closed, half-open, open).
func (c *Client) State() string {
	return c.cb.State().String()
}
