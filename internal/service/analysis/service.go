// Package analysis runs a one-off language model analysis over
// caller-supplied text. Nothing is stored.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/enrichment"
	"github.com/heartmarshall/curator-backend/pkg/ctxutil"
)

type completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service implements standalone text analysis.
type Service struct {
	log *slog.Logger
	llm completer
}

// NewService creates a new analysis service.
func NewService(logger *slog.Logger, llm completer) *Service {
	return &Service{
		log: logger.With("service", "analysis"),
		llm: llm,
	}
}

// Analyze returns the model's raw answer for text. Unlike enrichment,
// provider failures are returned to the caller: domain.ErrProviderNotConfigured
// when no key is set, domain.ErrProviderUnavailable otherwise.
func (s *Service) Analyze(ctx context.Context, text string) (string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return "", domain.ErrUnauthorized
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError("text", "Text is required.")
	}

	out, err := s.llm.Complete(ctx, enrichment.FreeformSystemPrompt, enrichment.UserPrompt(text))
	if err != nil {
		s.log.WarnContext(ctx, "analysis failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("analysis.Analyze: %w", err)
	}
	return out, nil
}
