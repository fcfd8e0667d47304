// Package enrichment turns content bodies into model-derived analysis fields
// and decides when content items are (re)analyzed.
package enrichment

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// Outcome labels reported to the Recorder.
const (
	OutcomeOK     = "ok"
	OutcomeAbsent = "absent"
)

// Completer sends one system/user prompt pair to a language model and
// returns the raw text of its answer.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Recorder receives one outcome per enrichment attempt.
type Recorder interface {
	EnrichmentAttempt(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) EnrichmentAttempt(string) {}

// Enricher runs the model call and the extractor for one text.
type Enricher struct {
	llm      Completer
	log      *slog.Logger
	recorder Recorder
}

// EnricherOption customizes an Enricher.
type EnricherOption func(*Enricher)

// WithRecorder reports attempt outcomes to r.
func WithRecorder(r Recorder) EnricherOption {
	return func(e *Enricher) {
		if r != nil {
			e.recorder = r
		}
	}
}

// NewEnricher creates an Enricher backed by llm.
func NewEnricher(logger *slog.Logger, llm Completer, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		llm:      llm,
		log:      logger.With("service", "enrichment"),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich analyzes text. It never fails: an empty text, a missing credential,
// a transport fault or an unparseable answer all produce empty Fields.
func (e *Enricher) Enrich(ctx context.Context, text string) Fields {
	if strings.TrimSpace(text) == "" {
		return Fields{}
	}

	raw, err := e.llm.Complete(ctx, SystemPrompt, UserPrompt(text))
	if err != nil {
		e.recorder.EnrichmentAttempt(OutcomeAbsent)
		if errors.Is(err, domain.ErrProviderNotConfigured) {
			e.log.DebugContext(ctx, "enrichment skipped: provider not configured")
			return Fields{}
		}
		e.log.WarnContext(ctx, "enrichment request failed",
			slog.String("error", err.Error()),
			slog.Int("text_len", len(text)),
		)
		return Fields{}
	}

	fields := Extract(raw)
	if fields.Empty() {
		e.recorder.EnrichmentAttempt(OutcomeAbsent)
		e.log.WarnContext(ctx, "enrichment answer had no analysis object",
			slog.Int("answer_len", len(raw)),
		)
		return fields
	}

	e.recorder.EnrichmentAttempt(OutcomeOK)
	e.log.DebugContext(ctx, "enrichment completed")
	return fields
}
