package enrichment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// contentStore is the persistence the policy writes through.
type contentStore interface {
	Create(ctx context.Context, c *domain.Content) (*domain.Content, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ContentPatch, analysis domain.Analysis) (*domain.Content, error)
	UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis domain.Analysis) error
}

// analyzer is satisfied by *Enricher.
type analyzer interface {
	Enrich(ctx context.Context, text string) Fields
}

// Policy decides when a content item is analyzed and merges the result into
// the item before it is stored. Analysis failures never surface from Policy;
// store errors do.
type Policy struct {
	analyzer analyzer
	store    contentStore
	mode     domain.ReadMode
	log      *slog.Logger
}

// NewPolicy creates a Policy. An invalid mode falls back to lazy reads.
func NewPolicy(logger *slog.Logger, a analyzer, store contentStore, mode domain.ReadMode) *Policy {
	if !mode.IsValid() {
		mode = domain.ReadModeLazy
	}
	return &Policy{
		analyzer: a,
		store:    store,
		mode:     mode,
		log:      logger.With("service", "enrichment_policy"),
	}
}

// Mode returns the configured read mode.
func (p *Policy) Mode() domain.ReadMode {
	return p.mode
}

// OnCreate analyzes the new item's body, fills the four analysis fields
// (defaults on failure) and persists the item.
func (p *Policy) OnCreate(ctx context.Context, c domain.Content) (*domain.Content, error) {
	c.Analysis = p.analyzer.Enrich(ctx, c.Body).Analysis()

	created, err := p.store.Create(ctx, &c)
	if err != nil {
		return nil, fmt.Errorf("enrichment.OnCreate: %w", err)
	}
	return created, nil
}

// OnUpdate re-analyzes on every update, using the new body when the patch
// carries one and the stored body otherwise. All four fields are replaced.
func (p *Policy) OnUpdate(ctx context.Context, existing *domain.Content, patch domain.ContentPatch) (*domain.Content, error) {
	text := existing.Body
	if patch.Body != nil {
		text = *patch.Body
	}

	analysis := p.analyzer.Enrich(ctx, text).Analysis()

	updated, err := p.store.Update(ctx, existing.ID, patch, analysis)
	if err != nil {
		return nil, fmt.Errorf("enrichment.OnUpdate: %w", err)
	}
	return updated, nil
}

// OnRead returns complete items unchanged without calling the model.
// An incomplete item is analyzed once, the result is persisted even when it
// is all defaults, and the refreshed item is returned. In strict mode reads
// never write.
func (p *Policy) OnRead(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	if c.Analysis.Complete() || p.mode == domain.ReadModeStrict {
		return c, nil
	}

	refreshed, err := p.fill(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("enrichment.OnRead: %w", err)
	}
	return refreshed, nil
}

// Backfill fills an incomplete item regardless of the read mode. It is the
// write half of OnRead, used by maintenance jobs.
func (p *Policy) Backfill(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	if c.Analysis.Complete() {
		return c, nil
	}

	refreshed, err := p.fill(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("enrichment.Backfill: %w", err)
	}
	return refreshed, nil
}

func (p *Policy) fill(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	analysis := p.analyzer.Enrich(ctx, c.Body).Analysis()

	if err := p.store.UpdateAnalysis(ctx, c.ID, analysis); err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "filled missing analysis",
		slog.String("content_id", c.ID.String()),
		slog.Bool("complete", analysis.Complete()),
	)

	refreshed := *c
	refreshed.Analysis = analysis
	return &refreshed, nil
}
