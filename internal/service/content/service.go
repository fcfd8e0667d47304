// Package content implements the content use cases: ownership and
// visibility rules around the enrichment policy and the content store.
package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	List(ctx context.Context, f domain.ContentFilter) ([]*domain.Content, error)
	ListIncomplete(ctx context.Context, limit int) ([]*domain.Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

type enrichmentPolicy interface {
	OnCreate(ctx context.Context, c domain.Content) (*domain.Content, error)
	OnUpdate(ctx context.Context, existing *domain.Content, patch domain.ContentPatch) (*domain.Content, error)
	OnRead(ctx context.Context, c *domain.Content) (*domain.Content, error)
	Backfill(ctx context.Context, c *domain.Content) (*domain.Content, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements content operations.
type Service struct {
	log        *slog.Logger
	contents   contentRepo
	categories categoryRepo
	policy     enrichmentPolicy
}

// NewService creates a new content service.
func NewService(logger *slog.Logger, contents contentRepo, categories categoryRepo, policy enrichmentPolicy) *Service {
	return &Service{
		log:        logger.With("service", "content"),
		contents:   contents,
		categories: categories,
		policy:     policy,
	}
}
