package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/pkg/ctxutil"
)

// Create stores a new item owned by the caller. The item is analyzed before
// it is stored.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Content, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	created, err := s.policy.OnCreate(ctx, domain.Content{
		Title:      input.Title,
		Body:       input.Body,
		CategoryID: input.CategoryID,
		Metadata:   input.Metadata,
		OwnerID:    userID,
		IsPublic:   isPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("content.Create: %w", err)
	}

	s.log.InfoContext(ctx, "content created",
		slog.String("content_id", created.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("analysis_complete", created.Analysis.Complete()),
	)
	return created, nil
}

// Get returns one item through the read path. Private items of other users
// are reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	c, err := s.visible(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := s.policy.OnRead(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("content.Get: %w", err)
	}
	return out, nil
}

// List returns the items visible to the caller, newest first. Every item
// passes through the read path one at a time.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Content, error) {
	input = input.normalized()

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	items, err := s.contents.List(ctx, domain.ContentFilter{
		Search:   input.Search,
		ViewerID: userID,
		All:      ctxutil.IsAdminCtx(ctx),
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("content.List: %w", err)
	}

	for i, c := range items {
		out, err := s.policy.OnRead(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("content.List: %w", err)
		}
		items[i] = out
	}
	return items, nil
}

// Update applies a partial (PATCH) or full (PUT) update. Only the owner may
// update; the item is re-analyzed on every update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Content, error) {
	existing, err := s.owned(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Patch.CategorySet {
		if err := s.checkCategory(ctx, input.Patch.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := s.policy.OnUpdate(ctx, existing, input.Patch)
	if err != nil {
		return nil, fmt.Errorf("content.Update: %w", err)
	}

	s.log.InfoContext(ctx, "content updated", slog.String("content_id", id.String()))
	return updated, nil
}

// Delete removes an item. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.owned(ctx, id); err != nil {
		return err
	}

	if err := s.contents.Delete(ctx, id); err != nil {
		return fmt.Errorf("content.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "content deleted", slog.String("content_id", id.String()))
	return nil
}

// EnrichMissing fills the analysis of up to limit stored items that have
// missing fields. It returns how many items were processed and how many of
// them ended up complete.
func (s *Service) EnrichMissing(ctx context.Context, limit int) (processed, completed int, err error) {
	items, err := s.contents.ListIncomplete(ctx, limit)
	if err != nil {
		return 0, 0, fmt.Errorf("content.EnrichMissing: %w", err)
	}

	for _, c := range items {
		if err := ctx.Err(); err != nil {
			return processed, completed, err
		}
		out, err := s.policy.Backfill(ctx, c)
		if err != nil {
			return processed, completed, fmt.Errorf("content.EnrichMissing: %w", err)
		}
		processed++
		if out.Analysis.Complete() {
			completed++
		}
	}

	s.log.InfoContext(ctx, "backfill finished",
		slog.Int("processed", processed),
		slog.Int("completed", completed),
	)
	return processed, completed, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// visible loads an item and hides it from callers who may not see it.
func (s *Service) visible(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	c, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("content.Get: %w", err)
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	if !c.VisibleTo(userID, ctxutil.IsAdminCtx(ctx)) {
		return nil, fmt.Errorf("content %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// owned loads an item the caller is allowed to modify.
func (s *Service) owned(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.visible(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, fmt.Errorf("content %s: %w", id, domain.ErrForbidden)
	}
	return c, nil
}

func (s *Service) checkCategory(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.categories.GetByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("category_id", "category does not exist")
		}
		return fmt.Errorf("check category: %w", err)
	}
	return nil
}
