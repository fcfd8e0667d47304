// Package dataloader provides per-request DataLoaders that batch the
// category lookups needed to render content lists into a single query.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type categoryRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	CategoryByID *dataloader.Loader[uuid.UUID, *domain.Category]
}

// NewLoaders creates a new set of DataLoaders. Must be called per request:
// loaders cache results for their whole lifetime.
func NewLoaders(categories categoryRepo) *Loaders {
	return &Loaders{
		CategoryByID: newLoader(newCategoryBatchFn(categories)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// newCategoryBatchFn resolves a batch of category ids. Unknown ids resolve
// to nil rather than an error: the category may have been deleted between
// reading the content row and rendering it.
func newCategoryBatchFn(repo categoryRepo) dataloader.BatchFunc[uuid.UUID, *domain.Category] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Category] {
		categories, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Category](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Category, len(categories))
		for _, c := range categories {
			byID[c.ID] = c
		}

		results := make([]*dataloader.Result[*domain.Category], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Category]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the
// middleware did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// LoadCategories resolves the given ids through the request's loader,
// batching them into one repository call. Nil ids are skipped. Without a
// loader in ctx it falls back to a direct repository call.
func LoadCategories(ctx context.Context, repo categoryRepo, ids []*uuid.UUID) (map[uuid.UUID]*domain.Category, error) {
	keys := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		if _, dup := seen[*id]; dup {
			continue
		}
		seen[*id] = struct{}{}
		keys = append(keys, *id)
	}

	out := make(map[uuid.UUID]*domain.Category, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	l := FromContext(ctx)
	if l == nil {
		l = NewLoaders(repo)
	}

	thunks := make([]dataloader.Thunk[*domain.Category], len(keys))
	for i, key := range keys {
		thunks[i] = l.CategoryByID.Load(ctx, key)
	}
	for i, thunk := range thunks {
		c, err := thunk()
		if err != nil {
			return nil, err
		}
		if c != nil {
			out[keys[i]] = c
		}
	}
	return out, nil
}
