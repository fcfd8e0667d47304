// Package category implements category management. Reads are public;
// writes need an authenticated caller.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/validate"
	"github.com/heartmarshall/curator-backend/pkg/ctxutil"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Input holds the writable category fields.
type Input struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description"`
}

// Service implements category operations.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
}

// NewService creates a new category service.
func NewService(logger *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		log:        logger.With("service", "category"),
		categories: categories,
	}
}

// Get returns a category.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category.Get: %w", err)
	}
	return c, nil
}

// List returns categories ordered by name, optionally filtered by search.
func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]*domain.Category, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.categories.List(ctx, strings.TrimSpace(search), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("category.List: %w", err)
	}
	return list, nil
}

// Create adds a category. Names are unique.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Category, error) {
	input, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	c, err := s.categories.Create(ctx, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("category.Create: %w", err)
	}

	s.log.InfoContext(ctx, "category created", slog.String("category_id", c.ID.String()))
	return c, nil
}

// Update replaces a category's name and description.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.Category, error) {
	input, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	c, err := s.categories.Update(ctx, id, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("category.Update: %w", err)
	}
	return c, nil
}

// Delete removes a category. Content in it becomes uncategorized.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("category.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	return nil
}

func (s *Service) prepare(ctx context.Context, input Input) (Input, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return input, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := validate.Struct(input); err != nil {
		return input, err
	}
	return input, nil
}
