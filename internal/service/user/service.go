package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	Count(ctx context.Context) (int, error)
	UpdateRoleByUsername(ctx context.Context, username string, role domain.UserRole) (*domain.User, error)
}

// counter is satisfied by the content and category repositories.
type counter interface {
	Count(ctx context.Context) (int, error)
}

// snapshotRunner runs fn against one consistent read-only view of the
// database. *postgres.TxManager satisfies it.
type snapshotRunner interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user administration and analytics.
type Service struct {
	log        *slog.Logger
	users      userRepo
	contents   counter
	categories counter
	tx         snapshotRunner
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, contents, categories counter, tx snapshotRunner) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		contents:   contents,
		categories: categories,
		tx:         tx,
	}
}
