package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/pkg/ctxutil"
)

const defaultListLimit = 50

// ListUsers returns a page of users and the total count (admin only).
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, int, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers count: %w", err)
	}

	return users, total, nil
}

// GetUser returns a single user (admin only).
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return u, nil
}

// Analytics returns global counters (admin only).
func (s *Service) Analytics(ctx context.Context) (*domain.Analytics, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.Stats(ctx)
}

// Stats returns global counters without an access check. It backs the
// operator CLI, which runs with database credentials. The three counts are
// read from one snapshot.
func (s *Service) Stats(ctx context.Context) (*domain.Analytics, error) {
	var a domain.Analytics
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		if a.UserCount, err = s.users.Count(ctx); err != nil {
			return fmt.Errorf("users: %w", err)
		}
		if a.ContentCount, err = s.contents.Count(ctx); err != nil {
			return fmt.Errorf("contents: %w", err)
		}
		if a.CategoryCount, err = s.categories.Count(ctx); err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.Stats: %w", err)
	}
	return &a, nil
}

// Promote grants the admin role to the named user.
func (s *Service) Promote(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "required")
	}

	u, err := s.users.UpdateRoleByUsername(ctx, username, domain.UserRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("user.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted",
		slog.String("user_id", u.ID.String()),
		slog.String("new_role", u.Role.String()),
	)
	return u, nil
}

func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
