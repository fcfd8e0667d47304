package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/curator-backend/internal/auth"
	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/validate"
)

// Register creates a user with the default role.
// Returns ErrAlreadyExists if the username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.UserRoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}
