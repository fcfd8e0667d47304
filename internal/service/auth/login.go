package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/curator-backend/internal/auth"
	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/validate"
)

// Login authenticates a user with username and password.
// Returns ErrUnauthorized if the user is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login check password: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}
