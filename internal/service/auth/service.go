package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/config"
	"github.com/heartmarshall/curator-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the token interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements registration, login and token validation.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// ValidateToken resolves a bearer token to the user id and role it was
// issued for. Any failure is reported as domain.ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}
