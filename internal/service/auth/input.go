package auth

import (
	"time"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
