package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user has administrative rights.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// Analytics holds the global counters shown to administrators.
type Analytics struct {
	UserCount     int
	ContentCount  int
	CategoryCount int
}
