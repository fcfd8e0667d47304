// Package auth issues and verifies bearer tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// clockSkew is tolerated on exp, nbf and iat between API replicas.
const clockSkew = 30 * time.Second

// JWTManager issues and verifies HS256 access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager. Configuration validation ensures
// secret is at least 32 bytes.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
		now: time.Now,
	}
}

// accessClaims carries the caller's role next to the registered claims.
type accessClaims struct {
	jwt.RegisteredClaims
	Role domain.UserRole `json:"role"`
}

// GenerateAccessToken signs a token for userID and role. It returns the
// expiry so the login response can report it.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role string) (string, time.Time, error) {
	r := domain.UserRole(role)
	if !r.IsValid() {
		return "", time.Time{}, fmt.Errorf("sign token: unknown role %q", role)
	}

	now := m.now()
	expiresAt := now.Add(m.accessTTL)
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: r,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken verifies a token and returns its user ID and role.
// Every failure wraps ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return uuid.Nil, "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var claims accessClaims
	if _, err := m.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	if !claims.Role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("%w: role %q", ErrInvalidToken, claims.Role)
	}
	return userID, string(claims.Role), nil
}
