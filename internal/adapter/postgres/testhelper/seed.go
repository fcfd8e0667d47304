//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a regular user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$04$invalidhashfortestsonly",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCategory inserts a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	cat := domain.Category{
		ID:          uuid.New(),
		Name:        "category-" + uniqueSuffix(),
		Description: "seeded",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, description, created_at) VALUES ($1, $2, $3, $4)`,
		cat.ID, cat.Name, cat.Description, cat.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return cat
}

// SeedContent inserts a public content item owned by ownerID with no
// analysis fields set.
func SeedContent(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Content {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Content{
		ID:        uuid.New(),
		Title:     "title " + suffix,
		Body:      "body " + suffix,
		OwnerID:   ownerID,
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO contents (id, title, body, owner_id, is_public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Title, c.Body, c.OwnerID, c.IsPublic, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContent: %v", err)
	}

	return c
}
