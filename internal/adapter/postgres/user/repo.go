// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/curator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/curator-backend/internal/domain"
)

var columns = []string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by username. The match is exact.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username}, username)
}

// List returns users ordered by creation time.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	b := postgres.Builder.Select(columns...).From("users").OrderBy("created_at", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.User, error) {
	query, args, err := postgres.Builder.Select(columns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user. A taken username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	query, args, err := postgres.Builder.
		Insert("users").
		Columns("username", "email", "password_hash", "role").
		Values(u.Username, u.Email, u.PasswordHash, string(role)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return row.toDomain(), nil
}

// UpdateRoleByUsername sets the role of the named user and returns the
// updated row.
func (r *Repo) UpdateRoleByUsername(ctx context.Context, username string, role domain.UserRole) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Update("users").
		Set("role", string(role)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return row.toDomain(), nil
}
