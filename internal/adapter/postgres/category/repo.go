// Package category implements the category repository using PostgreSQL.
package category

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

const entity = "category"

var columns = []string{"id", "name", "description", "created_at"}

type categoryRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r categoryRow) toDomain() *domain.Category {
	return &domain.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new category repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query, args, err := postgres.Builder.Select(columns...).From("categories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// GetByIDs returns the categories matching ids in no particular order.
// Missing ids are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return []*domain.Category{}, nil
	}
	return r.selectMany(ctx, postgres.Builder.Select(columns...).From("categories").Where(sq.Eq{"id": ids}))
}

// List returns categories ordered by name. A non-empty search matches name
// or description.
func (r *Repo) List(ctx context.Context, search string, limit, offset int) ([]*domain.Category, error) {
	b := postgres.Builder.Select(columns...).From("categories").OrderBy("name")
	if search != "" {
		p := postgres.ContainsPattern(search)
		b = b.Where(sq.Or{sq.ILike{"name": p}, sq.ILike{"description": p}})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return r.selectMany(ctx, b)
}

// Count returns the number of categories.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// Create inserts a category. A duplicate name yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	query, args, err := postgres.Builder.
		Insert("categories").
		Columns("name", "description").
		Values(name, description).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, name)
	}
	return row.toDomain(), nil
}

// Update replaces name and description.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, description string) (*domain.Category, error) {
	query, args, err := postgres.Builder.
		Update("categories").
		Set("name", name).
		Set("description", description).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// Delete removes a category. Content referencing it keeps existing with no category.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.Delete("categories").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) selectMany(ctx context.Context, b sq.SelectBuilder) ([]*domain.Category, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
