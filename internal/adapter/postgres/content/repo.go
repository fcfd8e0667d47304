// Package content implements the content repository using PostgreSQL.
// Queries are built with squirrel and scanned with pgxscan. The four
// analysis columns are nullable and read back as empty values when unset.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/curator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/curator-backend/internal/domain"
)

const entity = "content"

// selectColumns is shared by every read so rows always scan into contentRow.
var selectColumns = []string{
	"c.id",
	"c.title",
	"c.body",
	"c.metadata",
	"c.category_id",
	"c.owner_id",
	"u.username AS owner_username",
	"c.is_public",
	"COALESCE(c.summary, '') AS summary",
	"COALESCE(c.sentiment, '') AS sentiment",
	"c.topics",
	"COALESCE(c.recommendations, '') AS recommendations",
	"c.created_at",
	"c.updated_at",
}

// emptyTopics lists the jsonb values that count as "not filled".
const emptyTopics = `c.topics IS NULL OR c.topics IN ('null'::jsonb, '[]'::jsonb, '{}'::jsonb, '""'::jsonb, '0'::jsonb, 'false'::jsonb)`

type contentRow struct {
	ID              uuid.UUID  `db:"id"`
	Title           string     `db:"title"`
	Body            string     `db:"body"`
	Metadata        []byte     `db:"metadata"`
	CategoryID      *uuid.UUID `db:"category_id"`
	OwnerID         uuid.UUID  `db:"owner_id"`
	OwnerUsername   string     `db:"owner_username"`
	IsPublic        bool       `db:"is_public"`
	Summary         string     `db:"summary"`
	Sentiment       string     `db:"sentiment"`
	Topics          []byte     `db:"topics"`
	Recommendations string     `db:"recommendations"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r contentRow) toDomain() *domain.Content {
	return &domain.Content{
		ID:            r.ID,
		Title:         r.Title,
		Body:          r.Body,
		CategoryID:    r.CategoryID,
		Metadata:      rawOrNil(r.Metadata),
		OwnerID:       r.OwnerID,
		OwnerUsername: r.OwnerUsername,
		IsPublic:      r.IsPublic,
		Analysis: domain.Analysis{
			Summary:         r.Summary,
			Sentiment:       r.Sentiment,
			Topics:          rawOrNil(r.Topics),
			Recommendations: r.Recommendations,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func rawOrNil(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}

// Repo provides content persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new content repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectBuilder() sq.SelectBuilder {
	return postgres.Builder.
		Select(selectColumns...).
		From("contents c").
		Join("users u ON u.id = c.owner_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a content item with its owner's username.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row contentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// List returns content items newest first. Unless f.All is set, only public
// items and items owned by f.ViewerID are returned. Search matches any text
// column, including the analysis fields and the JSON documents.
func (r *Repo) List(ctx context.Context, f domain.ContentFilter) ([]*domain.Content, error) {
	b := r.selectBuilder().OrderBy("c.created_at DESC", "c.id")

	if !f.All {
		if f.ViewerID == uuid.Nil {
			b = b.Where(sq.Eq{"c.is_public": true})
		} else {
			b = b.Where(sq.Or{sq.Eq{"c.is_public": true}, sq.Eq{"c.owner_id": f.ViewerID}})
		}
	}
	if f.Search != "" {
		p := postgres.ContainsPattern(f.Search)
		b = b.Where(sq.Or{
			sq.ILike{"c.title": p},
			sq.ILike{"c.body": p},
			sq.ILike{"c.summary": p},
			sq.ILike{"c.sentiment": p},
			sq.ILike{"c.recommendations": p},
			sq.Expr("c.metadata::text ILIKE ?", p),
			sq.Expr("c.topics::text ILIKE ?", p),
		})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	return r.selectMany(ctx, b)
}

// ListIncomplete returns up to limit items that have at least one analysis
// field unset. Items analyzed least recently come first, so an item whose
// answers stay partial does not hold back the rest.
func (r *Repo) ListIncomplete(ctx context.Context, limit int) ([]*domain.Content, error) {
	b := r.selectBuilder().
		Where(sq.Or{
			sq.Expr("COALESCE(c.summary, '') = ''"),
			sq.Expr("COALESCE(c.sentiment, '') = ''"),
			sq.Expr("COALESCE(c.recommendations, '') = ''"),
			sq.Expr(emptyTopics),
		}).
		OrderBy("c.analyzed_at ASC NULLS FIRST", "c.created_at ASC", "c.id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return r.selectMany(ctx, b)
}

// Count returns the total number of content items.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.Select("COUNT(*)").From("contents").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contents: %w", err)
	}
	return n, nil
}

func (r *Repo) selectMany(ctx context.Context, b sq.SelectBuilder) ([]*domain.Content, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []contentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	out := make([]*domain.Content, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts c together with its analysis fields and returns the stored
// row. ID and timestamps are assigned by the database.
func (r *Repo) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	a := c.Analysis.Normalized()

	query, args, err := postgres.Builder.
		Insert("contents").
		Columns("title", "body", "metadata", "category_id", "owner_id", "is_public",
			"summary", "sentiment", "topics", "recommendations", "analyzed_at").
		Values(c.Title, c.Body, postgres.NullableJSON(c.Metadata), c.CategoryID, c.OwnerID, c.IsPublic,
			postgres.NullableText(a.Summary), postgres.NullableText(a.Sentiment),
			postgres.NullableJSON(a.Topics), postgres.NullableText(a.Recommendations), sq.Expr("now()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, entity, c.Title)
	}

	return r.GetByID(ctx, id)
}

// Update applies the set fields of patch, overwrites all four analysis
// columns and bumps updated_at and analyzed_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.ContentPatch, analysis domain.Analysis) (*domain.Content, error) {
	a := analysis.Normalized()

	b := postgres.Builder.Update("contents").
		Set("summary", postgres.NullableText(a.Summary)).
		Set("sentiment", postgres.NullableText(a.Sentiment)).
		Set("topics", postgres.NullableJSON(a.Topics)).
		Set("recommendations", postgres.NullableText(a.Recommendations)).
		Set("analyzed_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if patch.Title != nil {
		b = b.Set("title", *patch.Title)
	}
	if patch.Body != nil {
		b = b.Set("body", *patch.Body)
	}
	if patch.CategorySet {
		b = b.Set("category_id", patch.CategoryID)
	}
	if patch.MetadataSet {
		b = b.Set("metadata", postgres.NullableJSON(patch.Metadata))
	}
	if patch.IsPublic != nil {
		b = b.Set("is_public", *patch.IsPublic)
	}

	if err := r.exec(ctx, b, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateAnalysis overwrites the analysis columns and stamps analyzed_at.
// updated_at is left alone so background fills do not look like user edits.
func (r *Repo) UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis domain.Analysis) error {
	a := analysis.Normalized()

	b := postgres.Builder.Update("contents").
		Set("summary", postgres.NullableText(a.Summary)).
		Set("sentiment", postgres.NullableText(a.Sentiment)).
		Set("topics", postgres.NullableJSON(a.Topics)).
		Set("recommendations", postgres.NullableText(a.Recommendations)).
		Set("analyzed_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, b, id)
}

// Delete removes a content item.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, postgres.Builder.Delete("contents").Where(sq.Eq{"id": id}), id)
}

// exec runs a write statement and reports domain.ErrNotFound when no row matched.
func (r *Repo) exec(ctx context.Context, b sq.Sqlizer, id uuid.UUID) error {
	query, args, err := b.ToSql()
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
