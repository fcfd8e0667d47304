package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

var rowColumns = []string{
	"id", "title", "body", "metadata", "category_id", "owner_id", "owner_username", "is_public",
	"summary", "sentiment", "topics", "recommendations", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func expectationsMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func contentRows(id, owner uuid.UUID, summary string, topics []byte) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(rowColumns).
		AddRow(id, "Title", "Body", nil, nil, owner, "alice", true,
			summary, "positive", topics, "read more", now, now)
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()

	id, owner := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		check   func(t *testing.T, c *domain.Content)
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM contents c JOIN users u ON u.id = c.owner_id WHERE c.id = \$1`).
					WithArgs(id.String()).
					WillReturnRows(contentRows(id, owner, "short", []byte(`["go"]`)))
			},
			check: func(t *testing.T, c *domain.Content) {
				if c.ID != id || c.OwnerID != owner {
					t.Errorf("ids = %s/%s, want %s/%s", c.ID, c.OwnerID, id, owner)
				}
				if c.OwnerUsername != "alice" {
					t.Errorf("OwnerUsername = %q, want alice", c.OwnerUsername)
				}
				if c.CategoryID != nil {
					t.Errorf("CategoryID = %v, want nil", c.CategoryID)
				}
				if string(c.Analysis.Topics) != `["go"]` {
					t.Errorf("Topics = %s", c.Analysis.Topics)
				}
				if !c.Analysis.Complete() {
					t.Error("expected complete analysis")
				}
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).WithArgs(id.String()).WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.GetByID(context.Background(), id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetByID() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("GetByID() unexpected error: %v", err)
				}
				tt.check(t, got)
			}
			expectationsMet(t, mock)
		})
	}
}

func TestRepo_List_AnonymousSeesPublicOnly(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE c.is_public = \$1 ORDER BY c.created_at DESC, c.id LIMIT 10`).
		WithArgs(true).
		WillReturnRows(contentRows(uuid.New(), uuid.New(), "", nil))

	got, err := repo.List(context.Background(), domain.ContentFilter{Limit: 10})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d items, want 1", len(got))
	}
	if got[0].Analysis.Complete() {
		t.Error("row without summary or topics should be incomplete")
	}
	expectationsMet(t, mock)
}

func TestRepo_List_ViewerAndSearch(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	viewer := uuid.New()

	mock.ExpectQuery(`WHERE \(c.is_public = \$1 OR c.owner_id = \$2\) AND \(c.title ILIKE \$3 OR .+ OR c.metadata::text ILIKE \$8 OR c.topics::text ILIKE \$9\)`).
		WithArgs(true, viewer.String(), `%50\%%`, `%50\%%`, `%50\%%`, `%50\%%`, `%50\%%`, `%50\%%`, `%50\%%`).
		WillReturnRows(pgxmock.NewRows(rowColumns))

	got, err := repo.List(context.Background(), domain.ContentFilter{ViewerID: viewer, Search: "50%"})
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() returned %d items, want 0", len(got))
	}
	expectationsMet(t, mock)
}

func TestRepo_List_AllSkipsVisibility(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM contents c JOIN users u ON u.id = c.owner_id ORDER BY c.created_at DESC, c.id OFFSET 5`).
		WillReturnRows(pgxmock.NewRows(rowColumns))

	if _, err := repo.List(context.Background(), domain.ContentFilter{All: true, Offset: 5}); err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	id, owner, category := uuid.New(), uuid.New(), uuid.New()

	// uuids reach the driver as strings; empty analysis fields are written as NULL.
	mock.ExpectQuery(`INSERT INTO contents \(title,body,metadata,category_id,owner_id,is_public,summary,sentiment,topics,recommendations,analyzed_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10,now\(\)\) RETURNING id`).
		WithArgs("Title", "Body", `{"lang":"en"}`, category.String(), owner.String(), true,
			"short", "positive", nil, nil).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectQuery(`SELECT .+ WHERE c.id = \$1`).
		WithArgs(id.String()).
		WillReturnRows(contentRows(id, owner, "short", []byte(`["go"]`)))

	got, err := repo.Create(context.Background(), &domain.Content{
		Title:      "Title",
		Body:       "Body",
		Metadata:   []byte(`{"lang":"en"}`),
		CategoryID: &category,
		OwnerID:    owner,
		IsPublic:   true,
		Analysis:   domain.Analysis{Summary: "short", Sentiment: "positive"},
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if got.ID != id {
		t.Errorf("Create() id = %s, want %s", got.ID, id)
	}
	expectationsMet(t, mock)
}

func TestRepo_Update_OnlySetFields(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	id := uuid.New()
	title := "New title"

	mock.ExpectExec(`UPDATE contents SET summary = \$1, sentiment = \$2, topics = \$3, recommendations = \$4, analyzed_at = now\(\), updated_at = now\(\), title = \$5 WHERE id = \$6`).
		WithArgs("s", nil, nil, nil, title, id.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(`SELECT`).
		WithArgs(id.String()).
		WillReturnRows(contentRows(id, uuid.New(), "s", nil))

	_, err := repo.Update(context.Background(), id, domain.ContentPatch{Title: &title}, domain.Analysis{Summary: "s"})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestRepo_UpdateAnalysis_KeepsUpdatedAt(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE contents SET summary = \$1, sentiment = \$2, topics = \$3, recommendations = \$4, analyzed_at = now\(\) WHERE id = \$5`).
		WithArgs("s", "neutral", `["a"]`, "r", id.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateAnalysis(context.Background(), id, domain.Analysis{
		Summary: "s", Sentiment: "neutral", Topics: []byte(`["a"]`), Recommendations: "r",
	})
	if err != nil {
		t.Fatalf("UpdateAnalysis() unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM contents WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
	expectationsMet(t, mock)
}

func TestRepo_ListIncomplete(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`COALESCE\(c.summary, ''\) = ''.+ORDER BY c.analyzed_at ASC NULLS FIRST, c.created_at ASC, c.id LIMIT 25`).
		WillReturnRows(contentRows(uuid.New(), uuid.New(), "", nil))

	got, err := repo.ListIncomplete(context.Background(), 25)
	if err != nil {
		t.Fatalf("ListIncomplete() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("ListIncomplete() returned %d items, want 1", len(got))
	}
	expectationsMet(t, mock)
}

func TestRepo_Count(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contents`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() unexpected error: %v", err)
	}
	if n != 7 {
		t.Errorf("Count() = %d, want 7", n)
	}
	expectationsMet(t, mock)
}
