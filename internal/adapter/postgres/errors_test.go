package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "content", uuid.New()); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_DomainMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"string too long", &pgconn.PgError{Code: "22001"}, domain.ErrValidation},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), domain.ErrAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tt.err, "content", uuid.New())
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%v) = %v, want wrapping %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.DeadlineExceeded, context.Canceled} {
		got := MapError(ctxErr, "content", uuid.New())
		if !errors.Is(got, ctxErr) {
			t.Errorf("MapError(%v) lost the context error: %v", ctxErr, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) should not map to ErrNotFound", ctxErr)
		}
	}
}

func TestMapError_UnknownPgErrorIsKept(t *testing.T) {
	t.Parallel()

	got := MapError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"}, "content", uuid.New())

	var pgErr *pgconn.PgError
	if !errors.As(got, &pgErr) {
		t.Fatalf("MapError should keep *pgconn.PgError: %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) || errors.Is(got, domain.ErrAlreadyExists) || errors.Is(got, domain.ErrValidation) {
		t.Error("unknown code should not map to a domain error")
	}
}

func TestMapError_MessageCarriesEntityAndKey(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "category", "science")
	if want := "category science: not found"; got.Error() != want {
		t.Errorf("MapError().Error() = %q, want %q", got.Error(), want)
	}
}
