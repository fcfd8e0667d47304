package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/curator-backend/migrations"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withProvider(cmd.Context(), func(p *goose.Provider) error {
				results, err := p.Up(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				printMigrationResults(cmd.OutOrStdout(), results)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withProvider(cmd.Context(), func(p *goose.Provider) error {
				statuses, err := p.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				printMigrationStatus(cmd.OutOrStdout(), statuses)
				return nil
			})
		},
	})

	return cmd
}

// withProvider opens a database/sql handle over the shared pgx pool, since
// goose only speaks *sql.DB.
func (c *commandContext) withProvider(ctx context.Context, fn func(*goose.Provider) error) error {
	pool, err := c.ensurePool(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	return fn(provider)
}

func printMigrationResults(w io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "Schema is up to date.")
		return
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			strconv.FormatInt(r.Source.Version, 10),
			r.Source.Path,
			r.Duration.Round(time.Millisecond).String(),
		})
	}
	fmt.Fprint(w, renderTable([]string{"Version", "File", "Took"}, rows, []columnAlignment{alignRight, alignLeft, alignRight}))
}

func printMigrationStatus(w io.Writer, statuses []*goose.MigrationStatus) {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, []string{
			strconv.FormatInt(s.Source.Version, 10),
			s.Source.Path,
			string(s.State),
			applied,
		})
	}
	fmt.Fprint(w, renderTable([]string{"Version", "File", "State", "Applied"}, rows, []columnAlignment{alignRight}))
}
