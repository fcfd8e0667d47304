package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type backfiller interface {
	EnrichMissing(ctx context.Context, limit int) (processed, completed int, err error)
}

func newEnrichMissingCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "enrich-missing",
		Short: "Analyze stored items whose analysis fields are incomplete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := ctx.deps(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = ctx.config.Enrichment.BackfillBatch
			}
			return runEnrichMissing(cmd.Context(), cmd.OutOrStdout(), deps.ContentService, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items to process (default from config)")

	return cmd
}

func runEnrichMissing(ctx context.Context, w io.Writer, svc backfiller, limit int) error {
	if limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}
	processed, completed, err := svc.EnrichMissing(ctx, limit)
	if err != nil {
		if processed > 0 {
			fmt.Fprintf(w, "Stopped after %d items (%d complete).\n", processed, completed)
		}
		return err
	}
	fmt.Fprintf(w, "Processed %d items, %d now complete, %d still incomplete.\n",
		processed, completed, processed-completed)
	return nil
}
