package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

type statsSource interface {
	Stats(ctx context.Context) (*domain.Analytics, error)
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print user, content and category counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := ctx.deps(cmd.Context())
			if err != nil {
				return err
			}
			return runStats(cmd.Context(), cmd.OutOrStdout(), deps.UserService)
		},
	}
}

func runStats(ctx context.Context, w io.Writer, src statsSource) error {
	a, err := src.Stats(ctx)
	if err != nil {
		return err
	}
	rows := [][]string{
		{"Users", strconv.Itoa(a.UserCount)},
		{"Content", strconv.Itoa(a.ContentCount)},
		{"Categories", strconv.Itoa(a.CategoryCount)},
	}
	fmt.Fprint(w, renderTable([]string{"Entity", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	return nil
}
