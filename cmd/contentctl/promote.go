package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

type promoter interface {
	Promote(ctx context.Context, username string) (*domain.User, error)
}

func newPromoteCommand(ctx *commandContext) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to an existing user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := ctx.deps(cmd.Context())
			if err != nil {
				return err
			}
			return runPromote(cmd.Context(), cmd.OutOrStdout(), deps.UserService, username)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to promote")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runPromote(ctx context.Context, w io.Writer, svc promoter, username string) error {
	u, err := svc.Promote(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no user named %q", username)
		}
		return err
	}
	fmt.Fprintf(w, "User %q (%s) promoted to admin.\n", u.Username, u.ID)
	return nil
}
