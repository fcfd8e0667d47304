package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "contentctl",
		Short:         "Maintenance tasks for the content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
	}

	rootCmd.AddCommand(newMigrateCommand(ctx))
	rootCmd.AddCommand(newPromoteCommand(ctx))
	rootCmd.AddCommand(newEnrichMissingCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))

	return rootCmd
}
