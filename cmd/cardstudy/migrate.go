package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardstudy/internal/database"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, false, func(ctx context.Context, env *environment) error {
				if err := database.Migrate(ctx, env.db); err != nil {
					return fmt.Errorf("database.Migrate() > %w", err)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "migrated")
				return err
			})
		},
	}
}
