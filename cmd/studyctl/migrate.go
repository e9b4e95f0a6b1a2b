package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, e, done, err := setup(cmd)
		if err != nil {
			return err
		}
		defer done()

		if status, _ := cmd.Flags().GetBool("status"); status {
			statuses, err := postgres.MigrationStatus(ctx, e.pool)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
			for _, s := range statuses {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Source.Version, s.State, s.Source.Path)
			}
			return tw.Flush()
		}

		return postgres.Migrate(ctx, e.pool, e.logger)
	},
}

func init() {
	migrateCmd.Flags().Bool("status", false, "list migrations and their state instead of applying them")
}
