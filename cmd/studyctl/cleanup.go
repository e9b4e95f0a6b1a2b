package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	documentrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/document"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Mark documents stuck in PROCESSING as FAILED",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, e, done, err := setup(cmd)
		if err != nil {
			return err
		}
		defer done()

		staleAfter, _ := cmd.Flags().GetDuration("stale-after")
		if staleAfter <= 0 {
			staleAfter = e.cfg.Scheduler.StaleAfter
		}
		threshold := time.Now().Add(-staleAfter)

		n, err := documentrepo.New(e.pool).FailStale(ctx, threshold)
		if err != nil {
			e.logger.ErrorContext(ctx, "stale cleanup failed",
				slog.String("error", err.Error()),
				slog.Time("threshold", threshold),
			)
			return err
		}

		e.logger.InfoContext(ctx, "stale cleanup completed",
			slog.Int("failed", n),
			slog.Time("threshold", threshold),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "marked %d documents as failed\n", n)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().Duration("stale-after", 0, "age after which a PROCESSING document counts as stuck (default: scheduler.stale_after)")
}
