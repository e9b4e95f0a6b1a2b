package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	analyticsrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/analytics"
	contentrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/content"
	documentrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/document"
	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/searchindex"
	"github.com/heartmarshall/studydocs-backend/internal/service/search"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search index from stored document content",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, e, done, err := setup(cmd)
		if err != nil {
			return err
		}
		defer done()

		svc := search.NewService(e.logger, e.cfg.Search,
			searchindex.New(e.pool),
			documentrepo.New(e.pool),
			contentrepo.New(e.pool),
			analyticsrepo.New(e.pool),
			nil,
			postgres.NewTxManager(e.pool),
		)

		raw, _ := cmd.Flags().GetString("document")
		if raw == "" {
			n, err := svc.ReindexAll(ctx)
			if err != nil {
				return err
			}
			e.logger.InfoContext(ctx, "reindex completed", slog.Int("documents", n))
			fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d documents\n", n)
			return nil
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid --document %q: %w", raw, err)
		}
		if err := svc.Reindex(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reindexed document %s\n", id)
		return nil
	},
}

func init() {
	reindexCmd.Flags().String("document", "", "reindex a single document by ID")
}
