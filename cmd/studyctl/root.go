package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydocs-backend/internal/app"
	"github.com/heartmarshall/studydocs-backend/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "studyctl",
	Short:         "Maintenance tasks for the study documents backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Minute, "abort the command after this long")
	rootCmd.PersistentFlags().String("config", "", "YAML config file (default $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reindexCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every database command needs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

// setup loads config, builds the logger and connects to PostgreSQL. The
// returned context carries the --timeout deadline; call the cleanup func
// when done.
func setup(cmd *cobra.Command) (context.Context, *env, func(), error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log).With("command", cmd.Name())

	ctx := cmd.Context()
	cancel := func() {}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		cancel()
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return ctx, &env{cfg: cfg, logger: logger, pool: pool}, func() {
		pool.Close()
		cancel()
	}, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "studyctl", app.BuildVersion())
	},
}
