package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/config"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/dependencies"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/infrastructure/database"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/logging"
)

// Execute runs the casedwh command tree with the given context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "casedwh",
		Short:         "Lightweight data warehouse on DuckDB and Parquet",
		Long:          "casedwh manages a local case-history data warehouse: raw Parquet partitions, a staging zone, and an embedded DuckDB analytical database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newSetupCmd(),
		newLoadCmd(),
		newSeedCmd(),
		newSummaryCmd(),
		newQueryCmd(),
		newStatsCmd(),
		newPromoteCmd(),
		newBackupCmd(),
		newCheckCmd(),
	)
	return cmd
}

// buildDeps assembles the shared dependencies for a command invocation.
// The database is opened lazily on first use by the adapter.
func buildDeps() (*dependencies.Dependencies, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("configuration loading error: %w", err)
	}

	logger := logging.New(cfg.LogDir, cfg.LogLevel)

	db, err := database.OpenDefault(cfg)
	if err != nil {
		return nil, fmt.Errorf("database setup error: %w", err)
	}

	return &dependencies.Dependencies{
		Logger: logger,
		Config: cfg,
		DB:     db,
	}, nil
}
