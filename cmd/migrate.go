package main

import (
	"context"

	"agenthub/internal/config"
	"agenthub/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// and River queue migrations up to the latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			store, closeStore := getStore(ctx, cfg)
			defer closeStore()

			migrate(ctx, store)
			logger.Info(ctx, "database is up to date", zap.String("driver", cfg.Database.Driver))
		},
	}

	return cmd
}
