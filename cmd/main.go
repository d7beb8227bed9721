// Package main provides the CLI entrypoint for AgentHub.
// It wires subcommands (serve, migrate, seed, jwt, console), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"agenthub/internal/config"
	"agenthub/pkg/logger"
	"agenthub/pkg/storage/sqlstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getStore opens the configured database and returns it along with a cleanup
// function closing it.
func getStore(ctx context.Context, cfg *config.Config) (*sqlstore.Store, func()) {
	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:             cfg.Database.Driver,
		Path:               cfg.Database.Path,
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not open storage", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}

	return store, func() {
		logger.Info(ctx, "closing storage...")
		if err = store.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}
}

// migrate applies the schema migrations and the River queue migrations.
func migrate(ctx context.Context, store *sqlstore.Store) {
	if err := store.Migrate(ctx); err != nil {
		logger.Fatal(ctx, "could not migrate database", zap.Error(err))
	}
	if err := store.MigrateQueue(ctx); err != nil {
		logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "agenthub",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		seedCommand(cfg),
		JWTCommand(cfg),
		consoleCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
