package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"agenthub/internal/api"
	"agenthub/internal/api/handler/v1handler"
	"agenthub/internal/config"
	"agenthub/internal/marketplace"
	"agenthub/internal/worker"
	"agenthub/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, closeStore := getStore(ctx, cfg)
			defer closeStore()

			if autoMigrate, _ := cmd.Flags().GetBool("migrate"); autoMigrate {
				migrate(ctx, store)
			}

			service, err := marketplace.New(marketplace.Deps{
				Storage:   store,
				Explorer:  getExplorer(ctx, cfg),
				Generator: getGenerator(ctx, cfg),
			}, marketplace.NewOptions(cfg))
			if err != nil {
				return fmt.Errorf("could not create marketplace: %w", err)
			}

			if seed, _ := cmd.Flags().GetBool("seed"); seed {
				if _, err := service.Seed(ctx); err != nil {
					return fmt.Errorf("could not seed database: %w", err)
				}
			}

			riverClient, err := worker.Start(ctx, store, service, cfg.Marketplace.Workers)
			if err != nil {
				return fmt.Errorf("could not start workers: %w", err)
			}

			server, err := api.NewServer(api.Deps{
				Deps:     v1handler.Deps{Marketplace: service},
				Database: store,
			}, api.NewOptions(cfg))
			if err != nil {
				return fmt.Errorf("could not create webserver: %w", err)
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed listener
				<-gCtx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}
				logger.Info(ctx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}

				return nil
			})

			return g.Wait()
		},
	}

	cmd.Flags().Bool("migrate", true, "Apply database migrations before starting")
	cmd.Flags().Bool("seed", false, "Insert the sample creator and agent before starting")

	return cmd
}
