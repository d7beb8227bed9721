package main

import (
	"context"
	"fmt"

	"agenthub/internal/config"
	"agenthub/internal/marketplace"
	"agenthub/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inserts the sample creator and agent if they are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, closeStore := getStore(ctx, cfg)
			defer closeStore()

			service, err := marketplace.New(marketplace.Deps{Storage: store}, marketplace.NewOptions(cfg))
			if err != nil {
				return fmt.Errorf("could not create marketplace: %w", err)
			}

			res, err := service.Seed(ctx)
			if err != nil {
				return fmt.Errorf("could not seed database: %w", err)
			}

			logger.Info(ctx, "sample data ready",
				zap.Stringer("agentID", res.Agent.ID),
				zap.Bool("agentCreated", res.AgentCreated),
				zap.Bool("userCreated", res.UserCreated))

			return nil
		},
	}

	return cmd
}
