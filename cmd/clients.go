package main

import (
	"context"
	"net/http"

	"agenthub/internal/config"
	"agenthub/pkg/explorer"
	"agenthub/pkg/explorer/blockfrost"
	"agenthub/pkg/logger"
	"agenthub/pkg/payment"
	"agenthub/pkg/payment/masumi"
	"agenthub/pkg/textgen"
	"agenthub/pkg/textgen/gemini"

	"go.uber.org/zap"
)

// getExplorer returns nil when no Blockfrost key is configured.
func getExplorer(ctx context.Context, cfg *config.Config) explorer.Explorer {
	if cfg.Cardano.BlockfrostAPIKey == "" {
		logger.Warn(ctx, "BLOCKFROST_API_KEY is not set, chain lookups are disabled")

		return nil
	}

	return blockfrost.New(&http.Client{Timeout: cfg.Cardano.Timeout},
		cfg.Cardano.BlockfrostURL,
		cfg.Cardano.BlockfrostAPIKey)
}

// getGenerator returns nil when Gemini cannot be used.
func getGenerator(ctx context.Context, cfg *config.Config) textgen.Generator {
	generator, err := gemini.New(ctx, gemini.Options{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Warn(ctx, "text generation is disabled", zap.Error(err))

		return nil
	}

	return generator
}

func getPayment(cfg *config.Config) payment.Client {
	return masumi.New(&http.Client{Timeout: cfg.Masumi.Timeout}, masumi.Options{
		RegistryURL: cfg.Masumi.RegistryURL,
		PaymentURL:  cfg.Masumi.PaymentURL,
		APIKey:      cfg.Masumi.APIKey,
	})
}
