// Package worker runs the background jobs of the marketplace on River.
package worker

import (
	"context"
	"fmt"

	"agenthub/internal/marketplace"
	"agenthub/pkg/logger"
	"agenthub/pkg/storage/sqlstore"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Client is a started River client.
type Client interface {
	// Stop waits for running jobs to finish or ctx to expire.
	Stop(ctx context.Context) error
}

// Start registers the agent run worker and starts a River client on the
// store's database. On PostgreSQL the client works on the pgx pool directly.
// concurrency bounds the runs executed at the same time.
func Start(ctx context.Context,
	store *sqlstore.Store,
	service marketplace.Service,
	concurrency int) (Client, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewAgentRunWorker(service, DefaultCooldown))

	config := &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: concurrency},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	}

	if store.Pool != nil {
		return start[pgx.Tx](ctx, riverpgxv5.New(store.Pool), config)
	}

	return start(ctx, store.RiverDriver(), config)
}

func start[TTx any](ctx context.Context, driver riverdriver.Driver[TTx], config *river.Config) (Client, error) {
	riverClient, err := river.NewClient(driver, config)
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
