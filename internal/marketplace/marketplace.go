// Package marketplace implements the AgentHub business rules: listing and
// publishing agents, free demos with per-wallet limits, purchases backed by
// on-chain payments and the execution of purchased agent runs.
package marketplace

import (
	"fmt"
	"time"

	"agenthub/internal/config"
	"agenthub/pkg/explorer"
	"agenthub/pkg/storage"
	"agenthub/pkg/textgen"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "agenthub/internal/marketplace"

func now() time.Time { return time.Now().UTC() }

// Options configure paging defaults, demo quotas and job retries.
type Options struct {
	DefaultPageSize  int
	MaxPageSize      int
	DefaultDemoLimit int
	// JobMaxAttempts is the maximum number of times a purchased run is tried.
	JobMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultPageSize:  int(cfg.Marketplace.DefaultPageSize), //nolint: gosec
		MaxPageSize:      int(cfg.Marketplace.MaxPageSize),     //nolint: gosec
		DefaultDemoLimit: cfg.Marketplace.DefaultDemoLimit,
		JobMaxAttempts:   cfg.Marketplace.JobMaxAttempts,
	}
}

// Deps are the collaborators of the service. Explorer and Generator are
// optional: operations that need them fail with serrors.ErrUnavailable.
type Deps struct {
	Storage   storage.Storage
	Explorer  explorer.Explorer
	Generator textgen.Generator
}

type instruments struct {
	demos     metric.Int64Counter
	purchases metric.Int64Counter
	jobs      metric.Int64Counter
}

func newInstruments() (instruments, error) {
	meter := otel.Meter(meterName)

	demos, err := meter.Int64Counter("agenthub.marketplace.demos",
		metric.WithDescription("Demo runs served"))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create demos counter: %w", err)
	}
	purchases, err := meter.Int64Counter("agenthub.marketplace.purchases",
		metric.WithDescription("Agent purchases recorded"))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create purchases counter: %w", err)
	}
	jobs, err := meter.Int64Counter("agenthub.marketplace.jobs",
		metric.WithDescription("Purchased agent runs by final status"))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create jobs counter: %w", err)
	}

	return instruments{demos: demos, purchases: purchases, jobs: jobs}, nil
}

type marketplace struct {
	options   Options
	storage   storage.Storage
	explorer  explorer.Explorer
	generator textgen.Generator
	metrics   instruments
}

// New creates a Service. The otel instruments come from the global meter
// provider. One installed after New still receives them, because the global
// delegates instruments created before it was set.
func New(deps Deps, options Options) (Service, error) {
	if options.DefaultPageSize <= 0 {
		options.DefaultPageSize = 50
	}
	if options.MaxPageSize <= 0 {
		options.MaxPageSize = 100
	}

	m, err := newInstruments()
	if err != nil {
		return nil, err
	}

	return &marketplace{
		options:   options,
		storage:   deps.Storage,
		explorer:  deps.Explorer,
		generator: deps.Generator,
		metrics:   m,
	}, nil
}
