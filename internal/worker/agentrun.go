package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"agenthub/internal/marketplace"
	"agenthub/pkg/domain"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DefaultCooldown is how long runs are held back after the model provider
// reported an exhausted quota.
const DefaultCooldown = time.Minute

// AgentRunWorker executes purchased agent runs through the marketplace
// service.
//
// When a run hits the provider's rate limit, every worker goroutine backs off
// until the cooldown elapses: jobs picked up in the meantime are snoozed
// without calling the provider. Jobs whose rows vanished, and runs that can
// never succeed because text generation is not configured, are cancelled.
type AgentRunWorker struct {
	river.WorkerDefaults[marketplace.AgentRunJobArgs]

	service  marketplace.Service
	cooldown time.Duration

	// mu guards pausedUntil.
	mu          sync.Mutex
	pausedUntil time.Time
}

func NewAgentRunWorker(service marketplace.Service, cooldown time.Duration) *AgentRunWorker {
	return &AgentRunWorker{
		service:  service,
		cooldown: cooldown,
	}
}

func (w *AgentRunWorker) Work(ctx context.Context, job *river.Job[marketplace.AgentRunJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("riverJobID", job.ID), zap.String("jobID", job.Args.JobID))

	if wait := w.pausedFor(); wait > 0 {
		logger.Debug(ctx, "provider cooling down, snoozing run", zap.Duration("wait", wait))

		return river.JobSnooze(wait) //nolint: wrapcheck
	}

	id, err := domain.ParseJobID(job.Args.JobID)
	if err != nil {
		return river.JobCancel(err) //nolint: wrapcheck
	}

	err = w.service.ExecuteJob(ctx, id)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, serrors.ErrConflict),
		errors.Is(err, serrors.ErrNotFound),
		errors.Is(err, serrors.ErrUnavailable):
		logger.Warn(ctx, "cancelling agent run", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrRateLimited):
		logger.Warn(ctx, "agent run rate limited", zap.Error(err))

		return river.JobSnooze(w.pause()) //nolint: wrapcheck
	}

	logger.Error(ctx, "agent run failed", zap.Error(err))

	return fmt.Errorf("could not execute agent run: %w", err)
}

func (w *AgentRunWorker) pausedFor() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return time.Until(w.pausedUntil)
}

// pause starts a cooldown, or keeps the running one, and returns its remaining duration.
func (w *AgentRunWorker) pause() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	until := time.Now().Add(w.cooldown)
	if until.After(w.pausedUntil) {
		w.pausedUntil = until
	}

	return time.Until(w.pausedUntil)
}
