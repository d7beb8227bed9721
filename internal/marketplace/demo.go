package marketplace

import (
	"context"
	"fmt"

	"agenthub/pkg/domain"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	demoMessage       = "This is a demo response with limited functionality."
	demoNote          = "Purchase full access to unlock complete functionality."
	demoResultMessage = "Demo completed successfully"
)

// Demo serves a free, limited run of an agent. Wallets are limited to the
// agent's DemoLimit runs; anonymous demos are not counted against anyone.
func (m *marketplace) Demo(ctx context.Context, id domain.AgentID, req DemoRequest) (*DemoResult, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("agentID", id), zap.String("wallet", req.UserWallet))

	var result *DemoResult
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		agent, err := tx.AgentByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get agent: %w", err)
		}
		if agent == nil || !agent.Available() {
			return serrors.With(serrors.ErrNotFound, "agent not found or not available")
		}

		var used int64
		if req.UserWallet != "" {
			used, err = tx.CountDemoJobs(ctx, id, req.UserWallet)
			if err != nil {
				return fmt.Errorf("could not count demo jobs: %w", err)
			}
			if used >= int64(agent.DemoLimit) {
				return serrors.With(serrors.ErrRateLimited,
					"Demo limit reached. You have used %d/%d demos for this agent.", used, agent.DemoLimit)
			}
		}

		wallet := req.UserWallet
		if wallet == "" {
			wallet = domain.AnonymousWallet
		}
		input := nonNilMap(req.Input)
		output := map[string]any{
			"message":        demoMessage,
			"demo":           true,
			"input_received": input,
			"agent_name":     agent.Name,
			"note":           demoNote,
		}

		job, err := tx.StoreJob(ctx, domain.AgentJob{
			AgentID:     id,
			UserWallet:  wallet,
			Status:      domain.JobStatusCompleted,
			Input:       input,
			Output:      output,
			CompletedAt: now(),
			IsDemo:      true,
		})
		if err != nil {
			return fmt.Errorf("could not store demo job: %w", err)
		}

		result = &DemoResult{
			JobID:     job.ID,
			Status:    domain.JobStatusCompleted,
			Message:   demoResultMessage,
			Output:    output,
			DemoCount: used + 1,
			DemoLimit: agent.DemoLimit,
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not run demo: %w", err)
	}

	m.metrics.demos.Add(ctx, 1, metric.WithAttributes(attribute.String("agent_id", id.String())))
	logger.Info(ctx, "demo served", zap.Int64("demoCount", result.DemoCount))

	return result, nil
}
