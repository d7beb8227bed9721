package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"agenthub/pkg/domain"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ExecuteJob moves a queued (or previously failed) job through running to a
// terminal state. Completed jobs are left untouched so that retried queue
// entries are harmless.
func (m *marketplace) ExecuteJob(ctx context.Context, id domain.JobID) error {
	ctx = logger.WithFields(ctx, zap.Stringer("jobID", id))

	job, err := m.storage.JobByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return serrors.With(serrors.ErrConflict, "job %s no longer exists", id)
	}
	if job.Status == domain.JobStatusCompleted {
		logger.Info(ctx, "job already completed")

		return nil
	}

	agent, err := m.storage.AgentByID(ctx, job.AgentID)
	if err != nil {
		return fmt.Errorf("could not get agent: %w", err)
	}
	if agent == nil {
		m.failJob(ctx, id, "agent no longer exists")

		return serrors.With(serrors.ErrConflict, "agent %s no longer exists", job.AgentID)
	}

	if _, err := m.storage.UpdateJob(ctx, id, storage.JobUpdates{Status: domain.JobStatusRunning}); err != nil {
		return fmt.Errorf("could not mark job running: %w", err)
	}

	if m.generator == nil {
		m.failJob(ctx, id, "text generation is not configured")

		return serrors.With(serrors.ErrUnavailable, "text generation is not configured")
	}

	text, err := m.generator.Generate(ctx, systemPrompt(agent), jobPrompt(job.Input))
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			// back to the queue, the worker snoozes the job
			if _, uerr := m.storage.UpdateJob(ctx, id,
				storage.JobUpdates{Status: domain.JobStatusQueued}); uerr != nil {
				logger.Error(ctx, "could not requeue job", zap.Error(uerr))
			}

			return fmt.Errorf("could not run agent: %w", err)
		}
		m.failJob(ctx, id, err.Error())

		return fmt.Errorf("could not run agent: %w", err)
	}

	if _, err := m.storage.UpdateJob(ctx, id, storage.JobUpdates{
		Status: domain.JobStatusCompleted,
		Output: map[string]any{
			"result": text,
			"model":  m.generator.Model(),
		},
	}); err != nil {
		return fmt.Errorf("could not store job output: %w", err)
	}

	m.metrics.jobs.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(domain.JobStatusCompleted))))
	logger.Info(ctx, "job completed")

	return nil
}

func (m *marketplace) failJob(ctx context.Context, id domain.JobID, reason string) {
	if _, err := m.storage.UpdateJob(ctx, id, storage.JobUpdates{
		Status: domain.JobStatusFailed,
		Error:  &reason,
	}); err != nil {
		logger.Error(ctx, "could not mark job failed", zap.Error(err))
	}
	m.metrics.jobs.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(domain.JobStatusFailed))))
	logger.Warn(ctx, "job failed", zap.String("reason", reason))
}

func systemPrompt(agent *domain.Agent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, an AI agent sold on the AgentHub marketplace.\n", agent.Name)
	fmt.Fprintf(&b, "%s\n", agent.Description)
	if len(agent.CrewAIConfig) > 0 {
		cfg, _ := json.Marshal(agent.CrewAIConfig)
		fmt.Fprintf(&b, "Agent configuration: %s\n", cfg)
	}
	if len(agent.InputSchema) > 0 {
		schema, _ := json.Marshal(agent.InputSchema)
		fmt.Fprintf(&b, "The user input follows this JSON schema: %s\n", schema)
	}
	b.WriteString("Answer the user's request completely and concisely.")

	return b.String()
}

func jobPrompt(input map[string]any) string {
	if len(input) == 0 {
		return "Run your default task."
	}
	b, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return fmt.Sprint(input)
	}

	return "Input:\n" + string(b)
}
