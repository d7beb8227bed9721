package marketplace

import (
	"context"
	"fmt"

	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"
)

// Job returns a job. Demo runs are public. A purchased run is visible to its
// buyer, the creator of the agent and administrators.
func (m *marketplace) Job(ctx context.Context, caller Caller, id domain.JobID) (*domain.AgentJob, error) {
	job, err := m.storage.JobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}
	if job.IsDemo || caller.owns(job.UserWallet) {
		return job, nil
	}
	if caller.Anonymous() {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	agent, err := m.storage.AgentByID(ctx, job.AgentID)
	if err != nil {
		return nil, fmt.Errorf("could not get job agent: %w", err)
	}
	if agent == nil || agent.CreatorWallet != caller.Wallet {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}

// Jobs lists jobs. Callers other than administrators only see their own jobs.
func (m *marketplace) Jobs(ctx context.Context, caller Caller, filter storage.JobFilter) ([]domain.AgentJob, error) {
	if caller.Anonymous() {
		return nil, serrors.With(serrors.ErrUnauthorized, "authentication required")
	}
	if !caller.Admin {
		filter.UserWallet = caller.Wallet
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid job status %q", filter.Status)
	}
	limit, offset, err := m.page(int(filter.Limit), int(filter.Offset)) //nolint: gosec
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = limit, offset

	jobs, err := m.storage.Jobs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list jobs: %w", err)
	}

	return jobs, nil
}

func (m *marketplace) JobStats(ctx context.Context, agentID *domain.AgentID) (domain.JobStats, error) {
	if agentID != nil {
		if _, err := m.Agent(ctx, *agentID); err != nil {
			return domain.JobStats{}, err
		}
	}

	stats, err := m.storage.JobStats(ctx, agentID)
	if err != nil {
		return domain.JobStats{}, fmt.Errorf("could not get job stats: %w", err)
	}

	return stats, nil
}
