package storage

import (
	"agenthub/pkg/domain"
	"context"
	"time"
)

type JobFilter struct {
	AgentID    *domain.AgentID
	UserWallet string
	Status     domain.JobStatus
	IsDemo     *bool
	Limit      uint
	Offset     uint
}

// JobUpdates lists the job fields to change. Only set fields are written.
type JobUpdates struct {
	Status      domain.JobStatus
	Output      map[string]any
	Error       *string
	CompletedAt time.Time
}

// JobStorage persists agent jobs. These are the marketplace records users see;
// the river queue entries driving paid runs are handled by QueueStorage.
type JobStorage interface {
	StoreJob(ctx context.Context, job domain.AgentJob) (*domain.AgentJob, error)
	JobByID(ctx context.Context, id domain.JobID) (*domain.AgentJob, error)
	Jobs(ctx context.Context, filter JobFilter) ([]domain.AgentJob, error)
	UpdateJob(ctx context.Context, id domain.JobID, updates JobUpdates) (*domain.AgentJob, error)
	DeleteJob(ctx context.Context, id domain.JobID) (bool, error)
	// CountDemoJobs counts demo jobs a wallet ran against an agent.
	CountDemoJobs(ctx context.Context, agentID domain.AgentID, wallet string) (int64, error)
	// JobStats aggregates jobs by status, across all agents when agentID is nil.
	JobStats(ctx context.Context, agentID *domain.AgentID) (domain.JobStats, error)
}
