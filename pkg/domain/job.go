package domain

import "time"

// JobStatus represents the lifecycle state of an agent job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusQueued, JobStatusRunning, JobStatusCompleted, JobStatusFailed:
		return true
	}

	return false
}

// Terminal reports whether no further transitions are expected.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// AnonymousWallet is recorded on demo jobs started without a wallet.
const AnonymousWallet = "anonymous"

// AgentJob is a single execution of an agent, either a free demo or a paid run.
type AgentJob struct {
	ID          JobID
	AgentID     AgentID
	UserWallet  string
	Status      JobStatus
	Input       map[string]any
	Output      map[string]any
	Error       string
	CreatedAt   time.Time
	CompletedAt time.Time
	IsDemo      bool
}

// JobStats aggregates job counts by status.
type JobStats struct {
	Total     int64
	Queued    int64
	Running   int64
	Completed int64
	Failed    int64
	Demos     int64
}
