package marketplace

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AgentRunJobArgs asks the background worker to execute a purchased agent job.
type AgentRunJobArgs struct {
	// JobID references the agent_jobs row to execute. It is the unique key so
	// that a job is never queued twice.
	JobID string `json:"job_id" river:"unique"`

	maxAttempts int
}

func (args AgentRunJobArgs) Kind() string { return "AgentRunJob" }

func (args AgentRunJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
