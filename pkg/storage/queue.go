package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// QueueStorage enqueues background jobs into the river tables that live next
// to the marketplace tables. Inside a transaction the job only becomes visible
// once the surrounding transaction commits.
type QueueStorage interface {
	// AddJob enqueues a job and reports whether it was inserted, false meaning
	// river skipped it as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
