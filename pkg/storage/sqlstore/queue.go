package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"agenthub/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/riverdriver/riversqlite"
	"github.com/riverqueue/river/rivermigrate"
)

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible once the surrounding transaction commits.
// The returned flag is false when a unique job with the same arguments already
// exists.
func (s *Store) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if tx, ok := s.DB.(*sql.Tx); ok {
		client, err := river.NewClient(s.riverDriver(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}

		job, err := client.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}

		return !job.UniqueSkippedAsDuplicate, nil
	}

	client, err := river.NewClient(s.riverDriver(s.SQLDB()), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	job, err := client.Insert(ctx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !job.UniqueSkippedAsDuplicate, nil
}

// RiverDriver returns the River driver matching the store's backend, bound to
// its *sql.DB. It is nil-bound inside a transaction.
func (s *Store) RiverDriver() riverdriver.Driver[*sql.Tx] {
	return s.riverDriver(s.SQLDB())
}

// riverDriver with a nil db is an insert-only driver usable with InsertTx.
func (s *Store) riverDriver(db *sql.DB) riverdriver.Driver[*sql.Tx] {
	if s.IsSQLite() {
		return riversqlite.New(db)
	}

	return riverdatabasesql.New(db)
}

// MigrateQueue brings River's tables up to the latest schema version.
func (s *Store) MigrateQueue(ctx context.Context) error {
	if s.SQLDB() == nil {
		return storage.ErrAlreadyInTx
	}

	migrator, err := rivermigrate.New(s.RiverDriver(), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion <= currentVersion {
		return nil
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	if err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}

	return nil
}
