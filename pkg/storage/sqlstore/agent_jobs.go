package sqlstore

import (
	"agenthub/pkg/domain"
	"agenthub/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	jobsTable = "agent_jobs"
)

func (s *Store) StoreJob(ctx context.Context, job domain.AgentJob) (*domain.AgentJob, error) {
	if job.ID == (domain.JobID{}) {
		job.ID = domain.NewJobID()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now()
	}
	if job.Status == "" {
		job.Status = domain.JobStatusQueued
	}

	var row sqlJob
	if err := row.FromDomain(job); err != nil {
		return nil, err
	}

	if _, err := s.Builder.Insert(jobsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not store job: %w", err)
	}

	return row.ToDomain()
}

func (s *Store) JobByID(ctx context.Context, id domain.JobID) (*domain.AgentJob, error) {
	var row sqlJob
	found, err := s.Builder.From(jobsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (s *Store) Jobs(ctx context.Context, filter storage.JobFilter) ([]domain.AgentJob, error) {
	var rows []sqlJob
	ds := paginate(s.Builder.From(jobsTable).Where(jobConditions(filter)...), filter.Limit, filter.Offset).
		Order(goqu.I("created_at").Desc())
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch jobs: %w", err)
	}

	out := make([]domain.AgentJob, 0, len(rows))
	for _, row := range rows {
		j, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}

	return out, nil
}

func jobConditions(filter storage.JobFilter) []goqu.Expression {
	var w []goqu.Expression
	if filter.AgentID != nil {
		w = append(w, goqu.I("agent_id").Eq(uuid.UUID(*filter.AgentID)))
	}
	if filter.UserWallet != "" {
		w = append(w, goqu.I("user_wallet").Eq(filter.UserWallet))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.IsDemo != nil {
		w = append(w, goqu.I("is_demo").Eq(*filter.IsDemo))
	}

	return w
}

// UpdateJob writes the provided fields. A terminal status without an explicit
// CompletedAt stamps completed_at with the current time.
func (s *Store) UpdateJob(ctx context.Context, id domain.JobID, updates storage.JobUpdates) (*domain.AgentJob, error) {
	rec := goqu.Record{}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
		if updates.Status.Terminal() && updates.CompletedAt.IsZero() {
			rec["completed_at"] = now()
		}
	}
	if !updates.CompletedAt.IsZero() {
		rec["completed_at"] = updates.CompletedAt.UTC()
	}
	if updates.Output != nil {
		if err := setJSON(rec, "output", updates.Output); err != nil {
			return nil, err
		}
	}
	if updates.Error != nil {
		rec["error"] = nullString(*updates.Error)
	}

	if len(rec) > 0 {
		res, err := s.Builder.Update(jobsTable).
			Set(rec).
			Where(goqu.I("id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not update job: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil, nil
		}
	}

	return s.JobByID(ctx, id)
}

func (s *Store) DeleteJob(ctx context.Context, id domain.JobID) (bool, error) {
	return s.deleteByID(ctx, jobsTable, uuid.UUID(id))
}

func (s *Store) CountDemoJobs(ctx context.Context, agentID domain.AgentID, wallet string) (int64, error) {
	count, err := s.Builder.From(jobsTable).Where(
		goqu.I("agent_id").Eq(uuid.UUID(agentID)),
		goqu.I("user_wallet").Eq(wallet),
		goqu.I("is_demo").IsTrue(),
	).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count demo jobs: %w", err)
	}

	return count, nil
}

func (s *Store) JobStats(ctx context.Context, agentID *domain.AgentID) (domain.JobStats, error) {
	var w []goqu.Expression
	if agentID != nil {
		w = append(w, goqu.I("agent_id").Eq(uuid.UUID(*agentID)))
	}

	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	err := s.Builder.From(jobsTable).
		Select(goqu.I("status"), goqu.COUNT("*").As("count")).
		Where(w...).
		GroupBy(goqu.I("status")).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return domain.JobStats{}, fmt.Errorf("could not aggregate jobs: %w", err)
	}

	var stats domain.JobStats
	for _, row := range rows {
		stats.Total += row.Count
		switch domain.JobStatus(row.Status) {
		case domain.JobStatusQueued:
			stats.Queued = row.Count
		case domain.JobStatusRunning:
			stats.Running = row.Count
		case domain.JobStatusCompleted:
			stats.Completed = row.Count
		case domain.JobStatusFailed:
			stats.Failed = row.Count
		}
	}

	stats.Demos, err = s.Builder.From(jobsTable).
		Where(append(w, goqu.I("is_demo").IsTrue())...).
		CountContext(ctx)
	if err != nil {
		return domain.JobStats{}, fmt.Errorf("could not count demo jobs: %w", err)
	}

	return stats, nil
}
