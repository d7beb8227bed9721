package sqlstore

import (
	"agenthub/pkg/domain"
	"agenthub/pkg/storage"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	agentsTable = "agents"
)

// StoreAgent generates the ID and timestamps when they are not set.
func (s *Store) StoreAgent(ctx context.Context, agent domain.Agent) (*domain.Agent, error) {
	if agent.ID == (domain.AgentID{}) {
		agent.ID = domain.NewAgentID()
	}
	if agent.CreatedAt.IsZero() {
		agent.CreatedAt = now()
	}
	if agent.UpdatedAt.IsZero() {
		agent.UpdatedAt = agent.CreatedAt
	}

	var row sqlAgent
	if err := row.FromDomain(agent); err != nil {
		return nil, err
	}

	if _, err := s.Builder.Insert(agentsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store agent: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store agent: %w", err)
	}

	return row.ToDomain()
}

func (s *Store) AgentByID(ctx context.Context, id domain.AgentID) (*domain.Agent, error) {
	var row sqlAgent
	found, err := s.Builder.From(agentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch agent by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (s *Store) Agents(ctx context.Context, filter storage.AgentFilter) ([]domain.Agent, error) {
	var w []goqu.Expression
	if filter.IsActive != nil {
		w = append(w, goqu.I("is_active").Eq(*filter.IsActive))
	}
	if filter.IsApproved != nil {
		w = append(w, goqu.I("is_approved").Eq(*filter.IsApproved))
	}
	if filter.Category != "" {
		w = append(w, goqu.I("category").Eq(filter.Category))
	}
	if filter.CreatorWallet != "" {
		w = append(w, goqu.I("creator_wallet").Eq(filter.CreatorWallet))
	}

	ds := paginate(s.Builder.From(agentsTable).Where(w...), filter.Limit, filter.Offset)

	return s.scanAgents(ctx, ds)
}

func (s *Store) SearchAgents(ctx context.Context, query string, limit, offset uint) ([]domain.Agent, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	ds := s.Builder.From(agentsTable).Where(
		goqu.I("is_active").IsTrue(),
		goqu.I("is_approved").IsTrue(),
		goqu.Or(
			goqu.Func("LOWER", goqu.I("name")).Like(pattern),
			goqu.Func("LOWER", goqu.I("description")).Like(pattern),
			goqu.Func("LOWER", goqu.I("short_description")).Like(pattern),
		),
	)

	return s.scanAgents(ctx, paginate(ds, limit, offset))
}

func (s *Store) UpdateAgent(ctx context.Context,
	id domain.AgentID,
	updates storage.AgentUpdates) (*domain.Agent, error) {
	rec := goqu.Record{
		"updated_at": now(),
	}
	setIf(rec, "name", updates.Name)
	setIf(rec, "description", updates.Description)
	setIf(rec, "short_description", updates.ShortDescription)
	setIf(rec, "price", updates.Price)
	setIf(rec, "category", updates.Category)
	setIf(rec, "is_active", updates.IsActive)
	setIf(rec, "is_approved", updates.IsApproved)
	setIf(rec, "demo_limit", updates.DemoLimit)
	if updates.Avatar != nil {
		rec["avatar"] = nullString(*updates.Avatar)
	}
	if updates.NFTTokenID != nil {
		rec["nft_token_id"] = nullString(*updates.NFTTokenID)
	}
	if updates.Tags != nil {
		if err := setJSON(rec, "tags", nonNilSlice(*updates.Tags)); err != nil {
			return nil, err
		}
	}
	if updates.InputSchema != nil {
		if err := setJSON(rec, "input_schema", nonNilMap(*updates.InputSchema)); err != nil {
			return nil, err
		}
	}
	if updates.CrewAIConfig != nil {
		if err := setJSON(rec, "crewai_config", nonNilMap(*updates.CrewAIConfig)); err != nil {
			return nil, err
		}
	}

	res, err := s.Builder.Update(agentsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update agent: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}

	return s.AgentByID(ctx, id)
}

func (s *Store) DeleteAgent(ctx context.Context, id domain.AgentID) (bool, error) {
	return s.deleteByID(ctx, agentsTable, uuid.UUID(id))
}

func (s *Store) scanAgents(ctx context.Context, ds *goqu.SelectDataset) ([]domain.Agent, error) {
	var rows []sqlAgent
	if err := ds.Order(goqu.I("created_at").Desc()).Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch agents: %w", err)
	}

	out := make([]domain.Agent, 0, len(rows))
	for _, row := range rows {
		a, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}

	return out, nil
}

func (s *Store) deleteByID(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	res, err := s.Builder.Delete(table).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete from %s: %w", table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not count deleted rows: %w", err)
	}

	return n > 0, nil
}

// paginate applies LIMIT and OFFSET only when they are positive. SQLite
// rejects an OFFSET without LIMIT, so an unbounded limit is added then.
func paginate(ds *goqu.SelectDataset, limit, offset uint) *goqu.SelectDataset {
	if limit == 0 && offset > 0 {
		limit = math.MaxInt32
	}
	if limit > 0 {
		ds = ds.Limit(limit)
	}
	if offset > 0 {
		ds = ds.Offset(offset)
	}

	return ds
}

func setIf[T any](rec goqu.Record, col string, v *T) {
	if v != nil {
		rec[col] = *v
	}
}

func setJSON(rec goqu.Record, col string, v any) error {
	s, err := marshalText(v)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", col, err)
	}
	rec[col] = s

	return nil
}
