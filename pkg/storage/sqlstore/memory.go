package sqlstore

import (
	"agenthub/pkg/domain"
	"context"
	"fmt"
	"slices"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	memoryTable = "agent_memory"
)

func (s *Store) StoreMemory(ctx context.Context, item domain.MemoryItem) error {
	if item.ID == (domain.MemoryID{}) {
		item.ID = domain.MemoryID(uuid.New())
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = now()
	}
	tags, err := marshalText(nonNilSlice(item.Tags))
	if err != nil {
		return fmt.Errorf("could not marshal memory tags: %w", err)
	}

	row := sqlMemory{
		ID:        uuid.UUID(item.ID),
		CreatedAt: item.Timestamp.UTC(),
		Agent:     item.Agent,
		Goal:      item.Goal,
		Result:    item.Result,
		Tags:      tags,
	}
	if _, err := s.Builder.Insert(memoryTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store memory: %w", err)
	}

	return nil
}

func (s *Store) Memories(ctx context.Context, limit uint) ([]domain.MemoryItem, error) {
	var rows []sqlMemory
	ds := paginate(s.Builder.From(memoryTable), limit, 0).Order(goqu.I("created_at").Desc())
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch memories: %w", err)
	}

	out := make([]domain.MemoryItem, 0, len(rows))
	for _, row := range rows {
		m, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	slices.Reverse(out)

	return out, nil
}

func (s *Store) ClearMemories(ctx context.Context) error {
	if _, err := s.Builder.Delete(memoryTable).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear memories: %w", err)
	}

	return nil
}
