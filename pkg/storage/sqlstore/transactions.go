package sqlstore

import (
	"agenthub/pkg/domain"
	"agenthub/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	transactionsTable = "transactions"
)

func (s *Store) StoreTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	if tx.ID == (domain.TransactionID{}) {
		tx.ID = domain.NewTransactionID()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now()
	}
	if tx.Status == "" {
		tx.Status = domain.TransactionStatusPending
	}

	var row sqlTransaction
	row.FromDomain(tx)

	if _, err := s.Builder.Insert(transactionsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store transaction: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store transaction: %w", err)
	}

	return row.ToDomain(), nil
}

func (s *Store) TransactionByID(ctx context.Context, id domain.TransactionID) (*domain.Transaction, error) {
	return s.transactionWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (s *Store) TransactionByHash(ctx context.Context, hash string) (*domain.Transaction, error) {
	return s.transactionWhere(ctx, goqu.I("tx_hash").Eq(hash))
}

func (s *Store) transactionWhere(ctx context.Context, cond goqu.Expression) (*domain.Transaction, error) {
	var row sqlTransaction
	found, err := s.Builder.From(transactionsTable).Where(cond).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch transaction: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (s *Store) Transactions(ctx context.Context, filter storage.TransactionFilter) ([]domain.Transaction, error) {
	var w []goqu.Expression
	if filter.Wallet != "" {
		w = append(w, goqu.Or(
			goqu.I("from_wallet").Eq(filter.Wallet),
			goqu.I("to_wallet").Eq(filter.Wallet),
		))
	}
	if filter.AgentID != nil {
		w = append(w, goqu.I("agent_id").Eq(uuid.UUID(*filter.AgentID)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	var rows []sqlTransaction
	ds := paginate(s.Builder.From(transactionsTable).Where(w...), filter.Limit, filter.Offset).
		Order(goqu.I("created_at").Desc())
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch transactions: %w", err)
	}

	out := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (s *Store) UpdateTransactionStatus(ctx context.Context,
	id domain.TransactionID,
	status domain.TransactionStatus,
	confirmedAt time.Time,
	blockHeight int64) (*domain.Transaction, error) {
	rec := goqu.Record{"status": string(status)}
	if !confirmedAt.IsZero() {
		rec["confirmed_at"] = confirmedAt.UTC()
	}
	if blockHeight > 0 {
		rec["block_height"] = blockHeight
	}

	res, err := s.Builder.Update(transactionsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update transaction status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}

	return s.TransactionByID(ctx, id)
}

func (s *Store) DeleteTransaction(ctx context.Context, id domain.TransactionID) (bool, error) {
	return s.deleteByID(ctx, transactionsTable, uuid.UUID(id))
}

func (s *Store) TotalEarnings(ctx context.Context, wallet string) (int64, error) {
	return s.sumConfirmed(ctx, goqu.I("to_wallet").Eq(wallet))
}

func (s *Store) AgentEarnings(ctx context.Context, agentID domain.AgentID) (int64, error) {
	return s.sumConfirmed(ctx, goqu.I("agent_id").Eq(uuid.UUID(agentID)))
}

func (s *Store) sumConfirmed(ctx context.Context, cond goqu.Expression) (int64, error) {
	var total int64
	_, err := s.Builder.From(transactionsTable).
		Select(goqu.Cast(goqu.COALESCE(goqu.SUM("amount"), 0), "BIGINT")).
		Where(cond, goqu.I("status").Eq(string(domain.TransactionStatusConfirmed))).
		ScanValContext(ctx, &total)
	if err != nil {
		return 0, fmt.Errorf("could not sum earnings: %w", err)
	}

	return total, nil
}
