package storage

import (
	"agenthub/pkg/domain"
	"context"
	"time"
)

// TransactionFilter narrows a transaction listing. Wallet matches either side
// of the payment.
type TransactionFilter struct {
	Wallet  string
	AgentID *domain.AgentID
	Status  domain.TransactionStatus
	Limit   uint
	Offset  uint
}

type TransactionStorage interface {
	// StoreTransaction returns ErrDuplicate when the tx hash is already recorded.
	StoreTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)
	TransactionByID(ctx context.Context, id domain.TransactionID) (*domain.Transaction, error)
	TransactionByHash(ctx context.Context, hash string) (*domain.Transaction, error)
	Transactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	// UpdateTransactionStatus sets the status and, when non-zero, the
	// confirmation time and block height. It returns nil when not found.
	UpdateTransactionStatus(ctx context.Context,
		id domain.TransactionID,
		status domain.TransactionStatus,
		confirmedAt time.Time,
		blockHeight int64) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id domain.TransactionID) (bool, error)
	// TotalEarnings sums confirmed payments received by wallet, in lovelace.
	TotalEarnings(ctx context.Context, wallet string) (int64, error)
	// AgentEarnings sums confirmed payments made for the agent, in lovelace.
	AgentEarnings(ctx context.Context, agentID domain.AgentID) (int64, error)
}
