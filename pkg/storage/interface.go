// Package storage defines the persistence interfaces the marketplace relies on.
// It abstracts queries and transaction management so that different backends
// (SQLite for a single-file deployment, PostgreSQL for a shared server) can
// provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite of every domain-specific storage capability.
type AllStorage interface {
	AgentStorage
	UserStorage
	TransactionStorage
	JobStorage
	MemoryStorage
	QueueStorage
}

// TxStorage is a storage handle bound to a database transaction.
// Implementations become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying connection pool.
	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits when cb
	// returns nil or rolls back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
