// Package explorer defines read access to a Cardano chain indexer.
package explorer

import (
	"context"

	"agenthub/pkg/domain"
)

// Explorer queries balances and transactions on the configured network.
// Lookups of unknown addresses or transactions fail with serrors.ErrNotFound;
// quota exhaustion on the provider side surfaces as serrors.ErrRateLimited.
//
//go:generate mockgen -package mockexplorer -source=interface.go -destination=mock/mockexplorer.go *
type Explorer interface {
	// Address returns the lovelace and native asset balance of address.
	Address(ctx context.Context, address string) (*domain.AddressInfo, error)
	// UTXOs lists the unspent outputs held by address.
	UTXOs(ctx context.Context, address string) ([]domain.UTXO, error)
	// AddressTransactions returns the latest count transactions touching address, newest first.
	AddressTransactions(ctx context.Context, address string, count int) ([]domain.AddressTx, error)
	// Transaction fetches a confirmed transaction by hash.
	Transaction(ctx context.Context, hash string) (*domain.ChainTx, error)
}
