package domain

import "time"

// TransactionStatus is the confirmation state of a payment on chain.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusConfirmed, TransactionStatusFailed:
		return true
	}

	return false
}

// Transaction records an agent purchase paid from a buyer wallet to the
// creator wallet. Amount is in lovelace.
type Transaction struct {
	ID          TransactionID
	TxHash      string
	FromWallet  string
	ToWallet    string
	Amount      int64
	AgentID     AgentID
	Status      TransactionStatus
	CreatedAt   time.Time
	ConfirmedAt time.Time
	BlockHeight int64
}
