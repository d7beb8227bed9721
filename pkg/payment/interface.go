// Package payment defines access to the agent registry and the payment
// service that holds the operator wallet and submits transfers.
package payment

import "context"

// Status reports the health payload of each service, or the error
// encountered while reaching it.
type Status struct {
	Registry any `json:"registry"`
	Payment  any `json:"payment"`
}

// AgentList is the registry listing. Note explains an empty list when the
// registry could not be reached.
type AgentList struct {
	Agents []any  `json:"agents"`
	Note   string `json:"note,omitempty"`
}

// Transfer describes a submitted payment.
type Transfer struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Lovelace int64  `json:"lovelace"`
	TxHash   string `json:"tx_hash"`
}

// Client is implemented by the Masumi REST client.
//
//go:generate mockgen -package mockpayment -source=interface.go -destination=mock/mockpayment.go *
type Client interface {
	// Status never fails: unreachable services are reported inside Status.
	Status(ctx context.Context) Status
	// Agents lists registered agents. An unreachable registry yields an empty
	// list with a note rather than an error.
	Agents(ctx context.Context) (AgentList, error)
	// Wallet returns the address payments are sent from.
	Wallet(ctx context.Context) (string, error)
	// Transfer sends lovelace from the operator wallet to the given address.
	Transfer(ctx context.Context, to string, lovelace int64) (*Transfer, error)
}
