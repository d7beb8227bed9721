package domain

import (
	"slices"
	"time"
)

// User is a marketplace account keyed by its Cardano wallet address.
type User struct {
	ID            UserID
	WalletAddress string
	Username      string
	Email         string

	IsCreator bool
	IsAdmin   bool

	CreatedAt   time.Time
	LastLoginAt time.Time

	// PurchasedAgents lists agents the user bought access to, without duplicates.
	PurchasedAgents []AgentID
	// CreatedAgents lists agents the user published, without duplicates.
	CreatedAgents []AgentID
}

// HasPurchased reports whether the user already owns full access to the agent.
func (u User) HasPurchased(id AgentID) bool {
	return slices.Contains(u.PurchasedAgents, id)
}
