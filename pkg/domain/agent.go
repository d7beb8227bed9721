package domain

import "time"

// Agent is a listing in the marketplace. Price is expressed in lovelace.
type Agent struct {
	ID               AgentID
	Name             string
	Description      string
	ShortDescription string
	Creator          string
	CreatorWallet    string
	Price            int64
	Category         string
	Tags             []string
	Avatar           string

	// IsActive is controlled by the creator, IsApproved by an administrator.
	// Only agents that are both active and approved are offered to buyers.
	IsActive   bool
	IsApproved bool
	// DemoLimit is the number of free demo runs granted per wallet.
	DemoLimit int

	CreatedAt time.Time
	UpdatedAt time.Time

	NFTTokenID   string
	InputSchema  map[string]any
	CrewAIConfig map[string]any
}

// Available reports whether the agent can be demoed or purchased.
func (a Agent) Available() bool {
	return a.IsActive && a.IsApproved
}
