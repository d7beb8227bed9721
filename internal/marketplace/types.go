package marketplace

import "agenthub/pkg/domain"

// Caller identifies the authenticated wallet performing a request. The zero
// value is an anonymous caller.
type Caller struct {
	Wallet string
	Admin  bool
}

func (c Caller) Anonymous() bool { return c.Wallet == "" }

// owns reports whether the caller may manage resources of wallet.
func (c Caller) owns(wallet string) bool {
	return c.Admin || (!c.Anonymous() && c.Wallet == wallet)
}

// AgentQuery filters ListAgents. Nil flags default to true so that buyers only
// see listings that are both active and approved.
type AgentQuery struct {
	IsActive      *bool
	IsApproved    *bool
	Category      string
	CreatorWallet string
	Limit         int
	Offset        int
}

type AgentInput struct {
	Name             string
	Description      string
	ShortDescription string
	Creator          string
	// CreatorWallet defaults to the caller's wallet.
	CreatorWallet string
	Price         int64
	Category      string
	Tags          []string
	Avatar        string
	// DemoLimit falls back to the configured default when nil.
	DemoLimit    *int
	NFTTokenID   string
	InputSchema  map[string]any
	CrewAIConfig map[string]any
}

type DemoRequest struct {
	Input      map[string]any
	UserWallet string
}

type DemoResult struct {
	JobID     domain.JobID
	Status    domain.JobStatus
	Message   string
	Output    map[string]any
	DemoCount int64
	DemoLimit int
}

type PurchaseRequest struct {
	// TxHash is the payment transaction submitted by the buyer's wallet.
	TxHash string
	Input  map[string]any
}

type PurchaseResult struct {
	Transaction domain.Transaction
	Job         domain.AgentJob
}

type SeedResult struct {
	User         domain.User
	Agent        domain.Agent
	UserCreated  bool
	AgentCreated bool
}
