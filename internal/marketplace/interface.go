package marketplace

import (
	"context"

	"agenthub/pkg/domain"
	"agenthub/pkg/storage"
)

//go:generate mockgen -package mockmarketplace -source=interface.go -destination=mock/mockmarketplace.go *
type Service interface {
	ListAgents(ctx context.Context, query AgentQuery) ([]domain.Agent, error)
	SearchAgents(ctx context.Context, q string, limit, offset int) ([]domain.Agent, error)
	Agent(ctx context.Context, id domain.AgentID) (*domain.Agent, error)
	CreateAgent(ctx context.Context, caller Caller, input AgentInput) (*domain.Agent, error)
	UpdateAgent(ctx context.Context,
		caller Caller,
		id domain.AgentID,
		updates storage.AgentUpdates) (*domain.Agent, error)
	DeleteAgent(ctx context.Context, caller Caller, id domain.AgentID) error

	Demo(ctx context.Context, id domain.AgentID, req DemoRequest) (*DemoResult, error)
	Purchase(ctx context.Context, caller Caller, id domain.AgentID, req PurchaseRequest) (*PurchaseResult, error)
	// ExecuteJob runs a purchased job. It is called by the background worker.
	ExecuteJob(ctx context.Context, id domain.JobID) error

	Job(ctx context.Context, caller Caller, id domain.JobID) (*domain.AgentJob, error)
	Jobs(ctx context.Context, caller Caller, filter storage.JobFilter) ([]domain.AgentJob, error)
	JobStats(ctx context.Context, agentID *domain.AgentID) (domain.JobStats, error)

	RegisterUser(ctx context.Context, wallet, username, email string) (*domain.User, error)
	User(ctx context.Context, id domain.UserID) (*domain.User, error)
	UserByWallet(ctx context.Context, wallet string) (*domain.User, error)
	UpdateUser(ctx context.Context, wallet string, updates storage.UserUpdates) (*domain.User, error)

	Transaction(ctx context.Context, caller Caller, id domain.TransactionID) (*domain.Transaction, error)
	Transactions(ctx context.Context, caller Caller, filter storage.TransactionFilter) ([]domain.Transaction, error)
	VerifyTransaction(ctx context.Context, caller Caller, id domain.TransactionID) (*domain.Transaction, error)
	Earnings(ctx context.Context, wallet string) (int64, error)
	AgentEarnings(ctx context.Context, agentID domain.AgentID) (int64, error)
	WalletBalance(ctx context.Context, address string) (*domain.AddressInfo, error)

	Seed(ctx context.Context) (*SeedResult, error)
}
