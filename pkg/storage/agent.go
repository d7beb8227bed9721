package storage

import (
	"agenthub/pkg/domain"
	"context"
)

// AgentFilter narrows an agent listing. Nil pointers and empty strings are ignored.
type AgentFilter struct {
	IsActive      *bool
	IsApproved    *bool
	Category      string
	CreatorWallet string
	Limit         uint
	Offset        uint
}

// AgentUpdates lists the agent fields to change. Only non-nil fields are written.
type AgentUpdates struct {
	Name             *string
	Description      *string
	ShortDescription *string
	Price            *int64
	Category         *string
	Tags             *[]string
	Avatar           *string
	IsActive         *bool
	IsApproved       *bool
	DemoLimit        *int
	NFTTokenID       *string
	InputSchema      *map[string]any
	CrewAIConfig     *map[string]any
}

type AgentStorage interface {
	// StoreAgent inserts an agent and returns it as stored.
	StoreAgent(ctx context.Context, agent domain.Agent) (*domain.Agent, error)
	// AgentByID returns nil when the agent does not exist.
	AgentByID(ctx context.Context, id domain.AgentID) (*domain.Agent, error)
	// Agents lists agents newest first.
	Agents(ctx context.Context, filter AgentFilter) ([]domain.Agent, error)
	// SearchAgents matches query case-insensitively against name, description
	// and short description of active, approved agents, newest first.
	SearchAgents(ctx context.Context, query string, limit, offset uint) ([]domain.Agent, error)
	// UpdateAgent applies updates, always bumping updated_at, and returns the
	// updated agent or nil when it does not exist.
	UpdateAgent(ctx context.Context, id domain.AgentID, updates AgentUpdates) (*domain.Agent, error)
	// DeleteAgent removes the agent along with its jobs and transactions.
	DeleteAgent(ctx context.Context, id domain.AgentID) (bool, error)
}
