package storage

import (
	"agenthub/pkg/domain"
	"context"
)

type UserFilter struct {
	IsCreator *bool
	IsAdmin   *bool
	Limit     uint
	Offset    uint
}

// UserUpdates lists the user fields to change. Only non-nil fields are written.
type UserUpdates struct {
	Username  *string
	Email     *string
	IsCreator *bool
	IsAdmin   *bool
}

type UserStorage interface {
	// StoreUser inserts a user. It returns ErrDuplicate when the wallet
	// address is already registered.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	UserByWallet(ctx context.Context, wallet string) (*domain.User, error)
	Users(ctx context.Context, filter UserFilter) ([]domain.User, error)
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	DeleteUser(ctx context.Context, id domain.UserID) (bool, error)
	// TouchLastLogin sets last_login_at to now for the wallet's user.
	TouchLastLogin(ctx context.Context, wallet string) error
	// AddPurchasedAgent appends agentID to the user's purchased agents unless
	// already present. It returns ErrUserNotFound for unknown users.
	AddPurchasedAgent(ctx context.Context, id domain.UserID, agentID domain.AgentID) error
	// AddCreatedAgent behaves like AddPurchasedAgent for created agents.
	AddCreatedAgent(ctx context.Context, id domain.UserID, agentID domain.AgentID) error
}
