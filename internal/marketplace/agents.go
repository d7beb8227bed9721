package marketplace

import (
	"context"
	"fmt"
	"strings"

	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"
)

func (m *marketplace) page(limit, offset int) (uint, uint, error) {
	if limit == 0 {
		limit = m.options.DefaultPageSize
	}
	if limit < 0 {
		return 0, 0, serrors.With(serrors.ErrBadRequest, "limit must be positive")
	}
	if limit > m.options.MaxPageSize {
		return 0, 0, serrors.With(serrors.ErrBadRequest, "limit cannot exceed %d", m.options.MaxPageSize)
	}
	if offset < 0 {
		return 0, 0, serrors.With(serrors.ErrBadRequest, "offset cannot be negative")
	}

	return uint(limit), uint(offset), nil
}

func (m *marketplace) ListAgents(ctx context.Context, query AgentQuery) ([]domain.Agent, error) {
	limit, offset, err := m.page(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	yes := true
	filter := storage.AgentFilter{
		IsActive:      query.IsActive,
		IsApproved:    query.IsApproved,
		Category:      query.Category,
		CreatorWallet: query.CreatorWallet,
		Limit:         limit,
		Offset:        offset,
	}
	if filter.IsActive == nil {
		filter.IsActive = &yes
	}
	if filter.IsApproved == nil {
		filter.IsApproved = &yes
	}

	agents, err := m.storage.Agents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list agents: %w", err)
	}

	return agents, nil
}

func (m *marketplace) SearchAgents(ctx context.Context, q string, limit, offset int) ([]domain.Agent, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "search query cannot be empty")
	}
	l, o, err := m.page(limit, offset)
	if err != nil {
		return nil, err
	}

	agents, err := m.storage.SearchAgents(ctx, q, l, o)
	if err != nil {
		return nil, fmt.Errorf("could not search agents: %w", err)
	}

	return agents, nil
}

func (m *marketplace) Agent(ctx context.Context, id domain.AgentID) (*domain.Agent, error) {
	agent, err := m.storage.AgentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get agent: %w", err)
	}
	if agent == nil {
		return nil, serrors.With(serrors.ErrNotFound, "agent not found")
	}

	return agent, nil
}

// CreateAgent publishes a new listing. It starts active but unapproved and
// the creator is registered as a creator user.
func (m *marketplace) CreateAgent(ctx context.Context, caller Caller, input AgentInput) (*domain.Agent, error) {
	if caller.Anonymous() {
		return nil, serrors.With(serrors.ErrUnauthorized, "authentication required")
	}
	if input.CreatorWallet == "" {
		input.CreatorWallet = caller.Wallet
	}
	if !caller.owns(input.CreatorWallet) {
		return nil, serrors.With(serrors.ErrForbidden, "agents can only be created for your own wallet")
	}
	if input.Price < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "price cannot be negative")
	}
	demoLimit := m.options.DefaultDemoLimit
	if input.DemoLimit != nil {
		demoLimit = *input.DemoLimit
	}
	if demoLimit < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "demo limit cannot be negative")
	}

	agent := domain.Agent{
		Name:             input.Name,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Creator:          input.Creator,
		CreatorWallet:    input.CreatorWallet,
		Price:            input.Price,
		Category:         input.Category,
		Tags:             nonNil(input.Tags),
		Avatar:           input.Avatar,
		IsActive:         true,
		IsApproved:       false,
		DemoLimit:        demoLimit,
		NFTTokenID:       input.NFTTokenID,
		InputSchema:      nonNilMap(input.InputSchema),
		CrewAIConfig:     nonNilMap(input.CrewAIConfig),
	}

	var created *domain.Agent
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		created, err = tx.StoreAgent(ctx, agent)
		if err != nil {
			return fmt.Errorf("could not store agent: %w", err)
		}

		creator, err := ensureUser(ctx, tx, created.CreatorWallet)
		if err != nil {
			return err
		}
		if !creator.IsCreator {
			yes := true
			if _, err := tx.UpdateUser(ctx, creator.ID, storage.UserUpdates{IsCreator: &yes}); err != nil {
				return fmt.Errorf("could not mark user as creator: %w", err)
			}
		}
		if err := tx.AddCreatedAgent(ctx, creator.ID, created.ID); err != nil {
			return fmt.Errorf("could not link agent to creator: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create agent: %w", err)
	}

	return created, nil
}

func (m *marketplace) UpdateAgent(ctx context.Context,
	caller Caller,
	id domain.AgentID,
	updates storage.AgentUpdates) (*domain.Agent, error) {
	agent, err := m.Agent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.owns(agent.CreatorWallet) {
		return nil, serrors.With(serrors.ErrForbidden, "only the creator can modify this agent")
	}
	if updates.IsApproved != nil && !caller.Admin {
		return nil, serrors.With(serrors.ErrForbidden, "only administrators can approve agents")
	}
	if updates.Price != nil && *updates.Price < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "price cannot be negative")
	}
	if updates.DemoLimit != nil && *updates.DemoLimit < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "demo limit cannot be negative")
	}

	updated, err := m.storage.UpdateAgent(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update agent: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "agent not found")
	}

	return updated, nil
}

func (m *marketplace) DeleteAgent(ctx context.Context, caller Caller, id domain.AgentID) error {
	agent, err := m.Agent(ctx, id)
	if err != nil {
		return err
	}
	if !caller.owns(agent.CreatorWallet) {
		return serrors.With(serrors.ErrForbidden, "only the creator can delete this agent")
	}

	deleted, err := m.storage.DeleteAgent(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete agent: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "agent not found")
	}

	return nil
}

// ensureUser returns the user owning wallet, registering it when missing.
func ensureUser(ctx context.Context, tx storage.AllStorage, wallet string) (*domain.User, error) {
	user, err := tx.UserByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = tx.StoreUser(ctx, domain.User{WalletAddress: wallet})
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}
