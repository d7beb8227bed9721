package sqlstore

import (
	"agenthub/pkg/domain"
	"agenthub/pkg/storage"
	"context"
	"fmt"
	"slices"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

func (s *Store) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.ID == (domain.UserID{}) {
		user.ID = domain.NewUserID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now()
	}

	var row sqlUser
	if err := row.FromDomain(user); err != nil {
		return nil, err
	}

	if _, err := s.Builder.Insert(usersTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store user: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return row.ToDomain()
}

func (s *Store) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return s.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (s *Store) UserByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	return s.userWhere(ctx, goqu.I("wallet_address").Eq(wallet))
}

func (s *Store) userWhere(ctx context.Context, cond goqu.Expression) (*domain.User, error) {
	var row sqlUser
	found, err := s.Builder.From(usersTable).Where(cond).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (s *Store) Users(ctx context.Context, filter storage.UserFilter) ([]domain.User, error) {
	var w []goqu.Expression
	if filter.IsCreator != nil {
		w = append(w, goqu.I("is_creator").Eq(*filter.IsCreator))
	}
	if filter.IsAdmin != nil {
		w = append(w, goqu.I("is_admin").Eq(*filter.IsAdmin))
	}

	var rows []sqlUser
	ds := paginate(s.Builder.From(usersTable).Where(w...), filter.Limit, filter.Offset).
		Order(goqu.I("created_at").Desc())
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}

	return out, nil
}

func (s *Store) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{}
	if updates.Username != nil {
		rec["username"] = nullString(*updates.Username)
	}
	if updates.Email != nil {
		rec["email"] = nullString(*updates.Email)
	}
	setIf(rec, "is_creator", updates.IsCreator)
	setIf(rec, "is_admin", updates.IsAdmin)

	if len(rec) > 0 {
		res, err := s.Builder.Update(usersTable).
			Set(rec).
			Where(goqu.I("id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not update user: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil, nil
		}
	}

	return s.UserByID(ctx, id)
}

func (s *Store) DeleteUser(ctx context.Context, id domain.UserID) (bool, error) {
	return s.deleteByID(ctx, usersTable, uuid.UUID(id))
}

func (s *Store) TouchLastLogin(ctx context.Context, wallet string) error {
	_, err := s.Builder.Update(usersTable).
		Set(goqu.Record{"last_login_at": now()}).
		Where(goqu.I("wallet_address").Eq(wallet)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update last login: %w", err)
	}

	return nil
}

func (s *Store) AddPurchasedAgent(ctx context.Context, id domain.UserID, agentID domain.AgentID) error {
	return s.appendAgentID(ctx, id, "purchased_agents", agentID, func(u *domain.User) *[]domain.AgentID {
		return &u.PurchasedAgents
	})
}

func (s *Store) AddCreatedAgent(ctx context.Context, id domain.UserID, agentID domain.AgentID) error {
	return s.appendAgentID(ctx, id, "created_agents", agentID, func(u *domain.User) *[]domain.AgentID {
		return &u.CreatedAgents
	})
}

// appendAgentID is a read-modify-write of a JSON id list; callers that need
// it to be atomic run it inside a transaction.
func (s *Store) appendAgentID(ctx context.Context,
	id domain.UserID,
	col string,
	agentID domain.AgentID,
	list func(u *domain.User) *[]domain.AgentID) error {
	user, err := s.UserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return storage.ErrUserNotFound
	}

	ids := list(user)
	if slices.Contains(*ids, agentID) {
		return nil
	}

	encoded, err := marshalAgentIDs(append(*ids, agentID))
	if err != nil {
		return err
	}

	if _, err := s.Builder.Update(usersTable).
		Set(goqu.Record{col: encoded}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update %s: %w", col, err)
	}

	return nil
}
