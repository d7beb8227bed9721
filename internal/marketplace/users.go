package marketplace

import (
	"context"
	"errors"
	"fmt"

	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"
)

// RegisterUser creates the user for wallet on first sign in, and records the
// login time on every call. Username and email are only applied when the user
// is created.
func (m *marketplace) RegisterUser(ctx context.Context, wallet, username, email string) (*domain.User, error) {
	if wallet == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "authentication required")
	}

	var user *domain.User
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.UserByWallet(ctx, wallet)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if existing == nil {
			_, err := tx.StoreUser(ctx, domain.User{
				WalletAddress: wallet,
				Username:      username,
				Email:         email,
			})
			if err != nil && !errors.Is(err, storage.ErrDuplicate) {
				return fmt.Errorf("could not store user: %w", err)
			}
		}
		if err := tx.TouchLastLogin(ctx, wallet); err != nil {
			return fmt.Errorf("could not record login: %w", err)
		}

		user, err = tx.UserByWallet(ctx, wallet)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not register user: %w", err)
	}

	return user, nil
}

func (m *marketplace) User(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := m.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (m *marketplace) UserByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	user, err := m.storage.UserByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// UpdateUser changes the profile of the user owning wallet. Role flags cannot
// be changed this way.
func (m *marketplace) UpdateUser(ctx context.Context, wallet string, updates storage.UserUpdates) (*domain.User, error) {
	if updates.IsAdmin != nil || updates.IsCreator != nil {
		return nil, serrors.With(serrors.ErrForbidden, "roles cannot be changed")
	}
	user, err := m.UserByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}

	updated, err := m.storage.UpdateUser(ctx, user.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return updated, nil
}
