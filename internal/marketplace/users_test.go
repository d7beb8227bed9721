package marketplace_test

import (
	"context"
	"testing"

	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"
	mockstorage "agenthub/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterUser_CreatesOnce(t *testing.T) {
	env := newTestEnv(t)
	user := &domain.User{ID: domain.NewUserID(), WalletAddress: buyerWallet, Username: "bob"}

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().UserByWallet(gomock.Any(), buyerWallet).Return(nil, nil),
			tx.EXPECT().StoreUser(gomock.Any(), domain.User{
				WalletAddress: buyerWallet,
				Username:      "bob",
				Email:         "bob@example.com",
			}).Return(user, nil),
			tx.EXPECT().TouchLastLogin(gomock.Any(), buyerWallet).Return(nil),
			tx.EXPECT().UserByWallet(gomock.Any(), buyerWallet).Return(user, nil),
		)
	})

	got, err := env.service.RegisterUser(context.Background(), buyerWallet, "bob", "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().UserByWallet(gomock.Any(), buyerWallet).Return(user, nil),
			tx.EXPECT().TouchLastLogin(gomock.Any(), buyerWallet).Return(nil),
			tx.EXPECT().UserByWallet(gomock.Any(), buyerWallet).Return(user, nil),
		)
	})

	_, err = env.service.RegisterUser(context.Background(), buyerWallet, "other", "")
	require.NoError(t, err)
}

func TestRegisterUser_RequiresWallet(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.RegisterUser(context.Background(), "", "bob", "")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestUser_NotFound(t *testing.T) {
	env := newTestEnv(t)
	id := domain.NewUserID()

	env.storage.EXPECT().UserByID(gomock.Any(), id).Return(nil, nil)
	_, err := env.service.User(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	env.storage.EXPECT().UserByWallet(gomock.Any(), buyerWallet).Return(nil, nil)
	_, err = env.service.UserByWallet(context.Background(), buyerWallet)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := &domain.User{ID: domain.NewUserID(), WalletAddress: buyerWallet}

	_, err := env.service.UpdateUser(ctx, buyerWallet, storage.UserUpdates{IsAdmin: ptr(true)})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	updates := storage.UserUpdates{Username: ptr("bobby")}
	env.storage.EXPECT().UserByWallet(gomock.Any(), buyerWallet).Return(user, nil)
	env.storage.EXPECT().UpdateUser(gomock.Any(), user.ID, updates).
		Return(&domain.User{ID: user.ID, Username: "bobby"}, nil)

	got, err := env.service.UpdateUser(ctx, buyerWallet, updates)
	require.NoError(t, err)
	require.Equal(t, "bobby", got.Username)
}
