package marketplace_test

import (
	"context"
	"testing"

	"agenthub/internal/marketplace"
	"agenthub/pkg/domain"
	"agenthub/pkg/storage"
	mockstorage "agenthub/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeed_CreatesSampleData(t *testing.T) {
	env := newTestEnv(t)
	user := &domain.User{ID: domain.NewUserID(), WalletAddress: marketplace.SampleWallet, IsCreator: true}

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByWallet(gomock.Any(), marketplace.SampleWallet).Return(nil, nil)
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (*domain.User, error) {
				require.Equal(t, "sample_user", u.Username)
				require.True(t, u.IsCreator)

				return user, nil
			})
		tx.EXPECT().Agents(gomock.Any(), storage.AgentFilter{CreatorWallet: marketplace.SampleWallet, Limit: 1}).
			Return(nil, nil)
		tx.EXPECT().StoreAgent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.Agent) (*domain.Agent, error) {
				require.Equal(t, "Resume Helper AI", a.Name)
				require.Equal(t, int64(5_000_000), a.Price)
				require.True(t, a.Available())
				a.ID = domain.NewAgentID()

				return &a, nil
			})
		tx.EXPECT().AddCreatedAgent(gomock.Any(), user.ID, gomock.Any()).Return(nil)
		tx.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	})

	res, err := env.service.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, res.UserCreated)
	require.True(t, res.AgentCreated)
	require.Equal(t, []string{"resume", "career", "ai", "writing"}, res.Agent.Tags)
}

func TestSeed_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	user := &domain.User{ID: domain.NewUserID(), WalletAddress: marketplace.SampleWallet}
	agent := domain.Agent{ID: domain.NewAgentID(), Name: "Resume Helper AI"}

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByWallet(gomock.Any(), marketplace.SampleWallet).Return(user, nil)
		tx.EXPECT().Agents(gomock.Any(), gomock.Any()).Return([]domain.Agent{agent}, nil)
		tx.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	})

	res, err := env.service.Seed(context.Background())
	require.NoError(t, err)
	require.False(t, res.UserCreated)
	require.False(t, res.AgentCreated)
	require.Equal(t, agent.ID, res.Agent.ID)
}
