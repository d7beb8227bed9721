package marketplace_test

import (
	"context"
	"testing"

	"agenthub/internal/marketplace"
	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	mockstorage "agenthub/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDemo_CountsWalletRuns(t *testing.T) {
	env := newTestEnv(t)
	agent := availableAgent()

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
		tx.EXPECT().CountDemoJobs(gomock.Any(), agent.ID, buyerWallet).Return(int64(1), nil)
		tx.EXPECT().StoreJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job domain.AgentJob) (*domain.AgentJob, error) {
				require.True(t, job.IsDemo)
				require.Equal(t, domain.JobStatusCompleted, job.Status)
				require.Equal(t, buyerWallet, job.UserWallet)
				require.False(t, job.CompletedAt.IsZero())
				job.ID = domain.NewJobID()

				return &job, nil
			})
	})

	res, err := env.service.Demo(context.Background(), agent.ID, marketplace.DemoRequest{
		Input:      map[string]any{"text": "hi"},
		UserWallet: buyerWallet,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), res.DemoCount)
	require.Equal(t, 2, res.DemoLimit)
	require.Equal(t, true, res.Output["demo"])
	require.Equal(t, "Summarizer", res.Output["agent_name"])
	require.Equal(t, map[string]any{"text": "hi"}, res.Output["input_received"])
}

func TestDemo_LimitReached(t *testing.T) {
	env := newTestEnv(t)
	agent := availableAgent()

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
		tx.EXPECT().CountDemoJobs(gomock.Any(), agent.ID, buyerWallet).Return(int64(2), nil)
	})

	_, err := env.service.Demo(context.Background(), agent.ID, marketplace.DemoRequest{UserWallet: buyerWallet})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, "Demo limit reached. You have used 2/2 demos for this agent.", serrors.MessageOf(err))
}

func TestDemo_AnonymousIsNotCounted(t *testing.T) {
	env := newTestEnv(t)
	agent := availableAgent()

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
		tx.EXPECT().StoreJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job domain.AgentJob) (*domain.AgentJob, error) {
				require.Equal(t, domain.AnonymousWallet, job.UserWallet)

				return &job, nil
			})
	})

	res, err := env.service.Demo(context.Background(), agent.ID, marketplace.DemoRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.DemoCount)
}

func TestDemo_UnavailableAgent(t *testing.T) {
	env := newTestEnv(t)
	agent := availableAgent()
	agent.IsApproved = false

	env.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
	})

	_, err := env.service.Demo(context.Background(), agent.ID, marketplace.DemoRequest{UserWallet: buyerWallet})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
