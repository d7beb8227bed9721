package marketplace_test

import (
	"context"
	"errors"
	"testing"

	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func queuedJob(agentID domain.AgentID) *domain.AgentJob {
	return &domain.AgentJob{
		ID:         domain.NewJobID(),
		AgentID:    agentID,
		UserWallet: buyerWallet,
		Status:     domain.JobStatusQueued,
		Input:      map[string]any{"text": "summarize me"},
	}
}

func expectStatus(t *testing.T, env *testEnv, id domain.JobID, status domain.JobStatus) *gomock.Call {
	t.Helper()

	return env.storage.EXPECT().UpdateJob(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.JobID, updates storage.JobUpdates) (*domain.AgentJob, error) {
			require.Equal(t, status, updates.Status)

			return &domain.AgentJob{ID: id, Status: updates.Status, Output: updates.Output}, nil
		})
}

func TestExecuteJob_Completes(t *testing.T) {
	env := newTestEnv(t)
	agent := availableAgent()
	job := queuedJob(agent.ID)

	env.storage.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	env.storage.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
	gomock.InOrder(
		expectStatus(t, env, job.ID, domain.JobStatusRunning),
		env.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, system, prompt string) (string, error) {
				require.Contains(t, system, "Summarizer")
				require.Contains(t, prompt, "summarize me")

				return "done", nil
			}),
		env.storage.EXPECT().UpdateJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.JobID, updates storage.JobUpdates) (*domain.AgentJob, error) {
				require.Equal(t, domain.JobStatusCompleted, updates.Status)
				require.Equal(t, "done", updates.Output["result"])
				require.Equal(t, "gemini-test", updates.Output["model"])

				return &domain.AgentJob{}, nil
			}),
	)
	env.generator.EXPECT().Model().Return("gemini-test")

	require.NoError(t, env.service.ExecuteJob(context.Background(), job.ID))
}

func TestExecuteJob_AlreadyCompleted(t *testing.T) {
	env := newTestEnv(t)
	job := queuedJob(domain.NewAgentID())
	job.Status = domain.JobStatusCompleted

	env.storage.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)

	require.NoError(t, env.service.ExecuteJob(context.Background(), job.ID))
}

func TestExecuteJob_MissingRows(t *testing.T) {
	env := newTestEnv(t)
	job := queuedJob(domain.NewAgentID())

	env.storage.EXPECT().JobByID(gomock.Any(), job.ID).Return(nil, nil)
	require.ErrorIs(t, env.service.ExecuteJob(context.Background(), job.ID), serrors.ErrConflict)

	env.storage.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	env.storage.EXPECT().AgentByID(gomock.Any(), job.AgentID).Return(nil, nil)
	expectStatus(t, env, job.ID, domain.JobStatusFailed)
	require.ErrorIs(t, env.service.ExecuteJob(context.Background(), job.ID), serrors.ErrConflict)
}

func TestExecuteJob_RateLimitedRequeues(t *testing.T) {
	env := newTestEnv(t)
	agent := availableAgent()
	job := queuedJob(agent.ID)

	env.storage.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	env.storage.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
	gomock.InOrder(
		expectStatus(t, env, job.ID, domain.JobStatusRunning),
		env.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", serrors.With(serrors.ErrRateLimited, "quota")),
		expectStatus(t, env, job.ID, domain.JobStatusQueued),
	)

	err := env.service.ExecuteJob(context.Background(), job.ID)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestExecuteJob_GenerationFails(t *testing.T) {
	env := newTestEnv(t)
	agent := availableAgent()
	job := queuedJob(agent.ID)
	boom := errors.New("boom")

	env.storage.EXPECT().JobByID(gomock.Any(), job.ID).Return(job, nil)
	env.storage.EXPECT().AgentByID(gomock.Any(), agent.ID).Return(agent, nil)
	gomock.InOrder(
		expectStatus(t, env, job.ID, domain.JobStatusRunning),
		env.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", boom),
		env.storage.EXPECT().UpdateJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.JobID, updates storage.JobUpdates) (*domain.AgentJob, error) {
				require.Equal(t, domain.JobStatusFailed, updates.Status)
				require.NotNil(t, updates.Error)
				require.Equal(t, "boom", *updates.Error)

				return &domain.AgentJob{}, nil
			}),
	)

	require.ErrorIs(t, env.service.ExecuteJob(context.Background(), job.ID), boom)
}
