package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenthub/internal/marketplace"
	mockmarketplace "agenthub/internal/marketplace/mock"
	"agenthub/internal/worker"
	"agenthub/pkg/domain"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, jobID string) *river.Job[marketplace.AgentRunJobArgs] {
	return &river.Job[marketplace.AgentRunJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   marketplace.AgentRunJobArgs{JobID: jobID},
	}
}

func TestAgentRunWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockmarketplace.NewMockService(ctrl)
	w := worker.NewAgentRunWorker(service, time.Minute)
	id := domain.NewJobID()

	service.EXPECT().ExecuteJob(gomock.Any(), id).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, id.String())))
}

func TestAgentRunWorker_Work_Cancels(t *testing.T) {
	for name, err := range map[string]error{
		"conflict":    serrors.With(serrors.ErrConflict, "job gone"),
		"not found":   serrors.With(serrors.ErrNotFound, "agent gone"),
		"unavailable": serrors.With(serrors.ErrUnavailable, "no generator"),
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mockmarketplace.NewMockService(ctrl)
			w := worker.NewAgentRunWorker(service, time.Minute)
			id := domain.NewJobID()

			service.EXPECT().ExecuteJob(gomock.Any(), id).Return(err)

			werr := w.Work(context.Background(), makeJob(2, id.String()))
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, werr, &cancelErr)
		})
	}
}

func TestAgentRunWorker_Work_InvalidJobIDCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worker.NewAgentRunWorker(mockmarketplace.NewMockService(ctrl), time.Minute)

	err := w.Work(context.Background(), makeJob(3, "not-a-uuid"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestAgentRunWorker_Work_RateLimitedPausesAllRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockmarketplace.NewMockService(ctrl)
	w := worker.NewAgentRunWorker(service, 2*time.Second)
	first, second := domain.NewJobID(), domain.NewJobID()

	// only the first run reaches the service
	service.EXPECT().ExecuteJob(gomock.Any(), first).Return(serrors.With(serrors.ErrRateLimited, "quota"))

	err := w.Work(context.Background(), makeJob(4, first.String()))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Greater(t, snoozeErr.Duration, time.Second)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)

	err = w.Work(context.Background(), makeJob(5, second.String()))
	require.ErrorAs(t, err, &snoozeErr)
	require.Greater(t, snoozeErr.Duration, time.Duration(0))
}

func TestAgentRunWorker_Work_OtherErrorsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockmarketplace.NewMockService(ctrl)
	w := worker.NewAgentRunWorker(service, time.Minute)
	id := domain.NewJobID()
	boom := errors.New("boom")

	service.EXPECT().ExecuteJob(gomock.Any(), id).Return(boom)

	err := w.Work(context.Background(), makeJob(6, id.String()))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}
