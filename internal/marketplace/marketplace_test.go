package marketplace_test

import (
	"context"
	"testing"

	"agenthub/internal/marketplace"
	"agenthub/pkg/domain"
	mockexplorer "agenthub/pkg/explorer/mock"
	"agenthub/pkg/storage"
	mockstorage "agenthub/pkg/storage/mock"
	mocktextgen "agenthub/pkg/textgen/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	creatorWallet = "addr_test1creator"
	buyerWallet   = "addr_test1buyer"
)

type testEnv struct {
	ctrl      *gomock.Controller
	storage   *mockstorage.MockStorage
	explorer  *mockexplorer.MockExplorer
	generator *mocktextgen.MockGenerator
	service   marketplace.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		ctrl:      ctrl,
		storage:   mockstorage.NewMockStorage(ctrl),
		explorer:  mockexplorer.NewMockExplorer(ctrl),
		generator: mocktextgen.NewMockGenerator(ctrl),
	}

	var err error
	env.service, err = marketplace.New(marketplace.Deps{
		Storage:   env.storage,
		Explorer:  env.explorer,
		Generator: env.generator,
	}, marketplace.Options{DefaultPageSize: 10, MaxPageSize: 20, DefaultDemoLimit: 3, JobMaxAttempts: 5})
	require.NoError(t, err)

	return env
}

// expectWithTx runs the WithTx callback against a MockAllStorage prepared by fn.
func (env *testEnv) expectWithTx(t *testing.T, fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	env.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(env.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func availableAgent() *domain.Agent {
	return &domain.Agent{
		ID:            domain.NewAgentID(),
		Name:          "Summarizer",
		Description:   "Summarizes text",
		CreatorWallet: creatorWallet,
		Price:         5_000_000,
		IsActive:      true,
		IsApproved:    true,
		DemoLimit:     2,
	}
}

func ptr[T any](v T) *T { return &v }
