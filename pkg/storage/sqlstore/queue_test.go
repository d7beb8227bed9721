package sqlstore_test

import (
	"agenthub/pkg/storage/sqlstore"
	"testing"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
)

type dummyJobArgs struct {
	Key string `json:"key"`
}

func (dummyJobArgs) Kind() string { return "dummy" }

func countRiverJobs(t *testing.T, store *sqlstore.Store) int {
	t.Helper()
	var c int
	row := store.SQLDB().QueryRowContext(t.Context(), `SELECT COUNT(*) FROM river_job WHERE kind = 'dummy'`)
	require.NoError(t, row.Scan(&c))

	return c
}

func TestStore_AddJob_WithinTransaction(t *testing.T) {
	store := setupTestDB(t)
	ctx := t.Context()

	txStorage, err := store.Begin(ctx)
	require.NoError(t, err)
	inserted, err := txStorage.AddJob(ctx, dummyJobArgs{Key: "a"}, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, inserted)
	require.NoError(t, txStorage.Rollback())

	require.Zero(t, countRiverJobs(t, store), "rolled back insert must not be visible")

	txStorage, err = store.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.AddJob(ctx, dummyJobArgs{Key: "a"}, &river.InsertOpts{})
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	require.Equal(t, 1, countRiverJobs(t, store))
}

func TestStore_AddJob_OutsideTransaction_Unique(t *testing.T) {
	store := setupTestDB(t)
	ctx := t.Context()
	opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

	inserted, err := store.AddJob(ctx, dummyJobArgs{Key: "b"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = store.AddJob(ctx, dummyJobArgs{Key: "b"}, opts)
	require.NoError(t, err)
	require.False(t, inserted)

	require.Equal(t, 1, countRiverJobs(t, store))
}
