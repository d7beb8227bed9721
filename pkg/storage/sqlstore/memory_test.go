package sqlstore_test

import (
	"agenthub/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemories_LatestInChronologicalOrder(t *testing.T) {
	store := setupTestDB(t)
	ctx := t.Context()
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)

	for i, goal := range []string{"first", "second", "third"} {
		require.NoError(t, store.StoreMemory(ctx, domain.MemoryItem{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Agent:     "researcher",
			Goal:      goal,
			Result:    "done " + goal,
			Tags:      []string{"console"},
		}))
	}

	got, err := store.Memories(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "second", got[0].Goal)
	require.Equal(t, "third", got[1].Goal)
	require.Equal(t, []string{"console"}, got[1].Tags)

	all, err := store.Memories(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	require.NoError(t, store.ClearMemories(ctx))
	all, err = store.Memories(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, all)
}
