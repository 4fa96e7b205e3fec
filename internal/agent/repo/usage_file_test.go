package repo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileUsageMissingFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	r := NewFileUsageRepository(filepath.Join(t.TempDir(), "usage.json"), 5)

	require.NoError(t, r.Load(ctx))

	u, err := r.Check(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, u.Used)
	assert.Equal(t, 5, u.Remaining)
	assert.Equal(t, 5, u.Total)
	assert.True(t, u.CanProceed())
}

func TestFileUsageCeiling(t *testing.T) {
	ctx := context.Background()
	const limit = 5
	r := NewFileUsageRepository(filepath.Join(t.TempDir(), "usage.json"), limit)
	require.NoError(t, r.Load(ctx))

	for i := 0; i < limit; i++ {
		require.NoError(t, r.Increment(ctx, "u1"))
	}

	u, err := r.Check(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, limit, u.Used)
	assert.Equal(t, 0, u.Remaining)
	assert.False(t, u.CanProceed())

	// counts keep growing past the ceiling; only Remaining is floored
	require.NoError(t, r.Increment(ctx, "u1"))
	u, err = r.Check(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, limit+1, u.Used)
	assert.Equal(t, 0, u.Remaining)
	assert.False(t, u.CanProceed())
}

func TestFileUsageSurvivesReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "usage.json")

	r := NewFileUsageRepository(path, 5)
	require.NoError(t, r.Load(ctx))
	require.NoError(t, r.Increment(ctx, "u1"))
	require.NoError(t, r.Increment(ctx, "u1"))
	require.NoError(t, r.Increment(ctx, "u2"))

	r2 := NewFileUsageRepository(path, 5)
	require.NoError(t, r2.Load(ctx))

	for _, userID := range []string{"u1", "u2", "u3"} {
		want, err := r.Check(ctx, userID)
		require.NoError(t, err)
		got, err := r2.Check(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, want, got, "user %s", userID)
	}
}

func TestFileUsagePersistedFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "usage.json")

	r := NewFileUsageRepository(path, 5)
	require.NoError(t, r.Load(ctx))
	require.NoError(t, r.Increment(ctx, "42"))

	// file is a plain JSON object of user-id string to count
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var counts map[string]int
	require.NoError(t, json.Unmarshal(b, &counts))
	assert.Equal(t, map[string]int{"42": 1}, counts)
}
