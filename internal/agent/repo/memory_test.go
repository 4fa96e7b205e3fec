package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryRetention(t *testing.T) {
	ctx := context.Background()
	const maxTurns = 5

	for _, appends := range []int{0, 1, 3, 5, 6, 20} {
		t.Run(fmt.Sprintf("%d appends", appends), func(t *testing.T) {
			r := NewMemoryConversationRepository(maxTurns)
			for i := 0; i < appends; i++ {
				err := r.Append(ctx, "c1", schema.UserMessage(fmt.Sprintf("m%d", i)))
				require.NoError(t, err)
			}

			msgs, err := r.History(ctx, "c1")
			require.NoError(t, err)

			wantLen := appends
			if wantLen > maxTurns {
				wantLen = maxTurns
			}
			require.Len(t, msgs, wantLen)

			// retained turns are exactly the last min(N, M), in arrival order
			for i, m := range msgs {
				assert.Equal(t, fmt.Sprintf("m%d", appends-wantLen+i), m.Content)
			}
		})
	}
}

func TestMemoryRepositoryClear(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryConversationRepository(10)

	require.NoError(t, r.Append(ctx, "c1", schema.UserMessage("hi")))

	existed, err := r.Clear(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, existed)

	msgs, err := r.History(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	existed, err = r.Clear(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, existed)

	existed, err = r.Clear(ctx, "never-seen")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryRepositoryHistoryDoesNotCreateKeys(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryConversationRepository(10)

	msgs, err := r.History(ctx, "unseen")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	existed, err := r.Clear(ctx, "unseen")
	require.NoError(t, err)
	assert.False(t, existed, "reading history must not materialize the key")
}

func TestMemoryRepositoryCount(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryConversationRepository(3)

	n, err := r.Count(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for i := 0; i < 4; i++ {
		require.NoError(t, r.Append(ctx, "c1", schema.UserMessage("x")))
	}
	n, err = r.Count(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemoryRepositoryKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryConversationRepository(10)

	require.NoError(t, r.Append(ctx, "a", schema.UserMessage("for a")))
	require.NoError(t, r.Append(ctx, "b", schema.UserMessage("for b")))

	msgs, err := r.History(ctx, "a")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "for a", msgs[0].Content)

	_, err = r.Clear(ctx, "a")
	require.NoError(t, err)

	msgs, err = r.History(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}
