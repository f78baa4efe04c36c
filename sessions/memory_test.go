// file: sessions/memory_test.go
package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), userID)
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t1, err := store.Create(ctx, 1, time.Hour)
	require.NoError(t, err)
	t2, err := store.Create(ctx, 1, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, 7, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Create(ctx, 9, time.Minute)
	require.NoError(t, err)

	// 未过期可取
	_, err = store.Get(ctx, token)
	require.NoError(t, err)

	// 拨快时钟后按不存在处理
	current = current.Add(2 * time.Minute)
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}
