//go:build integration

package cache

import (
	"context"
	"testing"

	"evcharge-dashboard/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	addr := testhelpers.StartRedis(t)

	client, err := NewRedisClient(ctx, addr, "", 0)
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { client.Close() })

	// A foreign key must survive Clear.
	require.NoError(t, client.Set(ctx, "other:key", "keep", 0).Err())

	c := New(NewRedisStore(client))
	calls := 0
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	v, err := Load(ctx, c, "numbers", load)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)

	_, err = Load(ctx, c, "numbers", load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	require.NoError(t, c.Invalidate(ctx))
	_, err = Load(ctx, c, "numbers", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	kept, err := client.Get(ctx, "other:key").Result()
	require.NoError(t, err)
	assert.Equal(t, "keep", kept)
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "", "", 0)
	require.NoError(t, err)
	assert.Nil(t, client)
}
