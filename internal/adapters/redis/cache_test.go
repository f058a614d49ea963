package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "danube_tours/internal/adapters/redis"
	"danube_tours/internal/domain"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_SetGetDel(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	tours := []domain.Tour{{ID: "t1", MaxPeople: 6}}
	require.NoError(t, c.Set(ctx, "tours:all", tours, 60))

	var got []domain.Tour
	ok, err := c.Get(ctx, "tours:all", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tours, got)

	require.NoError(t, c.Del(ctx, "tours:all"))
	ok, err = c.Get(ctx, "tours:all", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := newCache(t)

	var dst domain.SiteSettings
	ok, err := c.Get(context.Background(), "settings", &dst)
	require.NoError(t, err)
	assert.False(t, ok)
}
