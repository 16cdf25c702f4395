package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, found, err := c.Get(ctx, "brgy26-polygon")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "brgy26-polygon", `{"type":"Feature"}`))
	require.NoError(t, c.Set(ctx, "brgy26-polygon", `{"type":"Feature","v":2}`))
	assert.Equal(t, 1, c.Len())

	v, found, err := c.Get(ctx, "brgy26-polygon")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"type":"Feature","v":2}`, v)

	require.NoError(t, c.Remove(ctx, "brgy26-polygon"))
	require.NoError(t, c.Remove(ctx, "boundary:missing"))
	assert.Equal(t, 0, c.Len())
}
