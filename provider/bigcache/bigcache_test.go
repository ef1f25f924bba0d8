package bigcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresLifeWindow(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close(ctx) })

	_, hit, err := p.Get(ctx, "parse:t:XLII")
	require.NoError(t, err)
	assert.False(t, hit)

	ok, err := p.Set(ctx, "parse:t:XLII", []byte("XLII"), 0, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	got, hit, err := p.Get(ctx, "parse:t:XLII")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, []byte("XLII"), got)

	require.NoError(t, p.Del(ctx, "parse:t:XLII"))
	require.NoError(t, p.Del(ctx, "parse:t:XLII"), "deleting a missing key is not an error")
	_, hit, err = p.Get(ctx, "parse:t:XLII")
	require.NoError(t, err)
	assert.False(t, hit)
}
