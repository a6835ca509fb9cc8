package slot

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/config"
)

func TestFileSlot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFile(dir)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "persistence:migrated")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "persistence:migrated", "true"))
	v, ok, err := s.Get(ctx, "persistence:migrated")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	require.NoError(t, s.Set(ctx, "persistence:migrated", "false"))
	reopened, err := NewFile(dir)
	require.NoError(t, err)
	v, ok, err = reopened.Get(ctx, "persistence:migrated")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewPicksDriver(t *testing.T) {
	conf, err := config.Parse([]byte("slot:\n  driver: file\n  dir: " + t.TempDir() + "\n"))
	require.NoError(t, err)
	s, err := New(conf, nil)
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	conf.Slot.Driver = "redis"
	_, err = New(conf, nil)
	assert.Error(t, err)

	conf.Slot.Driver = "etcd"
	_, err = New(conf, nil)
	assert.Error(t, err)
}
