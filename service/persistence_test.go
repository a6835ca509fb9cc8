package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/pkg/slot"
)

func TestPersistenceContextStartsLocal(t *testing.T) {
	ctx := context.Background()
	slots, err := slot.NewFile(t.TempDir())
	require.NoError(t, err)

	p := NewPersistenceContext(slots)
	require.NoError(t, p.Initialize(ctx))
	require.NoError(t, p.Initialize(ctx))
	assert.False(t, p.ShouldUseRemote())
	assert.Equal(t, ModeLocal, p.Mode())
}

func TestCommitToRemoteIsDurable(t *testing.T) {
	ctx := context.Background()
	slots, err := slot.NewFile(t.TempDir())
	require.NoError(t, err)

	p := NewPersistenceContext(slots)
	require.NoError(t, p.Initialize(ctx))
	require.NoError(t, p.CommitToRemote(ctx))
	assert.True(t, p.ShouldUseRemote())
	assert.Equal(t, ModeRemote, p.Mode())

	restarted := NewPersistenceContext(slots)
	require.NoError(t, restarted.Initialize(ctx))
	assert.True(t, restarted.ShouldUseRemote())
}

func TestInitializeRetriesAfterFailure(t *testing.T) {
	ctx := context.Background()
	base, err := slot.NewFile(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, base.Set(ctx, migratedKey, "true"))

	p := NewPersistenceContext(&flakySlots{Store: base, failures: 1})
	require.Error(t, p.Initialize(ctx))
	assert.False(t, p.ShouldUseRemote())

	require.NoError(t, p.Initialize(ctx))
	assert.True(t, p.ShouldUseRemote())
}

func TestFailedCommitStaysLocal(t *testing.T) {
	ctx := context.Background()
	base, err := slot.NewFile(t.TempDir())
	require.NoError(t, err)

	flaky := &flakySlots{Store: base}
	p := NewPersistenceContext(flaky)
	require.NoError(t, p.Initialize(ctx))

	flaky.failures = 1
	require.Error(t, p.CommitToRemote(ctx))
	assert.False(t, p.ShouldUseRemote())
}
