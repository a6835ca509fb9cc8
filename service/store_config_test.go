package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/types"
)

func TestDefaultStoreConfigIsPersisted(t *testing.T) {
	for _, remote := range []bool{false, true} {
		ctx := context.Background()
		f := newFixture(t)
		if remote {
			f.useRemote(t)
		}

		c, err := f.svc.GetStoreConfig(ctx)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, types.StoreConfigID, c.ID)
		assert.True(t, c.IsOpen)
		assert.Equal(t, types.DefaultDeliveryFee, c.DeliveryFee)
		for d := time.Sunday; d <= time.Saturday; d++ {
			assert.NotEmpty(t, c.OperatingHours.Day(d).Start, d.String())
		}

		stored, err := f.svc.backend().GetStoreConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, c, stored)

		again, err := f.svc.GetStoreConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, c, again)
	}
}

func TestSaveStoreConfig(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := types.DefaultStoreConfig()
	c.ID = ""
	c.DeliveryFee = 7.5
	c.SpecialDates = []types.SpecialDate{{Date: "2026-12-25", Open: false, Description: "Natal"}}
	require.NoError(t, f.svc.SaveStoreConfig(ctx, c))

	got, err := f.svc.GetStoreConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7.5, got.DeliveryFee)
	assert.Equal(t, c.SpecialDates, got.SpecialDates)

	c.SpecialDates = []types.SpecialDate{{Date: "25/12"}}
	require.ErrorIs(t, f.svc.SaveStoreConfig(ctx, c), types.ErrInvalid)
}

func TestIsStoreOpen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// fixedNow is Friday 19:30 UTC, inside the default 18:00-23:00.
	open, err := f.svc.IsStoreOpen(ctx)
	require.NoError(t, err)
	assert.True(t, open)

	f.svc.Now = func() time.Time { return fixedNow.Add(-3 * time.Hour) }
	open, err = f.svc.IsStoreOpen(ctx)
	require.NoError(t, err)
	assert.False(t, open)

	c, err := f.svc.GetStoreConfig(ctx)
	require.NoError(t, err)
	c.IsOpen = false
	require.NoError(t, f.svc.SaveStoreConfig(ctx, c))
	f.svc.Now = func() time.Time { return fixedNow }
	open, err = f.svc.IsStoreOpen(ctx)
	require.NoError(t, err)
	assert.False(t, open)
}
