package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/types"
)

func newMigrator(f *fixture) *Migrator {
	return &Migrator{Local: f.local, Remote: f.remote, Mode: f.mode, Timeout: 5 * time.Second}
}

func TestMigrateLocalToRemote(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f)
	for i := 0; i < 6; i++ {
		require.NoError(t, f.svc.SavePhrase(ctx, &types.Phrase{Text: fmt.Sprintf("frase %d", i), Order: i + 1}))
	}
	localProducts, err := f.svc.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, localProducts, 1)

	var reports []float64
	m := newMigrator(f)
	err = m.MigrateLocalToRemote(ctx, func(pct float64, _ string) {
		reports = append(reports, pct)
	})
	require.NoError(t, err)

	require.NotEmpty(t, reports)
	assert.Equal(t, 0.0, reports[0])
	assert.Equal(t, 100.0, reports[len(reports)-1])
	for i := 1; i < len(reports); i++ {
		assert.GreaterOrEqual(t, reports[i], reports[i-1])
	}
	for _, pct := range reports[:len(reports)-1] {
		assert.LessOrEqual(t, pct, 99.0)
	}

	assert.True(t, f.mode.ShouldUseRemote())
	assert.Equal(t, ModeRemote, f.svc.Backend())

	categories, err := f.svc.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	additionals, err := f.svc.GetAllAdditionals(ctx)
	require.NoError(t, err)
	require.Len(t, additionals, 1)
	assert.Equal(t, categories[0].ID, additionals[0].CategoryID)

	products, err := f.svc.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, categories[0].ID, products[0].CategoryID)
	assert.Equal(t, []int64{additionals[0].ID}, products[0].AllowedAdditionals)
	assert.NotEqual(t, localProducts[0].ID, products[0].ID)

	orders, err := f.svc.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, products[0].ID, orders[0].Items[0].ProductID)

	phrases, err := f.svc.GetAllPhrases(ctx)
	require.NoError(t, err)
	assert.Len(t, phrases, 7)
	page, err := f.svc.GetPageContent(ctx, "about")
	require.NoError(t, err)
	require.NotNil(t, page)
	c, err := f.svc.GetStoreConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.StoreConfigID, c.ID)

	// Local data and the cart are left as they were.
	kept, err := f.local.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
	cart, err := f.svc.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart, 1)

	require.ErrorIs(t, m.MigrateLocalToRemote(ctx, nil), ErrAlreadyMigrated)
}

func TestMigrationFailureStaysLocal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := &types.Category{Name: "Açaí", Order: 1, Active: true}
	require.NoError(t, f.svc.SaveCategory(ctx, c))
	broken := &types.Product{Name: "", Sizes: []types.SizePrice{{Size: "M", Price: 1}}, CategoryID: c.ID}
	require.NoError(t, f.local.SaveProduct(ctx, broken))

	m := newMigrator(f)
	err := m.MigrateLocalToRemote(ctx, nil)
	require.Error(t, err)
	var merr *MigrationError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, types.CollectionProducts, merr.Collection)

	assert.False(t, f.mode.ShouldUseRemote())
	assert.Equal(t, ModeLocal, f.svc.Backend())

	// Categories written before the failure stay remote; a rerun upserts
	// over them instead of duplicating.
	remoteCategories, err := f.remote.Categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remoteCategories, 1)

	broken.Name = "Açaí 300ml"
	require.NoError(t, f.local.SaveProduct(ctx, broken))
	require.NoError(t, m.MigrateLocalToRemote(ctx, nil))
	assert.True(t, f.mode.ShouldUseRemote())

	remoteCategories, err = f.remote.Categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remoteCategories, 1)
}

func TestMigrationRejectsConcurrentRun(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.svc.SavePhrase(ctx, &types.Phrase{Text: "Oi"}))

	m := newMigrator(f)
	snap, err := exportFrom(ctx, f.local)
	require.NoError(t, err)

	var nested error
	calls := 0
	err = m.Run(ctx, snap, func(float64, string) {
		calls++
		if calls == 1 {
			nested = m.Run(ctx, snap, nil)
		}
	})
	require.NoError(t, err)
	require.ErrorIs(t, nested, ErrMigrationRunning)
}

func TestMigrationRespectsCancellation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.SavePhrase(context.Background(), &types.Phrase{Text: "Oi"}))
	snap, err := exportFrom(context.Background(), f.local)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = newMigrator(f).Run(ctx, snap, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, f.mode.ShouldUseRemote())
}
