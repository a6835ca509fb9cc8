package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/types"
)

// seed fills every collection through the facade.
func seed(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	c := &types.Category{Name: "Açaí", Order: 1, Active: true}
	require.NoError(t, f.svc.SaveCategory(ctx, c))
	a := &types.Additional{Name: "Granola", Price: 2, CategoryID: c.ID, Active: true}
	require.NoError(t, f.svc.SaveAdditional(ctx, a))
	p := acai(c.ID)
	p.AllowedAdditionals = []int64{a.ID}
	require.NoError(t, f.svc.SaveProduct(ctx, p))
	require.NoError(t, f.svc.SaveOrder(ctx, newOrder(p.ID)))
	require.NoError(t, f.svc.SaveCarouselSlide(ctx, &types.CarouselSlide{Image: "hero.png", Title: "Novo", Active: true}))
	require.NoError(t, f.svc.SavePhrase(ctx, &types.Phrase{Text: "Entrega grátis", Active: true}))
	_, err := f.svc.GetStoreConfig(ctx)
	require.NoError(t, err)
	require.NoError(t, f.svc.SavePageContent(ctx, &types.PageContent{ID: "about", Title: "Sobre", Content: "..."}))
	require.NoError(t, f.svc.SaveNotification(ctx, &types.Notification{
		Title: "Promo", Active: true, StartDate: fixedNow, EndDate: fixedNow.Add(24 * time.Hour),
	}))
	require.NoError(t, f.svc.AddToCart(ctx, &types.CartItem{ProductID: p.ID, Size: "M", Price: 18, Quantity: 2}))
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newFixture(t)
	seed(t, src)

	payload, err := src.svc.ExportJSON(ctx)
	require.NoError(t, err)

	dst := newFixture(t)
	collections, err := dst.svc.ImportData(ctx, payload)
	require.NoError(t, err)
	assert.Len(t, collections, 10)

	want, err := src.svc.ExportAllData(ctx)
	require.NoError(t, err)
	got, err := dst.svc.ExportAllData(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportOnlyTouchesPresentCollections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f)

	payload := []byte(`{
		"version": 1,
		"products": [{"id": 77, "name": "Cupuaçu", "sizes": [{"size": "M", "price": 15}], "active": true}],
		"phrases": null,
		"widgets": [1, 2, 3]
	}`)
	collections, err := f.svc.ImportData(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, []string{types.CollectionProducts}, collections)

	products, err := f.svc.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(77), products[0].ID)
	assert.Equal(t, []int64{}, products[0].AllowedAdditionals)

	phrases, err := f.svc.GetAllPhrases(ctx)
	require.NoError(t, err)
	assert.Len(t, phrases, 1)
	cart, err := f.svc.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestImportEmptyCollectionClearsIt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f)

	_, err := f.svc.ImportData(ctx, []byte(`{"phrases": []}`))
	require.NoError(t, err)
	phrases, err := f.svc.GetAllPhrases(ctx)
	require.NoError(t, err)
	assert.Empty(t, phrases)
}

func TestRemoteImportUpserts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.useRemote(t)
	require.NoError(t, f.svc.SavePhrase(ctx, &types.Phrase{Text: "Antiga", Active: true}))

	_, err := f.svc.ImportData(ctx, []byte(`{
		"phrases": [{"text": "Nova", "order": 2, "active": true}],
		"cart": [{"productId": 9, "size": "P", "price": 10, "quantity": 1}]
	}`))
	require.NoError(t, err)

	phrases, err := f.svc.GetAllPhrases(ctx)
	require.NoError(t, err)
	assert.Len(t, phrases, 2)

	cart, err := f.svc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(9), cart[0].ProductID)
}

func TestDecodeSnapshotRejectsBadPayloads(t *testing.T) {
	for name, payload := range map[string]string{
		"garbage":    `not json`,
		"array":      `[1, 2]`,
		"wrong type": `{"products": "many"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSnapshot([]byte(payload))
			require.ErrorIs(t, err, ErrBadPayload)
		})
	}

	snap, err := DecodeSnapshot([]byte(`{"orders": [null, {"id": 3, "customerName": "Ana"}]}`))
	require.NoError(t, err)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, int64(3), snap.Orders[0].ID)
	assert.Nil(t, snap.Products)
}

func TestBackupAndRestore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.RestoreFromBackup(ctx)
	require.ErrorIs(t, err, ErrNoBackup)
	_, ok, err := f.svc.LastBackupAt(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	seed(t, f)
	at, err := f.svc.BackupData(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, at)

	last, ok, err := f.svc.LastBackupAt(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, fixedNow.Equal(last))

	phrases, err := f.svc.GetAllPhrases(ctx)
	require.NoError(t, err)
	require.NoError(t, f.svc.DeletePhrase(ctx, phrases[0].ID))
	require.NoError(t, f.svc.SavePhrase(ctx, &types.Phrase{Text: "Depois do backup"}))
	require.NoError(t, f.svc.ClearCart(ctx))

	collections, err := f.svc.RestoreFromBackup(ctx)
	require.NoError(t, err)
	assert.Contains(t, collections, types.CollectionPhrases)

	restored, err := f.svc.GetAllPhrases(ctx)
	require.NoError(t, err)
	assert.Equal(t, phrases, restored)
	cart, err := f.svc.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestBackupAsync(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := newFixture(t)
	seed(t, f)

	ch := f.svc.BackupAsync(ctx)
	cancel()
	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, fixedNow, res.At)

	_, ok = <-ch
	assert.False(t, ok)

	_, found, err := f.svc.LastBackupAt(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRestoreLocalBackupAfterSwitchingToRemote(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seed(t, f)
	_, err := f.svc.BackupData(ctx)
	require.NoError(t, err)

	f.useRemote(t)
	_, err = f.svc.RestoreFromBackup(ctx)
	require.NoError(t, err)

	categories, err := f.svc.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	additionals, err := f.svc.GetAllAdditionals(ctx)
	require.NoError(t, err)
	require.Len(t, additionals, 1)
	assert.Equal(t, categories[0].ID, additionals[0].CategoryID)

	products, err := f.svc.GetProductsByCategory(ctx, categories[0].ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, []int64{additionals[0].ID}, products[0].AllowedAdditionals)

	orders, err := f.svc.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, products[0].ID, orders[0].Items[0].ProductID)
}
