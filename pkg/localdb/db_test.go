package localdb

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/types"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	d := New(Options{InMemory: true})
	require.NoError(t, d.Initialize(context.Background()))
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestInitializeCreatesEveryCollection(t *testing.T) {
	d := newTestDB(t)

	got := d.Collections()
	for _, name := range []string{
		types.CollectionCart, types.CollectionProducts, types.CollectionCategories,
		types.CollectionAdditionals, types.CollectionPhrases, types.CollectionOrders,
		types.CollectionCarouselSlides, types.CollectionStoreConfig,
		types.CollectionPageContent, types.CollectionNotifications,
	} {
		assert.Contains(t, got, name)
	}
	assert.Len(t, got, 10)
}

func TestInitializeConcurrentAndIdempotent(t *testing.T) {
	d := New(Options{InMemory: true})
	defer d.Close()

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = d.Initialize(context.Background())
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	require.NoError(t, d.Initialize(context.Background()))
	assert.Len(t, d.Collections(), 10)
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	p := types.Product{ID: 7, Name: "Açaí", Sizes: []types.SizePrice{{Size: "300ml", Price: 12.5}}, Active: true}
	require.NoError(t, d.Put(ctx, types.CollectionProducts, p))

	got, err := Get[types.Product](ctx, d, types.CollectionProducts, int64(7))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Sizes, got.Sizes)

	p.Name = "Açaí grande"
	require.NoError(t, d.Put(ctx, types.CollectionProducts, p))
	all, err := GetAll[types.Product](ctx, d, types.CollectionProducts)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Açaí grande", all[0].Name)

	require.NoError(t, d.Delete(ctx, types.CollectionProducts, 7))
	require.NoError(t, d.Delete(ctx, types.CollectionProducts, 7))
	got, err = Get[types.Product](ctx, d, types.CollectionProducts, 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompositeKey(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	small := types.CartItem{ProductID: 1, Size: "P", Name: "Açaí", Price: 10, Quantity: 1}
	large := types.CartItem{ProductID: 1, Size: "G", Name: "Açaí", Price: 15, Quantity: 2}
	require.NoError(t, d.Put(ctx, types.CollectionCart, small))
	require.NoError(t, d.Put(ctx, types.CollectionCart, large))

	small.Quantity = 3
	require.NoError(t, d.Put(ctx, types.CollectionCart, small))

	all, err := GetAll[types.CartItem](ctx, d, types.CollectionCart)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := Get[types.CartItem](ctx, d, types.CollectionCart, 1, "P")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Quantity)
}

func TestIntegerKeyOrder(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	for _, id := range []int64{300, -2, 5, 3000000000} {
		require.NoError(t, d.Put(ctx, types.CollectionPhrases, types.Phrase{ID: id, Text: "x"}))
	}
	all, err := GetAll[types.Phrase](ctx, d, types.CollectionPhrases)
	require.NoError(t, err)
	ids := make([]int64, 0, len(all))
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{-2, 5, 300, 3000000000}, ids)
}

func TestUpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	require.NoError(t, d.Put(ctx, types.CollectionCategories, types.Category{ID: 1, Name: "Old"}))

	err := d.Update(ctx, func(tx *Txn) error {
		if err := tx.Clear(types.CollectionCategories); err != nil {
			return err
		}
		if err := tx.Put(types.CollectionCategories, types.Category{ID: 2, Name: "New"}); err != nil {
			return err
		}
		return tx.Put("nope", types.Category{ID: 3})
	})
	require.ErrorIs(t, err, ErrUnknownCollection)

	all, err := GetAll[types.Category](ctx, d, types.CollectionCategories)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Old", all[0].Name)

	require.NoError(t, d.Update(ctx, func(tx *Txn) error {
		if err := tx.Clear(types.CollectionCategories); err != nil {
			return err
		}
		return tx.Put(types.CollectionCategories, types.Category{ID: 2, Name: "New"})
	}))
	all, err = GetAll[types.Category](ctx, d, types.CollectionCategories)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "New", all[0].Name)
}

func TestClearLeavesOtherCollections(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	require.NoError(t, d.Put(ctx, types.CollectionProducts, types.Product{ID: 1, Name: "P"}))
	require.NoError(t, d.Put(ctx, types.CollectionPhrases, types.Phrase{ID: 1, Text: "T"}))
	require.NoError(t, d.Update(ctx, func(tx *Txn) error { return tx.Clear(types.CollectionProducts) }))

	products, err := GetAll[types.Product](ctx, d, types.CollectionProducts)
	require.NoError(t, err)
	assert.Empty(t, products)
	phrases, err := GetAll[types.Phrase](ctx, d, types.CollectionPhrases)
	require.NoError(t, err)
	assert.Len(t, phrases, 1)
}

func TestTimesRoundTrip(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	start := time.Date(2026, 10, 1, 8, 30, 0, 123456789, time.UTC)
	n := types.Notification{ID: 1, Title: "Hi", Type: types.NotificationInfo, StartDate: start, EndDate: start.Add(time.Hour)}
	require.NoError(t, d.Put(ctx, types.CollectionNotifications, n))

	got, err := Get[types.Notification](ctx, d, types.CollectionNotifications, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, start.Equal(got.StartDate))
	assert.True(t, start.Add(time.Hour).Equal(got.EndDate))
}

func TestReopenAfterClose(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	require.NoError(t, d.Put(ctx, types.CollectionPageContent, types.PageContent{ID: "about", Title: "About"}))
	require.NoError(t, d.Close())

	got, err := Get[types.PageContent](ctx, d, types.CollectionPageContent, "about")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "About", got.Title)
}

func TestUnknownCollection(t *testing.T) {
	d := newTestDB(t)
	_, err := GetAll[types.Product](context.Background(), d, "widgets")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestOpenFailureIsNotCached(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(Options{InMemory: true})
	defer d.Close()
	require.Error(t, d.Initialize(ctx))
	require.NoError(t, d.Initialize(context.Background()))
}
