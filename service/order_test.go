package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/types"
)

func newOrder(productID int64) *types.Order {
	return &types.Order{
		CustomerName:  "Maria",
		CustomerPhone: "11999990000",
		Address:       types.Address{Street: "Rua A", Number: "10", Neighborhood: "Centro", City: "Santos"},
		Items: []types.OrderItem{{
			ProductID: productID,
			Name:      "Açaí 500ml",
			Size:      "M",
			Price:     18,
			Quantity:  1,
			Additionals: []types.SelectedAdditional{
				{ID: 1, Name: "Granola", Price: 2},
			},
		}},
		Subtotal:      20,
		DeliveryFee:   5,
		PaymentMethod: "pix",
	}
}

func TestSaveOrderRecomputesTotal(t *testing.T) {
	for _, remote := range []bool{false, true} {
		ctx := context.Background()
		f := newFixture(t)
		if remote {
			f.useRemote(t)
		}

		o := newOrder(1)
		o.Total = 999
		require.NoError(t, f.svc.SaveOrder(ctx, o))
		assert.Equal(t, 25.0, o.Total)
		assert.Equal(t, types.OrderStatusNew, o.Status)
		assert.Equal(t, fixedNow, o.Date)

		got, err := f.svc.GetOrder(ctx, o.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 25.0, got.Total)
		assert.Equal(t, o, got)
	}
}

func TestOrderStatusUpdates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := newOrder(1)
	first.Date = fixedNow.AddDate(0, 0, -1)
	second := newOrder(1)
	require.NoError(t, f.svc.SaveOrder(ctx, first))
	require.NoError(t, f.svc.SaveOrder(ctx, second))

	all, err := f.svc.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	require.NoError(t, f.svc.UpdateOrderStatus(ctx, first.ID, types.OrderStatusDelivering))
	require.NoError(t, f.svc.MarkOrderAsPrinted(ctx, first.ID))
	got, err := f.svc.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, types.OrderStatusDelivering, got.Status)
	assert.True(t, got.Printed)

	delivering, err := f.svc.GetOrdersByStatus(ctx, types.OrderStatusDelivering)
	require.NoError(t, err)
	require.Len(t, delivering, 1)
	assert.Equal(t, first.ID, delivering[0].ID)

	err = f.svc.UpdateOrderStatus(ctx, first.ID, "lost")
	require.ErrorIs(t, err, types.ErrInvalid)
	_, err = f.svc.GetOrdersByStatus(ctx, "lost")
	require.ErrorIs(t, err, types.ErrInvalid)

	require.NoError(t, f.svc.UpdateOrderStatus(ctx, 424242, types.OrderStatusCompleted))

	require.NoError(t, f.svc.DeleteOrder(ctx, first.ID))
	got, err = f.svc.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveOrderRejectsEmptyOrder(t *testing.T) {
	f := newFixture(t)
	err := f.svc.SaveOrder(context.Background(), &types.Order{CustomerName: "Maria"})
	require.ErrorIs(t, err, types.ErrInvalid)
}
