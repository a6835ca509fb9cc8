package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductValidate(t *testing.T) {
	p := &Product{Name: "Margherita", Sizes: []SizePrice{{Size: "M", Price: 30}}}
	require.NoError(t, p.Validate())

	p.Sizes = nil
	assert.True(t, errors.Is(p.Validate(), ErrInvalid))

	p.Sizes = []SizePrice{{Size: "M", Price: -1}}
	assert.ErrorIs(t, p.Validate(), ErrInvalid)

	p = &Product{Sizes: []SizePrice{{Size: "M", Price: 1}}}
	assert.ErrorIs(t, p.Validate(), ErrInvalid)
}

func TestProductPriceFor(t *testing.T) {
	p := &Product{Name: "Soda", Sizes: []SizePrice{{Size: "350ml", Price: 6}, {Size: "2L", Price: 14}}}
	price, ok := p.PriceFor("2L")
	assert.True(t, ok)
	assert.Equal(t, 14.0, price)
	_, ok = p.PriceFor("1L")
	assert.False(t, ok)
}

func TestAdditionalValidate(t *testing.T) {
	assert.NoError(t, (&Additional{Name: "Bacon", Price: 0}).Validate())
	assert.ErrorIs(t, (&Additional{Name: "Bacon", Price: -0.5}).Validate(), ErrInvalid)
}

func TestOrderRecomputeTotal(t *testing.T) {
	o := &Order{Subtotal: 20, DeliveryFee: 5, Total: 999}
	o.RecomputeTotal()
	assert.Equal(t, 25.0, o.Total)

	o = &Order{Subtotal: 10.1, DeliveryFee: 0.2}
	o.RecomputeTotal()
	assert.Equal(t, 10.3, o.Total)
}

func TestOrderLineTotals(t *testing.T) {
	o := &Order{Items: []OrderItem{
		{Price: 10, Quantity: 2, Additionals: []SelectedAdditional{{Price: 1.5}}},
		{Price: 4, Quantity: 1},
	}}
	assert.Equal(t, 27.0, o.ItemsSubtotal())
}

func TestOrderValidate(t *testing.T) {
	o := &Order{
		CustomerName: "Ana",
		Items:        []OrderItem{{ProductID: 1, Price: 10, Quantity: 1}},
		Status:       OrderStatusNew,
	}
	require.NoError(t, o.Validate())

	o.Status = "lost"
	assert.ErrorIs(t, o.Validate(), ErrInvalid)

	o.Status = OrderStatusDelivered
	o.Items[0].Quantity = 0
	assert.ErrorIs(t, o.Validate(), ErrInvalid)
}

func TestParseOrderStatus(t *testing.T) {
	st, err := ParseOrderStatus("preparing")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPreparing, st)

	_, err = ParseOrderStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCartItemValidate(t *testing.T) {
	assert.NoError(t, (&CartItem{ProductID: 1, Size: "M", Quantity: 1}).Validate())
	assert.ErrorIs(t, (&CartItem{ProductID: 1, Size: "M", Quantity: 0}).Validate(), ErrInvalid)
}

func TestDefaultStoreConfig(t *testing.T) {
	c := DefaultStoreConfig()
	require.NoError(t, c.Validate())
	assert.True(t, c.IsOpen)
	assert.Equal(t, 5.0, c.DeliveryFee)
	for _, d := range c.OperatingHours.days() {
		assert.True(t, d.Open)
		assert.NotEmpty(t, d.Start)
		assert.NotEmpty(t, d.End)
	}
}

func TestStoreConfigOpenAt(t *testing.T) {
	c := DefaultStoreConfig()
	// 2026-10-16 is a Friday
	fri := func(h, m int) time.Time { return time.Date(2026, 10, 16, h, m, 0, 0, time.UTC) }

	assert.True(t, c.OpenAt(fri(19, 0)))
	assert.False(t, c.OpenAt(fri(12, 0)))
	assert.False(t, c.OpenAt(fri(23, 0)))

	c.IsOpen = false
	assert.False(t, c.OpenAt(fri(19, 0)))
	c.IsOpen = true

	c.SpecialDates = []SpecialDate{{Date: "2026-10-16", Open: false}}
	assert.False(t, c.OpenAt(fri(19, 0)))

	c.SpecialDates = []SpecialDate{{Date: "2026-10-16", Open: true, Start: "10:00", End: "14:00"}}
	assert.True(t, c.OpenAt(fri(12, 0)))
	assert.False(t, c.OpenAt(fri(19, 0)))
}

func TestStoreConfigOpenPastMidnight(t *testing.T) {
	c := DefaultStoreConfig()
	c.OperatingHours.Friday = DayHours{Open: true, Start: "20:00", End: "02:00"}

	assert.True(t, c.OpenAt(time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)))
	// saturday 01:00 still belongs to friday's window
	assert.True(t, c.OpenAt(time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC)))
	assert.False(t, c.OpenAt(time.Date(2026, 10, 17, 3, 0, 0, 0, time.UTC)))
}

func TestStoreConfigValidate(t *testing.T) {
	c := DefaultStoreConfig()
	c.ID = "other"
	assert.ErrorIs(t, c.Validate(), ErrInvalid)

	c = DefaultStoreConfig()
	c.OperatingHours.Monday.Start = "6pm"
	assert.ErrorIs(t, c.Validate(), ErrInvalid)

	c = DefaultStoreConfig()
	c.SpecialDates = []SpecialDate{{Date: "25/12"}}
	assert.ErrorIs(t, c.Validate(), ErrInvalid)

	c = DefaultStoreConfig()
	c.SpecialDates = []SpecialDate{{Date: "2026-12-24", Open: true}}
	assert.ErrorIs(t, c.Validate(), ErrInvalid)

	c.SpecialDates = []SpecialDate{{Date: "2026-12-24", Open: true, Start: "10:00", End: "16:00"}}
	assert.NoError(t, c.Validate())
}

func TestNotificationVisibleAt(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	n := &Notification{
		Title:     "Holiday",
		Type:      NotificationInfo,
		Active:    true,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
	}
	assert.True(t, n.VisibleAt(now))
	assert.False(t, n.VisibleAt(now.Add(2*time.Hour)))
	assert.False(t, n.VisibleAt(now.Add(-2*time.Hour)))
	n.Active = false
	assert.False(t, n.VisibleAt(now))
}

func TestNotificationValidate(t *testing.T) {
	now := time.Now()
	n := &Notification{Title: "x", Type: "urgent", StartDate: now, EndDate: now}
	assert.ErrorIs(t, n.Validate(), ErrInvalid)
	n.Type = NotificationAlert
	n.EndDate = now.Add(-time.Minute)
	assert.ErrorIs(t, n.Validate(), ErrInvalid)
}

func TestSnapshotCollections(t *testing.T) {
	s := &Snapshot{Products: []*Product{}, StoreConfig: DefaultStoreConfig()}
	assert.Equal(t, []string{CollectionProducts, CollectionStoreConfig}, s.Collections())
	assert.Equal(t, 1, s.Len())
}
