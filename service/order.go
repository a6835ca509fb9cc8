package service

import (
	"context"

	"Storefront/types"
)

var _ IOrderService = (*DataService)(nil)

type IOrderService interface {
	GetAllOrders(ctx context.Context) ([]types.Order, error)
	GetOrdersByStatus(ctx context.Context, status types.OrderStatus) ([]types.Order, error)
	GetOrder(ctx context.Context, id int64) (*types.Order, error)
	SaveOrder(ctx context.Context, o *types.Order) error
	UpdateOrderStatus(ctx context.Context, id int64, status types.OrderStatus) error
	MarkOrderAsPrinted(ctx context.Context, id int64) error
	DeleteOrder(ctx context.Context, id int64) error
}

func (s *DataService) orders(items []types.Order, err error) ([]types.Order, error) {
	if err != nil {
		return nil, err
	}
	return sortOrders(normalized(items)), nil
}

// GetAllOrders returns the newest orders first.
func (s *DataService) GetAllOrders(ctx context.Context) ([]types.Order, error) {
	return s.orders(s.backend().GetAllOrders(ctx))
}

func (s *DataService) GetOrdersByStatus(ctx context.Context, status types.OrderStatus) ([]types.Order, error) {
	if !status.Valid() {
		_, err := types.ParseOrderStatus(string(status))
		return nil, err
	}
	return s.orders(s.backend().GetOrdersByStatus(ctx, status))
}

func (s *DataService) GetOrder(ctx context.Context, id int64) (*types.Order, error) {
	o, err := s.backend().GetOrder(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	o.Normalize()
	return o, nil
}

// SaveOrder stores o with Total recomputed from Subtotal and DeliveryFee;
// whatever total the caller sent is overwritten. A zero Date becomes now.
func (s *DataService) SaveOrder(ctx context.Context, o *types.Order) error {
	o.Normalize()
	if o.Date.IsZero() {
		o.Date = s.Now().UTC()
	}
	o.RecomputeTotal()
	if err := o.Validate(); err != nil {
		return err
	}
	return s.backend().SaveOrder(ctx, o)
}

func (s *DataService) UpdateOrderStatus(ctx context.Context, id int64, status types.OrderStatus) error {
	if _, err := types.ParseOrderStatus(string(status)); err != nil {
		return err
	}
	return s.backend().UpdateOrderStatus(ctx, id, status)
}

func (s *DataService) MarkOrderAsPrinted(ctx context.Context, id int64) error {
	return s.backend().MarkOrderAsPrinted(ctx, id)
}

func (s *DataService) DeleteOrder(ctx context.Context, id int64) error {
	return s.backend().DeleteOrder(ctx, id)
}
