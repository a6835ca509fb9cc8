package service

import (
	"context"

	"Storefront/pkg/localdb"
	"Storefront/types"
)

var _ ICartService = (*DataService)(nil)

// ICartService is session state and always lives in the local store,
// whatever the persistence mode.
type ICartService interface {
	GetCart(ctx context.Context) ([]types.CartItem, error)
	AddToCart(ctx context.Context, item *types.CartItem) error
	UpdateCartItemQuantity(ctx context.Context, productID int64, size string, quantity int) error
	RemoveFromCart(ctx context.Context, productID int64, size string) error
	ClearCart(ctx context.Context) error
}

func (s *DataService) GetCart(ctx context.Context) ([]types.CartItem, error) {
	items, err := localdb.GetAll[types.CartItem](ctx, s.Local.DB, types.CollectionCart)
	if err != nil {
		return nil, err
	}
	return normalized(items), nil
}

// AddToCart adds item, or raises the quantity of the line already holding
// the same product and size.
func (s *DataService) AddToCart(ctx context.Context, item *types.CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item.Normalize()

	existing, err := localdb.Get[types.CartItem](ctx, s.Local.DB, types.CollectionCart, item.ProductID, item.Size)
	if err != nil {
		return err
	}
	if existing != nil {
		item.Quantity += existing.Quantity
	}
	return s.Local.DB.Put(ctx, types.CollectionCart, item)
}

// UpdateCartItemQuantity sets the quantity of a line; a quantity below 1
// removes it.
func (s *DataService) UpdateCartItemQuantity(ctx context.Context, productID int64, size string, quantity int) error {
	if quantity < 1 {
		return s.RemoveFromCart(ctx, productID, size)
	}
	item, err := localdb.Get[types.CartItem](ctx, s.Local.DB, types.CollectionCart, productID, size)
	if err != nil || item == nil {
		return err
	}
	item.Quantity = quantity
	return s.Local.DB.Put(ctx, types.CollectionCart, item)
}

func (s *DataService) RemoveFromCart(ctx context.Context, productID int64, size string) error {
	return s.Local.DB.Delete(ctx, types.CollectionCart, productID, size)
}

func (s *DataService) ClearCart(ctx context.Context) error {
	return s.Local.DB.Update(ctx, func(tx *localdb.Txn) error {
		return tx.Clear(types.CollectionCart)
	})
}
