package service

import (
	"context"
	"time"

	"Storefront/pkg/localdb"
	"Storefront/pkg/snowflake"
	"Storefront/types"
)

// LocalBackend serves everything from the embedded store. Filters run in
// memory since the store has no query engine.
type LocalBackend struct {
	DB *localdb.DB
}

var _ DataBackend = (*LocalBackend)(nil)

func NewLocalBackend(db *localdb.DB) *LocalBackend {
	return &LocalBackend{DB: db}
}

func (b *LocalBackend) Name() Mode { return ModeLocal }

func filter[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

func all[T any](ctx context.Context, b *LocalBackend, collection string, keep func(*T) bool) ([]T, error) {
	items, err := localdb.GetAll[T](ctx, b.DB, collection)
	if err != nil {
		return nil, err
	}
	if keep == nil {
		return items, nil
	}
	return filter(items, keep), nil
}

// assignID gives a new record a locally unique id.
func assignID(id *int64) {
	if *id == 0 {
		*id = snowflake.GenID()
	}
}

func (b *LocalBackend) GetAllProducts(ctx context.Context) ([]types.Product, error) {
	return all[types.Product](ctx, b, types.CollectionProducts, nil)
}

func (b *LocalBackend) GetActiveProducts(ctx context.Context) ([]types.Product, error) {
	return all(ctx, b, types.CollectionProducts, func(p *types.Product) bool { return p.Active })
}

func (b *LocalBackend) GetProductsByCategory(ctx context.Context, categoryID int64) ([]types.Product, error) {
	return all(ctx, b, types.CollectionProducts, func(p *types.Product) bool { return p.CategoryID == categoryID })
}

func (b *LocalBackend) GetProduct(ctx context.Context, id int64) (*types.Product, error) {
	return localdb.Get[types.Product](ctx, b.DB, types.CollectionProducts, id)
}

func (b *LocalBackend) SaveProduct(ctx context.Context, p *types.Product) error {
	assignID(&p.ID)
	return b.DB.Put(ctx, types.CollectionProducts, p)
}

func (b *LocalBackend) DeleteProduct(ctx context.Context, id int64) error {
	return b.DB.Delete(ctx, types.CollectionProducts, id)
}

func (b *LocalBackend) GetAllCategories(ctx context.Context) ([]types.Category, error) {
	return all[types.Category](ctx, b, types.CollectionCategories, nil)
}

func (b *LocalBackend) GetActiveCategories(ctx context.Context) ([]types.Category, error) {
	return all(ctx, b, types.CollectionCategories, func(c *types.Category) bool { return c.Active })
}

func (b *LocalBackend) GetCategory(ctx context.Context, id int64) (*types.Category, error) {
	return localdb.Get[types.Category](ctx, b.DB, types.CollectionCategories, id)
}

func (b *LocalBackend) SaveCategory(ctx context.Context, c *types.Category) error {
	assignID(&c.ID)
	return b.DB.Put(ctx, types.CollectionCategories, c)
}

func (b *LocalBackend) DeleteCategory(ctx context.Context, id int64) error {
	return b.DB.Delete(ctx, types.CollectionCategories, id)
}

func (b *LocalBackend) GetAllAdditionals(ctx context.Context) ([]types.Additional, error) {
	return all[types.Additional](ctx, b, types.CollectionAdditionals, nil)
}

func (b *LocalBackend) GetActiveAdditionals(ctx context.Context) ([]types.Additional, error) {
	return all(ctx, b, types.CollectionAdditionals, func(a *types.Additional) bool { return a.Active })
}

func (b *LocalBackend) GetAdditionalsByCategory(ctx context.Context, categoryID int64) ([]types.Additional, error) {
	return all(ctx, b, types.CollectionAdditionals, func(a *types.Additional) bool { return a.CategoryID == categoryID })
}

func (b *LocalBackend) SaveAdditional(ctx context.Context, a *types.Additional) error {
	assignID(&a.ID)
	return b.DB.Put(ctx, types.CollectionAdditionals, a)
}

func (b *LocalBackend) DeleteAdditional(ctx context.Context, id int64) error {
	return b.DB.Delete(ctx, types.CollectionAdditionals, id)
}

func (b *LocalBackend) GetAllOrders(ctx context.Context) ([]types.Order, error) {
	return all[types.Order](ctx, b, types.CollectionOrders, nil)
}

func (b *LocalBackend) GetOrdersByStatus(ctx context.Context, status types.OrderStatus) ([]types.Order, error) {
	return all(ctx, b, types.CollectionOrders, func(o *types.Order) bool { return o.Status == status })
}

func (b *LocalBackend) GetOrder(ctx context.Context, id int64) (*types.Order, error) {
	return localdb.Get[types.Order](ctx, b.DB, types.CollectionOrders, id)
}

func (b *LocalBackend) SaveOrder(ctx context.Context, o *types.Order) error {
	assignID(&o.ID)
	return b.DB.Put(ctx, types.CollectionOrders, o)
}

// updateOrder rewrites one stored order; a missing order is left alone.
func (b *LocalBackend) updateOrder(ctx context.Context, id int64, fn func(o *types.Order)) error {
	o, err := b.GetOrder(ctx, id)
	if err != nil || o == nil {
		return err
	}
	fn(o)
	return b.DB.Put(ctx, types.CollectionOrders, o)
}

func (b *LocalBackend) UpdateOrderStatus(ctx context.Context, id int64, status types.OrderStatus) error {
	return b.updateOrder(ctx, id, func(o *types.Order) { o.Status = status })
}

func (b *LocalBackend) MarkOrderAsPrinted(ctx context.Context, id int64) error {
	return b.updateOrder(ctx, id, func(o *types.Order) { o.Printed = true })
}

func (b *LocalBackend) DeleteOrder(ctx context.Context, id int64) error {
	return b.DB.Delete(ctx, types.CollectionOrders, id)
}

func (b *LocalBackend) GetAllCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error) {
	return all[types.CarouselSlide](ctx, b, types.CollectionCarouselSlides, nil)
}

func (b *LocalBackend) GetActiveCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error) {
	return all(ctx, b, types.CollectionCarouselSlides, func(s *types.CarouselSlide) bool { return s.Active })
}

func (b *LocalBackend) SaveCarouselSlide(ctx context.Context, s *types.CarouselSlide) error {
	assignID(&s.ID)
	return b.DB.Put(ctx, types.CollectionCarouselSlides, s)
}

func (b *LocalBackend) DeleteCarouselSlide(ctx context.Context, id int64) error {
	return b.DB.Delete(ctx, types.CollectionCarouselSlides, id)
}

func (b *LocalBackend) GetAllPhrases(ctx context.Context) ([]types.Phrase, error) {
	return all[types.Phrase](ctx, b, types.CollectionPhrases, nil)
}

func (b *LocalBackend) GetActivePhrases(ctx context.Context) ([]types.Phrase, error) {
	return all(ctx, b, types.CollectionPhrases, func(p *types.Phrase) bool { return p.Active })
}

func (b *LocalBackend) SavePhrase(ctx context.Context, p *types.Phrase) error {
	assignID(&p.ID)
	return b.DB.Put(ctx, types.CollectionPhrases, p)
}

func (b *LocalBackend) DeletePhrase(ctx context.Context, id int64) error {
	return b.DB.Delete(ctx, types.CollectionPhrases, id)
}

func (b *LocalBackend) GetStoreConfig(ctx context.Context) (*types.StoreConfig, error) {
	return localdb.Get[types.StoreConfig](ctx, b.DB, types.CollectionStoreConfig, types.StoreConfigID)
}

func (b *LocalBackend) SaveStoreConfig(ctx context.Context, c *types.StoreConfig) error {
	c.ID = types.StoreConfigID
	return b.DB.Put(ctx, types.CollectionStoreConfig, c)
}

func (b *LocalBackend) GetAllPageContent(ctx context.Context) ([]types.PageContent, error) {
	return all[types.PageContent](ctx, b, types.CollectionPageContent, nil)
}

func (b *LocalBackend) GetPageContent(ctx context.Context, slug string) (*types.PageContent, error) {
	return localdb.Get[types.PageContent](ctx, b.DB, types.CollectionPageContent, slug)
}

func (b *LocalBackend) SavePageContent(ctx context.Context, p *types.PageContent) error {
	return b.DB.Put(ctx, types.CollectionPageContent, p)
}

func (b *LocalBackend) DeletePageContent(ctx context.Context, slug string) error {
	return b.DB.Delete(ctx, types.CollectionPageContent, slug)
}

func (b *LocalBackend) GetAllNotifications(ctx context.Context) ([]types.Notification, error) {
	return all[types.Notification](ctx, b, types.CollectionNotifications, nil)
}

func (b *LocalBackend) GetActiveNotifications(ctx context.Context, now time.Time) ([]types.Notification, error) {
	return all(ctx, b, types.CollectionNotifications, func(n *types.Notification) bool { return n.VisibleAt(now) })
}

func (b *LocalBackend) GetUnreadNotificationCount(ctx context.Context, now time.Time) (int64, error) {
	visible, err := all(ctx, b, types.CollectionNotifications, func(n *types.Notification) bool {
		return n.VisibleAt(now) && !n.Read
	})
	if err != nil {
		return 0, err
	}
	return int64(len(visible)), nil
}

func (b *LocalBackend) SaveNotification(ctx context.Context, n *types.Notification) error {
	assignID(&n.ID)
	return b.DB.Put(ctx, types.CollectionNotifications, n)
}

func (b *LocalBackend) DeleteNotification(ctx context.Context, id int64) error {
	return b.DB.Delete(ctx, types.CollectionNotifications, id)
}

func (b *LocalBackend) MarkNotificationAsRead(ctx context.Context, id int64) error {
	n, err := localdb.Get[types.Notification](ctx, b.DB, types.CollectionNotifications, id)
	if err != nil || n == nil {
		return err
	}
	n.Read = true
	return b.DB.Put(ctx, types.CollectionNotifications, n)
}

func (b *LocalBackend) MarkAllNotificationsAsRead(ctx context.Context) error {
	items, err := b.GetAllNotifications(ctx)
	if err != nil {
		return err
	}
	return b.DB.Update(ctx, func(tx *localdb.Txn) error {
		for i := range items {
			if items[i].Read {
				continue
			}
			items[i].Read = true
			if err := tx.Put(types.CollectionNotifications, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Import clears and refills every collection present in snap, cart
// included, in one atomic batch.
func (b *LocalBackend) Import(ctx context.Context, snap *types.Snapshot) error {
	return b.DB.Update(ctx, func(tx *localdb.Txn) error {
		if snap.Cart != nil {
			if err := replace(tx, types.CollectionCart, snap.Cart); err != nil {
				return err
			}
		}
		if snap.Products != nil {
			if err := replace(tx, types.CollectionProducts, snap.Products); err != nil {
				return err
			}
		}
		if snap.Categories != nil {
			if err := replace(tx, types.CollectionCategories, snap.Categories); err != nil {
				return err
			}
		}
		if snap.Additionals != nil {
			if err := replace(tx, types.CollectionAdditionals, snap.Additionals); err != nil {
				return err
			}
		}
		if snap.Orders != nil {
			if err := replace(tx, types.CollectionOrders, snap.Orders); err != nil {
				return err
			}
		}
		if snap.CarouselSlides != nil {
			if err := replace(tx, types.CollectionCarouselSlides, snap.CarouselSlides); err != nil {
				return err
			}
		}
		if snap.Phrases != nil {
			if err := replace(tx, types.CollectionPhrases, snap.Phrases); err != nil {
				return err
			}
		}
		if snap.StoreConfig != nil {
			snap.StoreConfig.ID = types.StoreConfigID
			if err := replace(tx, types.CollectionStoreConfig, []*types.StoreConfig{snap.StoreConfig}); err != nil {
				return err
			}
		}
		if snap.PageContent != nil {
			if err := replace(tx, types.CollectionPageContent, snap.PageContent); err != nil {
				return err
			}
		}
		if snap.Notifications != nil {
			if err := replace(tx, types.CollectionNotifications, snap.Notifications); err != nil {
				return err
			}
		}
		return nil
	})
}

func replace[T any](tx *localdb.Txn, collection string, records []*T) error {
	if err := tx.Clear(collection); err != nil {
		return err
	}
	for _, r := range records {
		if r == nil {
			continue
		}
		if err := tx.Put(collection, r); err != nil {
			return err
		}
	}
	return nil
}
