package service

import (
	"context"
	"time"

	"Storefront/config"
	"Storefront/dao"
	"Storefront/types"
)

// RemoteBackend serves everything from the hosted database. Each call runs
// under the configured timeout; nothing is retried.
type RemoteBackend struct {
	Store   *dao.Store
	Timeout time.Duration
}

var _ DataBackend = (*RemoteBackend)(nil)

func NewRemoteBackend(store *dao.Store, conf *config.Config) *RemoteBackend {
	return &RemoteBackend{Store: store, Timeout: conf.Remote.Timeout}
}

func (b *RemoteBackend) Name() Mode { return ModeRemote }

func (b *RemoteBackend) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.Timeout)
}

func (b *RemoteBackend) GetAllProducts(ctx context.Context) ([]types.Product, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Products.GetAll(ctx)
}

func (b *RemoteBackend) GetActiveProducts(ctx context.Context) ([]types.Product, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Products.GetActive(ctx)
}

func (b *RemoteBackend) GetProductsByCategory(ctx context.Context, categoryID int64) ([]types.Product, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Products.GetByCategory(ctx, categoryID)
}

func (b *RemoteBackend) GetProduct(ctx context.Context, id int64) (*types.Product, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Products.Get(ctx, id)
}

func (b *RemoteBackend) SaveProduct(ctx context.Context, p *types.Product) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Products.Save(ctx, p)
}

func (b *RemoteBackend) DeleteProduct(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Products.Delete(ctx, id)
}

func (b *RemoteBackend) GetAllCategories(ctx context.Context) ([]types.Category, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Categories.GetAll(ctx)
}

func (b *RemoteBackend) GetActiveCategories(ctx context.Context) ([]types.Category, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Categories.GetActive(ctx)
}

func (b *RemoteBackend) GetCategory(ctx context.Context, id int64) (*types.Category, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Categories.Get(ctx, id)
}

func (b *RemoteBackend) SaveCategory(ctx context.Context, c *types.Category) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Categories.Save(ctx, c)
}

func (b *RemoteBackend) DeleteCategory(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Categories.Delete(ctx, id)
}

func (b *RemoteBackend) GetAllAdditionals(ctx context.Context) ([]types.Additional, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Additionals.GetAll(ctx)
}

func (b *RemoteBackend) GetActiveAdditionals(ctx context.Context) ([]types.Additional, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Additionals.GetActive(ctx)
}

func (b *RemoteBackend) GetAdditionalsByCategory(ctx context.Context, categoryID int64) ([]types.Additional, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Additionals.GetByCategory(ctx, categoryID)
}

func (b *RemoteBackend) SaveAdditional(ctx context.Context, a *types.Additional) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Additionals.Save(ctx, a)
}

func (b *RemoteBackend) DeleteAdditional(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Additionals.Delete(ctx, id)
}

func (b *RemoteBackend) GetAllOrders(ctx context.Context) ([]types.Order, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Orders.GetAll(ctx)
}

func (b *RemoteBackend) GetOrdersByStatus(ctx context.Context, status types.OrderStatus) ([]types.Order, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Orders.GetByStatus(ctx, status)
}

func (b *RemoteBackend) GetOrder(ctx context.Context, id int64) (*types.Order, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Orders.Get(ctx, id)
}

func (b *RemoteBackend) SaveOrder(ctx context.Context, o *types.Order) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Orders.Save(ctx, o)
}

func (b *RemoteBackend) UpdateOrderStatus(ctx context.Context, id int64, status types.OrderStatus) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Orders.UpdateStatus(ctx, id, status)
}

func (b *RemoteBackend) MarkOrderAsPrinted(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Orders.MarkPrinted(ctx, id)
}

func (b *RemoteBackend) DeleteOrder(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Orders.Delete(ctx, id)
}

func (b *RemoteBackend) GetAllCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.CarouselSlides.GetAll(ctx)
}

func (b *RemoteBackend) GetActiveCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.CarouselSlides.GetActive(ctx)
}

func (b *RemoteBackend) SaveCarouselSlide(ctx context.Context, s *types.CarouselSlide) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.CarouselSlides.Save(ctx, s)
}

func (b *RemoteBackend) DeleteCarouselSlide(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.CarouselSlides.Delete(ctx, id)
}

func (b *RemoteBackend) GetAllPhrases(ctx context.Context) ([]types.Phrase, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Phrases.GetAll(ctx)
}

func (b *RemoteBackend) GetActivePhrases(ctx context.Context) ([]types.Phrase, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Phrases.GetActive(ctx)
}

func (b *RemoteBackend) SavePhrase(ctx context.Context, p *types.Phrase) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Phrases.Save(ctx, p)
}

func (b *RemoteBackend) DeletePhrase(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Phrases.Delete(ctx, id)
}

func (b *RemoteBackend) GetStoreConfig(ctx context.Context) (*types.StoreConfig, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.StoreConfig.Get(ctx)
}

func (b *RemoteBackend) SaveStoreConfig(ctx context.Context, c *types.StoreConfig) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.StoreConfig.Save(ctx, c)
}

func (b *RemoteBackend) GetAllPageContent(ctx context.Context) ([]types.PageContent, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.PageContent.GetAll(ctx)
}

func (b *RemoteBackend) GetPageContent(ctx context.Context, slug string) (*types.PageContent, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.PageContent.Get(ctx, slug)
}

func (b *RemoteBackend) SavePageContent(ctx context.Context, p *types.PageContent) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.PageContent.Save(ctx, p)
}

func (b *RemoteBackend) DeletePageContent(ctx context.Context, slug string) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.PageContent.Delete(ctx, slug)
}

func (b *RemoteBackend) GetAllNotifications(ctx context.Context) ([]types.Notification, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Notifications.GetAll(ctx)
}

func (b *RemoteBackend) GetActiveNotifications(ctx context.Context, now time.Time) ([]types.Notification, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Notifications.GetActive(ctx, now)
}

func (b *RemoteBackend) GetUnreadNotificationCount(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Notifications.UnreadCount(ctx, now)
}

func (b *RemoteBackend) SaveNotification(ctx context.Context, n *types.Notification) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Notifications.Save(ctx, n)
}

func (b *RemoteBackend) DeleteNotification(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Notifications.Delete(ctx, id)
}

func (b *RemoteBackend) MarkNotificationAsRead(ctx context.Context, id int64) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Notifications.MarkRead(ctx, id)
}

func (b *RemoteBackend) MarkAllNotificationsAsRead(ctx context.Context) error {
	ctx, cancel := b.bound(ctx)
	defer cancel()
	return b.Store.Notifications.MarkAllRead(ctx)
}

// Import upserts record by record inside one transaction. The remote side
// has no bulk clear, so rows missing from snap are kept. Carts are local
// only and ignored here. The whole import shares no per-call timeout.
// Records carrying local ids get remote ones, and references between
// catalog records and from orders follow them.
func (b *RemoteBackend) Import(ctx context.Context, snap *types.Snapshot) error {
	return b.Store.WithTx(ctx, func(tx *dao.Store) error {
		ids := newIDRemap()
		for _, rec := range snap.Categories {
			c := *rec
			if err := tx.Categories.Save(ctx, &c); err != nil {
				return err
			}
			ids.categories.set(rec.ID, c.ID)
		}
		for _, rec := range snap.Additionals {
			a := *rec
			ids.additional(&a)
			if err := tx.Additionals.Save(ctx, &a); err != nil {
				return err
			}
			ids.additionals.set(rec.ID, a.ID)
		}
		for _, rec := range snap.Products {
			p := *rec
			ids.product(&p)
			if err := tx.Products.Save(ctx, &p); err != nil {
				return err
			}
			ids.products.set(rec.ID, p.ID)
		}
		for _, rec := range snap.Orders {
			o := *rec
			ids.order(&o)
			if err := tx.Orders.Save(ctx, &o); err != nil {
				return err
			}
		}
		for _, s := range snap.CarouselSlides {
			if err := tx.CarouselSlides.Save(ctx, s); err != nil {
				return err
			}
		}
		for _, p := range snap.Phrases {
			if err := tx.Phrases.Save(ctx, p); err != nil {
				return err
			}
		}
		if snap.StoreConfig != nil {
			if err := tx.StoreConfig.Save(ctx, snap.StoreConfig); err != nil {
				return err
			}
		}
		for _, p := range snap.PageContent {
			if err := tx.PageContent.Save(ctx, p); err != nil {
				return err
			}
		}
		for _, n := range snap.Notifications {
			if err := tx.Notifications.Save(ctx, n); err != nil {
				return err
			}
		}
		return nil
	})
}
