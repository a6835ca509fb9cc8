package service

import (
	"context"
	"time"

	"Storefront/types"
)

// DataBackend is one place data can live. The facade talks to exactly one
// of them per call.
type DataBackend interface {
	Name() Mode

	GetAllProducts(ctx context.Context) ([]types.Product, error)
	GetActiveProducts(ctx context.Context) ([]types.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int64) ([]types.Product, error)
	GetProduct(ctx context.Context, id int64) (*types.Product, error)
	SaveProduct(ctx context.Context, p *types.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	GetAllCategories(ctx context.Context) ([]types.Category, error)
	GetActiveCategories(ctx context.Context) ([]types.Category, error)
	GetCategory(ctx context.Context, id int64) (*types.Category, error)
	SaveCategory(ctx context.Context, c *types.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	GetAllAdditionals(ctx context.Context) ([]types.Additional, error)
	GetActiveAdditionals(ctx context.Context) ([]types.Additional, error)
	GetAdditionalsByCategory(ctx context.Context, categoryID int64) ([]types.Additional, error)
	SaveAdditional(ctx context.Context, a *types.Additional) error
	DeleteAdditional(ctx context.Context, id int64) error

	GetAllOrders(ctx context.Context) ([]types.Order, error)
	GetOrdersByStatus(ctx context.Context, status types.OrderStatus) ([]types.Order, error)
	GetOrder(ctx context.Context, id int64) (*types.Order, error)
	SaveOrder(ctx context.Context, o *types.Order) error
	UpdateOrderStatus(ctx context.Context, id int64, status types.OrderStatus) error
	MarkOrderAsPrinted(ctx context.Context, id int64) error
	DeleteOrder(ctx context.Context, id int64) error

	GetAllCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error)
	GetActiveCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error)
	SaveCarouselSlide(ctx context.Context, s *types.CarouselSlide) error
	DeleteCarouselSlide(ctx context.Context, id int64) error

	GetAllPhrases(ctx context.Context) ([]types.Phrase, error)
	GetActivePhrases(ctx context.Context) ([]types.Phrase, error)
	SavePhrase(ctx context.Context, p *types.Phrase) error
	DeletePhrase(ctx context.Context, id int64) error

	// GetStoreConfig returns nil when no configuration was ever saved.
	GetStoreConfig(ctx context.Context) (*types.StoreConfig, error)
	SaveStoreConfig(ctx context.Context, c *types.StoreConfig) error

	GetAllPageContent(ctx context.Context) ([]types.PageContent, error)
	GetPageContent(ctx context.Context, slug string) (*types.PageContent, error)
	SavePageContent(ctx context.Context, p *types.PageContent) error
	DeletePageContent(ctx context.Context, slug string) error

	GetAllNotifications(ctx context.Context) ([]types.Notification, error)
	GetActiveNotifications(ctx context.Context, now time.Time) ([]types.Notification, error)
	GetUnreadNotificationCount(ctx context.Context, now time.Time) (int64, error)
	SaveNotification(ctx context.Context, n *types.Notification) error
	DeleteNotification(ctx context.Context, id int64) error
	MarkNotificationAsRead(ctx context.Context, id int64) error
	MarkAllNotificationsAsRead(ctx context.Context) error

	// Import writes every collection present in snap. Backends differ in
	// how: see LocalBackend.Import and RemoteBackend.Import.
	Import(ctx context.Context, snap *types.Snapshot) error
}
