package dao

import (
	"context"

	"gorm.io/gorm"

	"Storefront/models"
)

// Store groups the entity DAOs over one connection or transaction.
type Store struct {
	db *gorm.DB

	Products       *Product
	Categories     *Category
	Additionals    *Additional
	Orders         *Order
	CarouselSlides *CarouselSlide
	Phrases        *Phrase
	StoreConfig    *StoreConfig
	PageContent    *PageContent
	Notifications  *Notification
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:             db,
		Products:       NewProduct(db),
		Categories:     NewCategory(db),
		Additionals:    NewAdditional(db),
		Orders:         NewOrder(db),
		CarouselSlides: NewCarouselSlide(db),
		Phrases:        NewPhrase(db),
		StoreConfig:    NewStoreConfig(db),
		PageContent:    NewPageContent(db),
		Notifications:  NewNotification(db),
	}
}

func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(models.All()...)
}

// WithTx runs fn against a Store bound to one transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
