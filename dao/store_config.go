package dao

import (
	"context"

	"gorm.io/gorm"

	"Storefront/models"
	"Storefront/types"
)

type StoreConfig struct {
	Repo[models.StoreConfig]
}

func NewStoreConfig(db *gorm.DB) *StoreConfig {
	return &StoreConfig{Repo: NewRepo[models.StoreConfig](db)}
}

// Get returns the single configuration row, or nil on a fresh store.
func (d *StoreConfig) Get(ctx context.Context) (*types.StoreConfig, error) {
	row, err := d.FindByID(ctx, types.StoreConfigID)
	if err != nil || row == nil {
		return nil, err
	}
	c := row.Entity()
	return &c, nil
}

func (d *StoreConfig) Save(ctx context.Context, c *types.StoreConfig) error {
	c.ID = types.StoreConfigID
	return d.Upsert(ctx, models.NewStoreConfig(c), c.ID, c.Name)
}
