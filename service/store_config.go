package service

import (
	"context"

	"go.uber.org/zap"

	"Storefront/pkg/log"
	"Storefront/types"
)

var _ IStoreConfigService = (*DataService)(nil)

type IStoreConfigService interface {
	GetStoreConfig(ctx context.Context) (*types.StoreConfig, error)
	SaveStoreConfig(ctx context.Context, c *types.StoreConfig) error
	IsStoreOpen(ctx context.Context) (bool, error)
}

// GetStoreConfig never returns nil: a store without configuration gets the
// default one, persisted before it is returned.
func (s *DataService) GetStoreConfig(ctx context.Context) (*types.StoreConfig, error) {
	b := s.backend()
	c, err := b.GetStoreConfig(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = types.DefaultStoreConfig()
		if err := b.SaveStoreConfig(ctx, c); err != nil {
			return nil, err
		}
		log.L.Info("default store config created", zap.String("backend", string(b.Name())))
	}
	c.Normalize()
	return c, nil
}

func (s *DataService) SaveStoreConfig(ctx context.Context, c *types.StoreConfig) error {
	if c.ID == "" {
		c.ID = types.StoreConfigID
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}
	return s.backend().SaveStoreConfig(ctx, c)
}

// IsStoreOpen evaluates the configuration at the current wall-clock time of
// the store's location.
func (s *DataService) IsStoreOpen(ctx context.Context) (bool, error) {
	c, err := s.GetStoreConfig(ctx)
	if err != nil {
		return false, err
	}
	now := s.Now()
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return c.OpenAt(now), nil
}
