package service

import (
	"context"

	"Storefront/types"
)

var _ ICatalogService = (*DataService)(nil)

type ICatalogService interface {
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
}

func (s *DataService) products(items []types.Product, err error) ([]types.Product, error) {
	if err != nil {
		return nil, err
	}
	return sortProducts(normalized(items)), nil
}

func (s *DataService) GetAllProducts(ctx context.Context) ([]types.Product, error) {
	return s.products(s.backend().GetAllProducts(ctx))
}

func (s *DataService) GetActiveProducts(ctx context.Context) ([]types.Product, error) {
	return s.products(s.backend().GetActiveProducts(ctx))
}

func (s *DataService) GetProductsByCategory(ctx context.Context, categoryID int64) ([]types.Product, error) {
	return s.products(s.backend().GetProductsByCategory(ctx, categoryID))
}

// GetProduct returns nil, nil when the product does not exist.
func (s *DataService) GetProduct(ctx context.Context, id int64) (*types.Product, error) {
	p, err := s.backend().GetProduct(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	p.Normalize()
	return p, nil
}

// SaveProduct validates p and upserts it. The id the backend settled on is
// written back into p.
func (s *DataService) SaveProduct(ctx context.Context, p *types.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.Normalize()
	return s.backend().SaveProduct(ctx, p)
}

func (s *DataService) DeleteProduct(ctx context.Context, id int64) error {
	return s.backend().DeleteProduct(ctx, id)
}

func (s *DataService) categories(items []types.Category, err error) ([]types.Category, error) {
	if err != nil {
		return nil, err
	}
	return sortCategories(normalized(items)), nil
}

func (s *DataService) GetAllCategories(ctx context.Context) ([]types.Category, error) {
	return s.categories(s.backend().GetAllCategories(ctx))
}

func (s *DataService) GetActiveCategories(ctx context.Context) ([]types.Category, error) {
	return s.categories(s.backend().GetActiveCategories(ctx))
}

func (s *DataService) GetCategory(ctx context.Context, id int64) (*types.Category, error) {
	return s.backend().GetCategory(ctx, id)
}

func (s *DataService) SaveCategory(ctx context.Context, c *types.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.Normalize()
	return s.backend().SaveCategory(ctx, c)
}

func (s *DataService) DeleteCategory(ctx context.Context, id int64) error {
	return s.backend().DeleteCategory(ctx, id)
}

func (s *DataService) additionals(items []types.Additional, err error) ([]types.Additional, error) {
	if err != nil {
		return nil, err
	}
	return sortAdditionals(normalized(items)), nil
}

func (s *DataService) GetAllAdditionals(ctx context.Context) ([]types.Additional, error) {
	return s.additionals(s.backend().GetAllAdditionals(ctx))
}

func (s *DataService) GetActiveAdditionals(ctx context.Context) ([]types.Additional, error) {
	return s.additionals(s.backend().GetActiveAdditionals(ctx))
}

func (s *DataService) GetAdditionalsByCategory(ctx context.Context, categoryID int64) ([]types.Additional, error) {
	return s.additionals(s.backend().GetAdditionalsByCategory(ctx, categoryID))
}

func (s *DataService) SaveAdditional(ctx context.Context, a *types.Additional) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.Normalize()
	return s.backend().SaveAdditional(ctx, a)
}

func (s *DataService) DeleteAdditional(ctx context.Context, id int64) error {
	return s.backend().DeleteAdditional(ctx, id)
}
