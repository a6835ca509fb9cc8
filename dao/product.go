package dao

import (
	"context"

	"gorm.io/gorm"

	"Storefront/models"
	"Storefront/types"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

func products(rows []*models.Product) []types.Product {
	out := make([]types.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out
}

func (d *Product) GetAll(ctx context.Context) ([]types.Product, error) {
	rows, err := d.FindAll(ctx, orderBy("name, id"))
	if err != nil {
		return nil, err
	}
	return products(rows), nil
}

func (d *Product) GetActive(ctx context.Context) ([]types.Product, error) {
	rows, err := d.FindAll(ctx, active, orderBy("name, id"))
	if err != nil {
		return nil, err
	}
	return products(rows), nil
}

func (d *Product) GetByCategory(ctx context.Context, categoryID int64) ([]types.Product, error) {
	if !models.SafeID(categoryID) {
		return []types.Product{}, nil
	}
	rows, err := d.FindAll(ctx, byCategory(int32(categoryID)), orderBy("name, id"))
	if err != nil {
		return nil, err
	}
	return products(rows), nil
}

func (d *Product) Get(ctx context.Context, id int64) (*types.Product, error) {
	if !models.SafeID(id) {
		return nil, nil
	}
	row, err := d.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	p := row.Entity()
	return &p, nil
}

// Save upserts p and writes the reconciled id back into it.
func (d *Product) Save(ctx context.Context, p *types.Product) error {
	id, err := d.Repo.Save(ctx, "name", p.Name, p.ID, func(id int32) *models.Product {
		row := *p
		row.ID = int64(id)
		return models.NewProduct(&row)
	})
	if err != nil {
		return err
	}
	p.ID = int64(id)
	return nil
}

func (d *Product) Delete(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.DeleteByID(ctx, id)
}
