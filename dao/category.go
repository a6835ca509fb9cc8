package dao

import (
	"context"

	"gorm.io/gorm"

	"Storefront/models"
	"Storefront/types"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{Repo: NewRepo[models.Category](db)}
}

func categories(rows []*models.Category) []types.Category {
	out := make([]types.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out
}

func (d *Category) GetAll(ctx context.Context) ([]types.Category, error) {
	rows, err := d.FindAll(ctx, orderBy("sort_order, id"))
	if err != nil {
		return nil, err
	}
	return categories(rows), nil
}

func (d *Category) GetActive(ctx context.Context) ([]types.Category, error) {
	rows, err := d.FindAll(ctx, active, orderBy("sort_order, id"))
	if err != nil {
		return nil, err
	}
	return categories(rows), nil
}

func (d *Category) Get(ctx context.Context, id int64) (*types.Category, error) {
	if !models.SafeID(id) {
		return nil, nil
	}
	row, err := d.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	c := row.Entity()
	return &c, nil
}

func (d *Category) Save(ctx context.Context, c *types.Category) error {
	id, err := d.Repo.Save(ctx, "name", c.Name, c.ID, func(id int32) *models.Category {
		row := *c
		row.ID = int64(id)
		return models.NewCategory(&row)
	})
	if err != nil {
		return err
	}
	c.ID = int64(id)
	return nil
}

func (d *Category) Delete(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.DeleteByID(ctx, id)
}

type Additional struct {
	Repo[models.Additional]
}

func NewAdditional(db *gorm.DB) *Additional {
	return &Additional{Repo: NewRepo[models.Additional](db)}
}

func additionals(rows []*models.Additional) []types.Additional {
	out := make([]types.Additional, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out
}

func (d *Additional) GetAll(ctx context.Context) ([]types.Additional, error) {
	rows, err := d.FindAll(ctx, orderBy("name, id"))
	if err != nil {
		return nil, err
	}
	return additionals(rows), nil
}

func (d *Additional) GetActive(ctx context.Context) ([]types.Additional, error) {
	rows, err := d.FindAll(ctx, active, orderBy("name, id"))
	if err != nil {
		return nil, err
	}
	return additionals(rows), nil
}

func (d *Additional) GetByCategory(ctx context.Context, categoryID int64) ([]types.Additional, error) {
	if !models.SafeID(categoryID) {
		return []types.Additional{}, nil
	}
	rows, err := d.FindAll(ctx, byCategory(int32(categoryID)), orderBy("name, id"))
	if err != nil {
		return nil, err
	}
	return additionals(rows), nil
}

func (d *Additional) Get(ctx context.Context, id int64) (*types.Additional, error) {
	if !models.SafeID(id) {
		return nil, nil
	}
	row, err := d.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	a := row.Entity()
	return &a, nil
}

func (d *Additional) Save(ctx context.Context, a *types.Additional) error {
	id, err := d.Repo.Save(ctx, "name", a.Name, a.ID, func(id int32) *models.Additional {
		row := *a
		row.ID = int64(id)
		return models.NewAdditional(&row)
	})
	if err != nil {
		return err
	}
	a.ID = int64(id)
	return nil
}

func (d *Additional) Delete(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.DeleteByID(ctx, id)
}
