package dao

import (
	"context"

	"gorm.io/gorm"

	"Storefront/models"
	"Storefront/types"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{Repo: NewRepo[models.Order](db)}
}

func orders(rows []*models.Order) []types.Order {
	out := make([]types.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out
}

func (d *Order) GetAll(ctx context.Context) ([]types.Order, error) {
	rows, err := d.FindAll(ctx, orderBy("date DESC, id DESC"))
	if err != nil {
		return nil, err
	}
	return orders(rows), nil
}

func (d *Order) GetByStatus(ctx context.Context, status types.OrderStatus) ([]types.Order, error) {
	rows, err := d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", string(status))
	}, orderBy("date DESC, id DESC"))
	if err != nil {
		return nil, err
	}
	return orders(rows), nil
}

func (d *Order) Get(ctx context.Context, id int64) (*types.Order, error) {
	if !models.SafeID(id) {
		return nil, nil
	}
	row, err := d.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	o := row.Entity()
	return &o, nil
}

// Save upserts o. A missing or out of range id is left to the database and
// the assigned id is written back into o. An explicit id also moves the
// id sequence past it so later checkouts do not collide.
func (d *Order) Save(ctx context.Context, o *types.Order) error {
	row := models.NewOrder(o)
	explicit := row.ID != 0
	if err := d.Upsert(ctx, row, o.ID, o.CustomerName); err != nil {
		return err
	}
	o.ID = int64(row.ID)
	if explicit {
		return d.SyncSequence(ctx)
	}
	return nil
}

func (d *Order) UpdateStatus(ctx context.Context, id int64, status types.OrderStatus) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.UpdateColumn(ctx, id, "status", string(status))
}

func (d *Order) MarkPrinted(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.UpdateColumn(ctx, id, "printed", true)
}

func (d *Order) Delete(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.DeleteByID(ctx, id)
}
