package dao

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Storefront/models"
	"Storefront/types"
)

type Notification struct {
	Repo[models.Notification]
}

func NewNotification(db *gorm.DB) *Notification {
	return &Notification{Repo: NewRepo[models.Notification](db)}
}

// visibleAt keeps active notifications whose window contains now.
func visibleAt(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("active = ? AND start_date <= ? AND end_date >= ?", true, now, now)
	}
}

func (d *Notification) find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]types.Notification, error) {
	rows, err := d.FindAll(ctx, append(scopes, orderBy("priority DESC, created_at DESC, id DESC"))...)
	if err != nil {
		return nil, err
	}
	out := make([]types.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out, nil
}

func (d *Notification) GetAll(ctx context.Context) ([]types.Notification, error) {
	return d.find(ctx)
}

func (d *Notification) GetActive(ctx context.Context, now time.Time) ([]types.Notification, error) {
	return d.find(ctx, visibleAt(now.UTC()))
}

// UnreadCount counts visible notifications not yet read.
func (d *Notification) UnreadCount(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := d.Db.WithContext(ctx).Model(&models.Notification{}).
		Scopes(visibleAt(now.UTC())).
		Where("is_read = ?", false).
		Count(&n).Error
	if err != nil {
		return 0, d.fail("count unread", "*", "", err)
	}
	return n, nil
}

func (d *Notification) Save(ctx context.Context, n *types.Notification) error {
	id, err := d.Repo.Save(ctx, "title", n.Title, n.ID, func(id int32) *models.Notification {
		row := *n
		row.ID = int64(id)
		return models.NewNotification(&row)
	})
	if err != nil {
		return err
	}
	n.ID = int64(id)
	return nil
}

func (d *Notification) Delete(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.DeleteByID(ctx, id)
}

func (d *Notification) MarkRead(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.UpdateColumn(ctx, id, "is_read", true)
}

func (d *Notification) MarkAllRead(ctx context.Context) error {
	err := d.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("is_read = ?", false).
		UpdateColumn("is_read", true).Error
	if err != nil {
		return d.fail("mark all read", "*", "", err)
	}
	return nil
}
