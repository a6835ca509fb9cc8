package service

import (
	"context"

	"Storefront/types"
)

var _ INotificationService = (*DataService)(nil)

type INotificationService interface {
	GetAllNotifications(ctx context.Context) ([]types.Notification, error)
	GetActiveNotifications(ctx context.Context) ([]types.Notification, error)
	GetUnreadNotificationCount(ctx context.Context) (int64, error)
	SaveNotification(ctx context.Context, n *types.Notification) error
	DeleteNotification(ctx context.Context, id int64) error
	MarkNotificationAsRead(ctx context.Context, id int64) error
	MarkAllNotificationsAsRead(ctx context.Context) error
}

func (s *DataService) notifications(items []types.Notification, err error) ([]types.Notification, error) {
	if err != nil {
		return nil, err
	}
	return sortNotifications(normalized(items)), nil
}

func (s *DataService) GetAllNotifications(ctx context.Context) ([]types.Notification, error) {
	return s.notifications(s.backend().GetAllNotifications(ctx))
}

// GetActiveNotifications returns active notifications whose window holds
// now, highest priority first and newest first within a priority.
func (s *DataService) GetActiveNotifications(ctx context.Context) ([]types.Notification, error) {
	return s.notifications(s.backend().GetActiveNotifications(ctx, s.Now()))
}

// GetUnreadNotificationCount counts the visible notifications not yet read.
func (s *DataService) GetUnreadNotificationCount(ctx context.Context) (int64, error) {
	return s.backend().GetUnreadNotificationCount(ctx, s.Now())
}

// SaveNotification stamps CreatedAt on first save.
func (s *DataService) SaveNotification(ctx context.Context, n *types.Notification) error {
	n.Normalize()
	if err := n.Validate(); err != nil {
		return err
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.Now().UTC()
	}
	return s.backend().SaveNotification(ctx, n)
}

func (s *DataService) DeleteNotification(ctx context.Context, id int64) error {
	return s.backend().DeleteNotification(ctx, id)
}

func (s *DataService) MarkNotificationAsRead(ctx context.Context, id int64) error {
	return s.backend().MarkNotificationAsRead(ctx, id)
}

func (s *DataService) MarkAllNotificationsAsRead(ctx context.Context) error {
	return s.backend().MarkAllNotificationsAsRead(ctx)
}
