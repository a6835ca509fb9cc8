package models

import (
	"time"

	"Storefront/types"
)

// Notification 对应 notifications 表
type Notification struct {
	ID        int32     `gorm:"primaryKey;autoIncrement:false;column:id"`
	Title     string    `gorm:"size:255;not null;index:idx_notifications_title"`
	Message   string    `gorm:"type:text"`
	Type      string    `gorm:"column:type;size:16;not null"`
	Active    bool      `gorm:"column:active;not null;index:idx_notifications_window,priority:1"`
	StartDate time.Time `gorm:"column:start_date;index:idx_notifications_window,priority:2"`
	EndDate   time.Time `gorm:"column:end_date"`
	Priority  int       `gorm:"column:priority;not null"`
	IsRead    bool      `gorm:"column:is_read;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

func NewNotification(n *types.Notification) *Notification {
	return &Notification{
		ID:        ToID(n.ID),
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Active:    n.Active,
		StartDate: n.StartDate,
		EndDate:   n.EndDate,
		Priority:  n.Priority,
		IsRead:    n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func (m *Notification) Entity() types.Notification {
	n := types.Notification{
		ID:        int64(m.ID),
		Title:     m.Title,
		Message:   m.Message,
		Type:      types.NotificationType(m.Type),
		Active:    m.Active,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Priority:  m.Priority,
		Read:      m.IsRead,
		CreatedAt: m.CreatedAt,
	}
	n.Normalize()
	return n
}
