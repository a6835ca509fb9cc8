package types

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationAlert   NotificationType = "alert"
	NotificationSuccess NotificationType = "success"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationAlert, NotificationSuccess:
		return true
	}
	return false
}

type Notification struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Active    bool             `json:"active"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	Priority  int              `json:"priority"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// VisibleAt is active && StartDate <= t <= EndDate.
func (n *Notification) VisibleAt(t time.Time) bool {
	return n.Active && !t.Before(n.StartDate) && !t.After(n.EndDate)
}

func (n *Notification) Validate() error {
	if blank(n.Title) {
		return invalid("notification", "title is required")
	}
	if !n.Type.Valid() {
		return invalid("notification", "unknown type %q", n.Type)
	}
	if n.EndDate.Before(n.StartDate) {
		return invalid("notification", "%q ends before it starts", n.Title)
	}
	return nil
}

func (n *Notification) Normalize() {
	if n.Type == "" {
		n.Type = NotificationInfo
	}
	n.StartDate = utc(n.StartDate)
	n.EndDate = utc(n.EndDate)
	n.CreatedAt = utc(n.CreatedAt)
}
