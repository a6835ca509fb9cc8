package handler

import (
	"github.com/gin-gonic/gin"

	"Storefront/config"
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"
)

type Notification struct {
	Config        *config.Config
	Notifications service.INotificationService
}

func (h *Notification) RegisterRouter(r gin.IRouter) {
	n := r.Group("/notifications")
	n.GET("/active", context.Wrap(h.ListActive))
	n.GET("/unread-count", context.Wrap(h.UnreadCount))
	n.POST("/:id/read", context.Wrap(h.MarkRead))
	n.POST("/read-all", context.Wrap(h.MarkAllRead))

	admin := n.Group("", authorize(h.Config))
	admin.GET("", context.Wrap(h.ListAll))
	admin.POST("", context.Wrap(h.Save))
	admin.PUT("/:id", context.Wrap(h.Save))
	admin.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Notification) ListActive(c *gin.Context) error {
	items, err := h.Notifications.GetActiveNotifications(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Notification) UnreadCount(c *gin.Context) error {
	n, err := h.Notifications.GetUnreadNotificationCount(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, gin.H{"count": n})
	return nil
}

func (h *Notification) MarkRead(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Notifications.MarkNotificationAsRead(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Notification) MarkAllRead(c *gin.Context) error {
	if err := h.Notifications.MarkAllNotificationsAsRead(c.Request.Context()); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Notification) ListAll(c *gin.Context) error {
	items, err := h.Notifications.GetAllNotifications(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Notification) Save(c *gin.Context) error {
	var n types.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		return badRequest(err)
	}
	if c.Param("id") != "" {
		id, err := idParam(c, "id")
		if err != nil {
			return err
		}
		n.ID = id
	}
	if err := h.Notifications.SaveNotification(c.Request.Context(), &n); err != nil {
		return fail(err)
	}
	response.Success(c, n)
	return nil
}

func (h *Notification) Delete(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Notifications.DeleteNotification(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}
