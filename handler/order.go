package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Storefront/config"
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"
)

type Order struct {
	Config      *config.Config
	Orders      service.IOrderService
	StoreConfig service.IStoreConfigService
}

type updateStatusRequest struct {
	Status types.OrderStatus `json:"status" binding:"required"`
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	order := r.Group("/orders")
	order.POST("", context.Wrap(h.PlaceOrder))

	admin := order.Group("", authorize(h.Config))
	admin.GET("", context.Wrap(h.ListOrders))
	admin.GET("/:id", context.Wrap(h.GetOrder))
	admin.PUT("/:id", context.Wrap(h.SaveOrder))
	admin.PATCH("/:id/status", context.Wrap(h.UpdateStatus))
	admin.POST("/:id/print", context.Wrap(h.MarkPrinted))
	admin.DELETE("/:id", context.Wrap(h.DeleteOrder))
}

// PlaceOrder is the customer checkout. It refuses orders while the store is
// closed and always starts the order as new.
func (h *Order) PlaceOrder(c *gin.Context) error {
	var o types.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		return badRequest(err)
	}
	ctx := c.Request.Context()

	open, err := h.StoreConfig.IsStoreOpen(ctx)
	if err != nil {
		return fail(err)
	}
	if !open {
		return response.NewError(http.StatusConflict, "store is closed")
	}

	o.ID = 0
	o.Status = types.OrderStatusNew
	o.Printed = false
	if err := h.Orders.SaveOrder(ctx, &o); err != nil {
		return fail(err)
	}
	response.Success(c, o)
	return nil
}

// ListOrders supports ?status=.
func (h *Order) ListOrders(c *gin.Context) error {
	ctx := c.Request.Context()
	var (
		items []types.Order
		err   error
	)
	if status := c.Query("status"); status != "" {
		items, err = h.Orders.GetOrdersByStatus(ctx, types.OrderStatus(status))
	} else {
		items, err = h.Orders.GetAllOrders(ctx)
	}
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Order) GetOrder(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	o, err := h.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	if o == nil {
		return notFound("order")
	}
	response.Success(c, o)
	return nil
}

func (h *Order) SaveOrder(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var o types.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		return badRequest(err)
	}
	o.ID = id
	if err := h.Orders.SaveOrder(c.Request.Context(), &o); err != nil {
		return fail(err)
	}
	response.Success(c, o)
	return nil
}

func (h *Order) UpdateStatus(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := h.Orders.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Order) MarkPrinted(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Orders.MarkOrderAsPrinted(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Order) DeleteOrder(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Orders.DeleteOrder(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}
