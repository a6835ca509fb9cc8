package handler

import (
	"github.com/gin-gonic/gin"

	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"
)

type Cart struct {
	Cart service.ICartService
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	cart := r.Group("/cart")
	cart.GET("", context.Wrap(h.GetCart))
	cart.POST("", context.Wrap(h.AddToCart))
	cart.PUT("/:productId/:size", context.Wrap(h.UpdateQuantity))
	cart.DELETE("/:productId/:size", context.Wrap(h.RemoveFromCart))
	cart.DELETE("", context.Wrap(h.ClearCart))
}

func (h *Cart) GetCart(c *gin.Context) error {
	items, err := h.Cart.GetCart(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Cart) AddToCart(c *gin.Context) error {
	var item types.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		return badRequest(err)
	}
	if err := h.Cart.AddToCart(c.Request.Context(), &item); err != nil {
		return fail(err)
	}
	return h.GetCart(c)
}

func (h *Cart) UpdateQuantity(c *gin.Context) error {
	productID, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := h.Cart.UpdateCartItemQuantity(c.Request.Context(), productID, c.Param("size"), req.Quantity); err != nil {
		return fail(err)
	}
	return h.GetCart(c)
}

func (h *Cart) RemoveFromCart(c *gin.Context) error {
	productID, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	if err := h.Cart.RemoveFromCart(c.Request.Context(), productID, c.Param("size")); err != nil {
		return fail(err)
	}
	return h.GetCart(c)
}

func (h *Cart) ClearCart(c *gin.Context) error {
	if err := h.Cart.ClearCart(c.Request.Context()); err != nil {
		return fail(err)
	}
	response.Success(c, []types.CartItem{})
	return nil
}
