package handler

import (
	"github.com/gin-gonic/gin"

	"Storefront/config"
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"
)

type Catalog struct {
	Config  *config.Config
	Catalog service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	admin := authorize(h.Config)

	products := r.Group("/products")
	products.GET("", context.Wrap(h.ListProducts))
	products.GET("/:id", context.Wrap(h.GetProduct))
	products.POST("", admin, context.Wrap(h.SaveProduct))
	products.PUT("/:id", admin, context.Wrap(h.SaveProduct))
	products.DELETE("/:id", admin, context.Wrap(h.DeleteProduct))

	categories := r.Group("/categories")
	categories.GET("", context.Wrap(h.ListCategories))
	categories.GET("/:id", context.Wrap(h.GetCategory))
	categories.POST("", admin, context.Wrap(h.SaveCategory))
	categories.PUT("/:id", admin, context.Wrap(h.SaveCategory))
	categories.DELETE("/:id", admin, context.Wrap(h.DeleteCategory))

	additionals := r.Group("/additionals")
	additionals.GET("", context.Wrap(h.ListAdditionals))
	additionals.POST("", admin, context.Wrap(h.SaveAdditional))
	additionals.PUT("/:id", admin, context.Wrap(h.SaveAdditional))
	additionals.DELETE("/:id", admin, context.Wrap(h.DeleteAdditional))
}

// ListProducts supports ?active=true and ?categoryId=N.
func (h *Catalog) ListProducts(c *gin.Context) error {
	ctx := c.Request.Context()
	categoryID, byCategory, err := int64Query(c, "categoryId")
	if err != nil {
		return err
	}

	var items []types.Product
	switch {
	case byCategory:
		items, err = h.Catalog.GetProductsByCategory(ctx, categoryID)
	case activeOnly(c):
		items, err = h.Catalog.GetActiveProducts(ctx)
	default:
		items, err = h.Catalog.GetAllProducts(ctx)
	}
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Catalog) GetProduct(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	p, err := h.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	if p == nil {
		return notFound("product")
	}
	response.Success(c, p)
	return nil
}

func (h *Catalog) SaveProduct(c *gin.Context) error {
	var p types.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		return badRequest(err)
	}
	if c.Param("id") != "" {
		id, err := idParam(c, "id")
		if err != nil {
			return err
		}
		p.ID = id
	}
	if err := h.Catalog.SaveProduct(c.Request.Context(), &p); err != nil {
		return fail(err)
	}
	response.Success(c, p)
	return nil
}

func (h *Catalog) DeleteProduct(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Catalog) ListCategories(c *gin.Context) error {
	ctx := c.Request.Context()
	var (
		items []types.Category
		err   error
	)
	if activeOnly(c) {
		items, err = h.Catalog.GetActiveCategories(ctx)
	} else {
		items, err = h.Catalog.GetAllCategories(ctx)
	}
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Catalog) GetCategory(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	cat, err := h.Catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	if cat == nil {
		return notFound("category")
	}
	response.Success(c, cat)
	return nil
}

func (h *Catalog) SaveCategory(c *gin.Context) error {
	var cat types.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		return badRequest(err)
	}
	if c.Param("id") != "" {
		id, err := idParam(c, "id")
		if err != nil {
			return err
		}
		cat.ID = id
	}
	if err := h.Catalog.SaveCategory(c.Request.Context(), &cat); err != nil {
		return fail(err)
	}
	response.Success(c, cat)
	return nil
}

func (h *Catalog) DeleteCategory(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

// ListAdditionals supports ?active=true and ?categoryId=N.
func (h *Catalog) ListAdditionals(c *gin.Context) error {
	ctx := c.Request.Context()
	categoryID, byCategory, err := int64Query(c, "categoryId")
	if err != nil {
		return err
	}

	var items []types.Additional
	switch {
	case byCategory:
		items, err = h.Catalog.GetAdditionalsByCategory(ctx, categoryID)
	case activeOnly(c):
		items, err = h.Catalog.GetActiveAdditionals(ctx)
	default:
		items, err = h.Catalog.GetAllAdditionals(ctx)
	}
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Catalog) SaveAdditional(c *gin.Context) error {
	var a types.Additional
	if err := c.ShouldBindJSON(&a); err != nil {
		return badRequest(err)
	}
	if c.Param("id") != "" {
		id, err := idParam(c, "id")
		if err != nil {
			return err
		}
		a.ID = id
	}
	if err := h.Catalog.SaveAdditional(c.Request.Context(), &a); err != nil {
		return fail(err)
	}
	response.Success(c, a)
	return nil
}

func (h *Catalog) DeleteAdditional(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Catalog.DeleteAdditional(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}
