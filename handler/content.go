package handler

import (
	"github.com/gin-gonic/gin"

	"Storefront/config"
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"
)

type Content struct {
	Config  *config.Config
	Content service.IContentService
}

func (h *Content) RegisterRouter(r gin.IRouter) {
	admin := authorize(h.Config)

	slides := r.Group("/carousel")
	slides.GET("", context.Wrap(h.ListSlides))
	slides.POST("", admin, context.Wrap(h.SaveSlide))
	slides.PUT("/:id", admin, context.Wrap(h.SaveSlide))
	slides.DELETE("/:id", admin, context.Wrap(h.DeleteSlide))

	phrases := r.Group("/phrases")
	phrases.GET("", context.Wrap(h.ListPhrases))
	phrases.POST("", admin, context.Wrap(h.SavePhrase))
	phrases.PUT("/:id", admin, context.Wrap(h.SavePhrase))
	phrases.DELETE("/:id", admin, context.Wrap(h.DeletePhrase))

	pages := r.Group("/pages")
	pages.GET("", context.Wrap(h.ListPages))
	pages.GET("/:slug", context.Wrap(h.GetPage))
	pages.PUT("/:slug", admin, context.Wrap(h.SavePage))
	pages.DELETE("/:slug", admin, context.Wrap(h.DeletePage))
}

func (h *Content) ListSlides(c *gin.Context) error {
	ctx := c.Request.Context()
	var (
		items []types.CarouselSlide
		err   error
	)
	if activeOnly(c) {
		items, err = h.Content.GetActiveCarouselSlides(ctx)
	} else {
		items, err = h.Content.GetAllCarouselSlides(ctx)
	}
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Content) SaveSlide(c *gin.Context) error {
	var s types.CarouselSlide
	if err := c.ShouldBindJSON(&s); err != nil {
		return badRequest(err)
	}
	if c.Param("id") != "" {
		id, err := idParam(c, "id")
		if err != nil {
			return err
		}
		s.ID = id
	}
	if err := h.Content.SaveCarouselSlide(c.Request.Context(), &s); err != nil {
		return fail(err)
	}
	response.Success(c, s)
	return nil
}

func (h *Content) DeleteSlide(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Content.DeleteCarouselSlide(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Content) ListPhrases(c *gin.Context) error {
	ctx := c.Request.Context()
	var (
		items []types.Phrase
		err   error
	)
	if activeOnly(c) {
		items, err = h.Content.GetActivePhrases(ctx)
	} else {
		items, err = h.Content.GetAllPhrases(ctx)
	}
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Content) SavePhrase(c *gin.Context) error {
	var p types.Phrase
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
	if err := h.Content.SavePhrase(c.Request.Context(), &p); err != nil {
		return fail(err)
	}
	response.Success(c, p)
	return nil
}

func (h *Content) DeletePhrase(c *gin.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Content.DeletePhrase(c.Request.Context(), id); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Content) ListPages(c *gin.Context) error {
	items, err := h.Content.GetAllPageContent(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Content) GetPage(c *gin.Context) error {
	p, err := h.Content.GetPageContent(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return fail(err)
	}
	if p == nil {
		return notFound("page")
	}
	response.Success(c, p)
	return nil
}

func (h *Content) SavePage(c *gin.Context) error {
	var p types.PageContent
	if err := c.ShouldBindJSON(&p); err != nil {
		return badRequest(err)
	}
	p.ID = c.Param("slug")
	if err := h.Content.SavePageContent(c.Request.Context(), &p); err != nil {
		return fail(err)
	}
	response.Success(c, p)
	return nil
}

func (h *Content) DeletePage(c *gin.Context) error {
	if err := h.Content.DeletePageContent(c.Request.Context(), c.Param("slug")); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}
