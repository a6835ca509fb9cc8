package handler

import (
	"github.com/gin-gonic/gin"

	"Storefront/config"
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"
)

type StoreConfig struct {
	Config      *config.Config
	StoreConfig service.IStoreConfigService
}

func (h *StoreConfig) RegisterRouter(r gin.IRouter) {
	sc := r.Group("/store-config")
	sc.GET("", context.Wrap(h.Get))
	sc.GET("/open", context.Wrap(h.IsOpen))
	sc.PUT("", authorize(h.Config), context.Wrap(h.Save))
}

func (h *StoreConfig) Get(c *gin.Context) error {
	conf, err := h.StoreConfig.GetStoreConfig(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, conf)
	return nil
}

func (h *StoreConfig) IsOpen(c *gin.Context) error {
	open, err := h.StoreConfig.IsStoreOpen(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, gin.H{"open": open})
	return nil
}

func (h *StoreConfig) Save(c *gin.Context) error {
	var conf types.StoreConfig
	if err := c.ShouldBindJSON(&conf); err != nil {
		return badRequest(err)
	}
	if err := h.StoreConfig.SaveStoreConfig(c.Request.Context(), &conf); err != nil {
		return fail(err)
	}
	response.Success(c, conf)
	return nil
}
