package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Storefront/config"
	"Storefront/middleware"
	"Storefront/pkg/localdb"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"
)

func authorize(conf *config.Config) gin.HandlerFunc {
	return middleware.Auth([]byte(conf.Jwt.Secret), conf.Jwt.Expire)
}

// fail turns service errors into business errors with a fitting code.
func fail(err error) error {
	switch {
	case errors.Is(err, types.ErrInvalid), errors.Is(err, service.ErrBadPayload):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoBackup):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMigrationRunning), errors.Is(err, service.ErrAlreadyMigrated):
		return response.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, localdb.ErrUnavailable):
		return response.NewError(http.StatusServiceUnavailable, err.Error())
	}
	return err
}

func badRequest(err error) error {
	return response.NewError(http.StatusBadRequest, err.Error())
}

func notFound(what string) error {
	return response.NewError(http.StatusNotFound, what+" not found")
}

func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// int64Query reads an optional integer query parameter.
func int64Query(c *gin.Context, name string) (int64, bool, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, response.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, true, nil
}

func activeOnly(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.Query("active"))
	return v
}
