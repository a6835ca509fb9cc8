package context

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"Storefront/pkg/log"
	"Storefront/pkg/response"
)

const CtxSubject = "subject"

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, err.Error())
		}
	}
}

func GetSubject(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxSubject)
	if !ok {
		return "", errors.New("subject missing")
	}

	sub, ok := v.(string)
	if !ok {
		return "", errors.New("subject has the wrong type")
	}

	return sub, nil
}
