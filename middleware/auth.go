package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"Storefront/pkg/context"
	"Storefront/pkg/jwt"
	"Storefront/pkg/log"
	"Storefront/pkg/response"
)

// refreshBuffer is how close to expiry a token gets a fresh one in the
// X-New-Access-Token header.
const refreshBuffer = 10 * time.Minute

func Auth(secret []byte, expire time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			log.L.Debug("token rejected", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		if jwt.ShouldRotate(claims, refreshBuffer) {
			newToken, err := jwt.GenerateToken(secret, claims.Subject, jwt.TypeAccess, expire)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}
		c.Set(context.CtxSubject, claims.Subject)

		c.Next()
	}
}
