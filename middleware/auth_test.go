package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/pkg/context"
	"Storefront/pkg/jwt"
)

func newRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap(), PrometheusMiddleware())
	r.GET("/private", Auth(secret, time.Hour), func(c *gin.Context) {
		sub, _ := context.GetSubject(c)
		c.String(http.StatusOK, sub)
	})
	return r
}

func TestAuth(t *testing.T) {
	secret := []byte("s3cret")
	r := newRouter(secret)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"malformed", "Token abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	tok, err := jwt.GenerateToken(secret, jwt.SubjectAdmin, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, jwt.SubjectAdmin, w.Body.String())
	assert.Empty(t, w.Header().Get("X-New-Access-Token"))
}

func TestAuthRotatesExpiringToken(t *testing.T) {
	secret := []byte("s3cret")
	r := newRouter(secret)

	tok, err := jwt.GenerateToken(secret, jwt.SubjectAdmin, jwt.TypeAccess, time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	fresh := w.Header().Get("X-New-Access-Token")
	require.NotEmpty(t, fresh)
	claims, err := jwt.ParseToken(secret, jwt.TypeAccess, fresh)
	require.NoError(t, err)
	assert.False(t, jwt.ShouldRotate(claims, refreshBuffer))
}
