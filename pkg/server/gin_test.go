package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/config"
	"Storefront/handler"
)

func newEngine(t *testing.T) http.Handler {
	t.Helper()
	conf, err := config.Parse([]byte("jwt:\n  secret: x\n"))
	require.NoError(t, err)
	return NewGinEngine(conf, &Handlers{
		Admin:        &handler.Admin{Config: conf},
		Catalog:      &handler.Catalog{Config: conf},
		Order:        &handler.Order{Config: conf},
		Cart:         &handler.Cart{},
		Content:      &handler.Content{Config: conf},
		Notification: &handler.Notification{Config: conf},
		StoreConfig:  &handler.StoreConfig{Config: conf},
	})
}

func TestEngineRoutes(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodOptions, "/api/v1/products", http.StatusNoContent},
		{http.MethodPost, "/api/v1/products", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/admin/export", http.StatusUnauthorized},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)
		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}
