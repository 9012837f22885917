package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"role-explorer/internal/customroles"
	customroleServices "role-explorer/internal/customroles/services"
	"role-explorer/internal/explorer"
	explorerServices "role-explorer/internal/explorer/services"
	"role-explorer/pkg/metrics"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, prefix string) http.Handler {
	t.Helper()
	catalog := permissions.Default()
	simulator, err := sandbox.New(catalog)
	require.NoError(t, err)
	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	roles := customroles.NewModule(catalog, customroleServices.NewMemoryStore(), simulator, m)
	require.NoError(t, roles.Initialize(context.Background()))
	exp := explorer.NewModule(explorerServices.NewService(catalog, roles.Service(), simulator, m))

	handler, _ := New(Options{
		ServiceName:    "role-explorer",
		APIPrefix:      prefix,
		AllowedOrigins: []string{"*"},
		Catalog:        catalog,
		Metrics:        m,
		Registry:       reg,
	}, exp, roles)
	return handler
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouterServesModules(t *testing.T) {
	h := newHandler(t, "")

	rec := get(h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = get(h, "/catalog/roles/refund_analyst/permissions")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(h, "/custom-roles")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(h, "/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog-list-permissions")

	rec = get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "role_explorer_http_request_duration_seconds")
}

func TestRouterWithPrefix(t *testing.T) {
	h := newHandler(t, "/api")

	assert.Equal(t, http.StatusOK, get(h, "/api/health").Code)
	assert.Equal(t, http.StatusOK, get(h, "/api/catalog/audit").Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/catalog/audit").Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newHandler(t, "")

	req := httptest.NewRequest(http.MethodOptions, "/catalog/permissions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
