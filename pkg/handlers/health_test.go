package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthWithoutDependencies(t *testing.T) {
	body := Health(context.Background(), "role-explorer", 55, nil)
	assert.Equal(t, StatusHealthy, body.Status)
	assert.Equal(t, 55, body.Permissions)
	assert.Nil(t, body.Dependencies)
}

func TestHealthReportsFailingDependency(t *testing.T) {
	checks := map[string]HealthCheck{
		"redis":   func(context.Context) error { return errors.New("connection refused") },
		"mongodb": func(context.Context) error { return nil },
	}
	body := Health(context.Background(), "role-explorer", 55, checks)
	assert.Equal(t, StatusUnhealthy, body.Status)
	assert.Equal(t, map[string]string{"redis": StatusUnhealthy, "mongodb": StatusHealthy}, body.Dependencies)
}

func TestHealthRoute(t *testing.T) {
	_, api := humatest.New(t)
	RegisterHealthRoute(api, "role-explorer", 55, nil)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"healthy"`)
	assert.Contains(t, resp.Body.String(), `"permissions":55`)
}
