package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"role-explorer/pkg/version"

	"github.com/danielgtaylor/huma/v2"
)

// Health status values
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// HealthBody is the health check response structure
type HealthBody struct {
	Status       string            `json:"status" doc:"healthy when every dependency answered" example:"healthy"`
	Service      string            `json:"service" example:"role-explorer"`
	Version      string            `json:"version" example:"1.0.0"`
	Permissions  int               `json:"permissions" doc:"Number of permissions in the catalog"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	Timestamp    string            `json:"timestamp"`
}

// HealthOutput wraps the health body for huma
type HealthOutput struct {
	Body HealthBody
}

// Health runs the checks and builds the response. A failing dependency marks the
// service unhealthy but never aborts the remaining checks.
func Health(ctx context.Context, service string, catalogSize int, checks map[string]HealthCheck) HealthBody {
	body := HealthBody{
		Status:      StatusHealthy,
		Service:     service,
		Version:     version.Short(),
		Permissions: catalogSize,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	if len(checks) > 0 {
		body.Dependencies = make(map[string]string, len(checks))
	}
	for name, check := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := check(checkCtx)
		cancel()
		if err != nil {
			slog.Warn("Health check failed", "dependency", name, "error", err)
			body.Dependencies[name] = StatusUnhealthy
			body.Status = StatusUnhealthy
			continue
		}
		body.Dependencies[name] = StatusHealthy
	}
	return body
}

// RegisterHealthRoute registers GET /health on the API
func RegisterHealthRoute(api huma.API, service string, catalogSize int, checks map[string]HealthCheck) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports service version, catalog size and dependency status",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: Health(ctx, service, catalogSize, checks)}, nil
	})
}
