package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"role-explorer/pkg/config"
	"role-explorer/pkg/database"
	"role-explorer/pkg/logging"

	"github.com/joho/godotenv"
)

// AppContext holds the shared application context and dependencies
type AppContext struct {
	MongoDB          *database.MongoDB
	Redis            *database.Redis
	TelemetryManager *logging.TelemetryManager
	ServiceName      string
	StoreBackend     string
	shutdownFuncs    []func(context.Context) error
}

// InitializeApp loads .env, starts telemetry and connects the backend selected by
// CUSTOM_ROLE_STORE. Only the selected backend is dialed.
func InitializeApp(ctx context.Context, serviceName string) (*AppContext, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	telemetryManager := logging.NewTelemetryManager()
	if err := telemetryManager.Initialize(ctx); err != nil {
		log.Printf("Warning: Failed to initialize telemetry: %v", err)
	}

	appCtx := &AppContext{
		TelemetryManager: telemetryManager,
		ServiceName:      serviceName,
		StoreBackend:     config.GetCustomRoleStore(),
	}

	switch appCtx.StoreBackend {
	case config.StoreMongo:
		mongodb, err := database.NewMongoDB(ctx)
		if err != nil {
			telemetryManager.Shutdown(ctx)
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		appCtx.MongoDB = mongodb
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, mongodb.Close)
	case config.StoreRedis:
		redis, err := database.NewRedis(ctx)
		if err != nil {
			telemetryManager.Shutdown(ctx)
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		slog.Info("Connected to Redis")
		appCtx.Redis = redis
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, func(context.Context) error {
			return redis.Close()
		})
	default:
		slog.Info("Using in-memory custom role store; custom roles are lost on restart")
	}

	// Telemetry flushes last so shutdown logs still reach the exporter
	appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, telemetryManager.Shutdown)
	return appCtx, nil
}

// Shutdown gracefully shuts down all application dependencies
func (a *AppContext) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application", "service", a.ServiceName)

	for _, shutdown := range a.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}
	a.shutdownFuncs = nil
	return nil
}

// HealthChecks returns a named health check for every connected dependency
func (a *AppContext) HealthChecks() map[string]func(context.Context) error {
	checks := map[string]func(context.Context) error{}
	if a.MongoDB != nil {
		checks["mongodb"] = a.MongoDB.HealthCheck
	}
	if a.Redis != nil {
		checks["redis"] = a.Redis.HealthCheck
	}
	return checks
}
