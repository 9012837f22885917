package customroles

import (
	"context"
	"fmt"
	"log/slog"

	"role-explorer/internal/customroles/routes"
	"role-explorer/internal/customroles/services"
	"role-explorer/pkg/app"
	"role-explorer/pkg/config"
	"role-explorer/pkg/metrics"
	"role-explorer/pkg/module"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the custom roles module
type Module struct {
	*module.BaseModule
	service     *services.Service
	snapshotter *services.Snapshotter
	routes      *routes.Module
	schedule    string
}

// StoreFor returns the key-value store backing the configured backend
func StoreFor(appCtx *app.AppContext) (services.KVStore, error) {
	switch appCtx.StoreBackend {
	case config.StoreRedis:
		if appCtx.Redis == nil {
			return nil, fmt.Errorf("redis store selected but no redis connection is available")
		}
		return services.NewRedisStore(appCtx.Redis), nil
	case config.StoreMongo:
		if appCtx.MongoDB == nil {
			return nil, fmt.Errorf("mongo store selected but no mongodb connection is available")
		}
		return services.NewMongoStore(appCtx.MongoDB.Database), nil
	default:
		return services.NewMemoryStore(), nil
	}
}

// NewModule creates the custom roles module over store
func NewModule(catalog *permissions.Catalog, store services.KVStore, simulator *sandbox.Simulator, m *metrics.Metrics) *Module {
	repo := services.NewKVRepository(store)
	service := services.NewService(catalog, repo, simulator, m)
	return &Module{
		BaseModule:  module.NewBaseModule("custom_roles"),
		service:     service,
		snapshotter: services.NewSnapshotter(store),
		routes:      routes.NewModule(service),
		schedule:    config.GetSnapshotSchedule(),
	}
}

// Initialize loads stored custom roles
func (m *Module) Initialize(ctx context.Context) error {
	if err := m.service.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize custom roles service: %w", err)
	}
	return nil
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	m.routes.RegisterUnifiedRoutes(api)
}

// StartBackgroundTasks runs the snapshot schedule until the module stops
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	if m.schedule == "" {
		slog.Info("Custom role snapshots disabled")
		m.BaseModule.StartBackgroundTasks(ctx)
		return
	}
	if err := m.snapshotter.Start(ctx, m.schedule); err != nil {
		slog.Error("Failed to start custom role snapshots", "error", err)
		return
	}
	m.BaseModule.StartBackgroundTasks(ctx)
	m.snapshotter.Stop()
}

// Service returns the custom role service for use by other modules
func (m *Module) Service() *services.Service {
	return m.service
}

// Snapshotter returns the snapshot job
func (m *Module) Snapshotter() *services.Snapshotter {
	return m.snapshotter
}

var _ module.Module = (*Module)(nil)
