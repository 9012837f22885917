package explorer

import (
	"role-explorer/internal/explorer/routes"
	"role-explorer/internal/explorer/services"
	"role-explorer/pkg/module"

	"github.com/danielgtaylor/huma/v2"
)

// Module serves the read-only catalog, insight and sandbox operations
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates the explorer module
func NewModule(service *services.Service) *Module {
	return &Module{
		BaseModule: module.NewBaseModule("explorer"),
		service:    service,
		routes:     routes.NewModule(service),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	m.routes.RegisterUnifiedRoutes(api)
}

// Service returns the explorer service
func (m *Module) Service() *services.Service {
	return m.service
}

var _ module.Module = (*Module)(nil)
