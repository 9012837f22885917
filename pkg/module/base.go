package module

import (
	"context"
	"log/slog"
	"sync"

	"github.com/danielgtaylor/huma/v2"
)

// Module defines the interface that all application modules must implement
type Module interface {
	// RegisterUnifiedRoutes adds the module's operations to the shared API
	RegisterUnifiedRoutes(api huma.API)

	// StartBackgroundTasks starts any background processing for this module
	StartBackgroundTasks(ctx context.Context)

	// Stop gracefully stops the module and its background tasks
	Stop()

	// Name returns the module name for logging and identification
	Name() string
}

// BaseModule provides the stop signalling shared by all modules
type BaseModule struct {
	name     string
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewBaseModule creates a new base module
func NewBaseModule(name string) *BaseModule {
	return &BaseModule{
		name:   name,
		stopCh: make(chan struct{}),
	}
}

// Name returns the module name
func (b *BaseModule) Name() string {
	return b.name
}

// StopChannel returns the channel closed by Stop
func (b *BaseModule) StopChannel() <-chan struct{} {
	return b.stopCh
}

// Stop gracefully stops the module; repeated calls are no-ops
func (b *BaseModule) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		slog.Info("Module stopped", "module", b.name)
	})
}

// StartBackgroundTasks blocks until the context is cancelled or the module stops.
// Modules without background work use it as is.
func (b *BaseModule) StartBackgroundTasks(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-b.stopCh:
	}
}
