package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"role-explorer/internal/customroles/models"

	"github.com/robfig/cron/v3"
)

// Snapshotter copies the custom role payload to a backup key on a cron schedule
type Snapshotter struct {
	store KVStore
	cron  *cron.Cron

	mu      sync.Mutex
	running bool
}

// NewSnapshotter creates a snapshotter over store
func NewSnapshotter(store KVStore) *Snapshotter {
	return &Snapshotter{
		store: store,
		cron:  cron.New(),
	}
}

// Start schedules snapshots; schedule uses standard cron syntax or descriptors such as "@every 1h"
func (s *Snapshotter) Start(ctx context.Context, schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("snapshotter is already running")
	}

	if _, err := s.cron.AddFunc(schedule, func() {
		if err := s.Snapshot(ctx); err != nil {
			slog.Error("Custom role snapshot failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.running = true
	slog.Info("Custom role snapshots scheduled", "schedule", schedule, "backend", s.store.Backend())
	return nil
}

// Stop waits for a running snapshot to finish
func (s *Snapshotter) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
}

// Snapshot copies the current payload to the backup key. A missing payload is a no-op.
func (s *Snapshotter) Snapshot(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, models.StorageKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := s.store.Put(ctx, models.BackupKey, raw); err != nil {
		return err
	}
	slog.Debug("Custom role snapshot written", "bytes", len(raw))
	return nil
}

// Restore copies the backup over the current payload. It reports false when no
// backup exists. Callers reload the repository afterwards.
func (s *Snapshotter) Restore(ctx context.Context) (bool, error) {
	raw, ok, err := s.store.Get(ctx, models.BackupKey)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := s.store.Put(ctx, models.StorageKey, raw); err != nil {
		return false, err
	}
	slog.Info("Custom role payload restored from snapshot", "bytes", len(raw))
	return true, nil
}
