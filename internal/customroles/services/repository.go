package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"role-explorer/internal/customroles/models"
	"role-explorer/pkg/permissions"

	"github.com/samber/oops"
)

// Repository stores custom roles
type Repository interface {
	List(ctx context.Context) ([]permissions.Role, error)
	Get(ctx context.Context, id string) (permissions.Role, error)
	Create(ctx context.Context, role permissions.Role) error
	Update(ctx context.Context, role permissions.Role) error
	Delete(ctx context.Context, id string) error
}

// LoadedRepository is a Repository whose contents are loaded once from a backend
type LoadedRepository interface {
	Repository
	Load(ctx context.Context) error
	Count() int
	Backend() string
}

// KVRepository keeps the custom roles in memory and rewrites the whole list
// under a single key on every mutation
type KVRepository struct {
	store KVStore
	key   string

	mu    sync.RWMutex
	roles []permissions.Role
}

// NewKVRepository creates a repository over store. Call Load before use.
func NewKVRepository(store KVStore) *KVRepository {
	return &KVRepository{store: store, key: models.StorageKey}
}

// Load reads the stored list. A missing key yields no roles; an unreadable payload
// is logged and treated as empty. Only store errors are returned.
func (r *KVRepository) Load(ctx context.Context) error {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return fmt.Errorf("failed to load custom roles: %w", err)
	}

	roles := []permissions.Role{}
	if ok {
		roles = decodeRoles(raw, r.store.Backend())
	}

	r.mu.Lock()
	r.roles = roles
	r.mu.Unlock()

	slog.Info("Custom roles loaded", "count", len(roles), "backend", r.store.Backend())
	return nil
}

func decodeRoles(raw []byte, backend string) []permissions.Role {
	var roles []permissions.Role
	if err := json.Unmarshal(raw, &roles); err != nil {
		slog.Warn("Discarding unreadable custom role payload", "backend", backend, "error", err)
		return []permissions.Role{}
	}

	valid := roles[:0]
	for _, role := range roles {
		if role.ID == "" {
			slog.Warn("Skipping stored custom role without id", "name", role.Name)
			continue
		}
		if role.PermissionAccess == nil {
			role.PermissionAccess = map[permissions.APIName]permissions.AccessLevel{}
		}
		valid = append(valid, role)
	}
	return valid
}

func (r *KVRepository) List(_ context.Context) ([]permissions.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]permissions.Role, len(r.roles))
	for i, role := range r.roles {
		out[i] = permissions.CloneRole(role)
	}
	return out, nil
}

func (r *KVRepository) Get(_ context.Context, id string) (permissions.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return permissions.CloneRole(r.roles[i]), nil
	}
	return permissions.Role{}, permissions.NotFound("customroles", "custom role %q not found", id)
}

func (r *KVRepository) Create(ctx context.Context, role permissions.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(role.ID) >= 0 {
		return oops.In("customroles").
			Code(permissions.CodeInvalidArgument).
			With("role_id", role.ID).
			Errorf("custom role %q already exists", role.ID)
	}

	next := append(r.snapshot(), permissions.CloneRole(role))
	return r.commit(ctx, next)
}

func (r *KVRepository) Update(ctx context.Context, role permissions.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(role.ID)
	if i < 0 {
		return permissions.NotFound("customroles", "custom role %q not found", role.ID)
	}

	next := r.snapshot()
	next[i] = permissions.CloneRole(role)
	return r.commit(ctx, next)
}

func (r *KVRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return permissions.NotFound("customroles", "custom role %q not found", id)
	}

	next := r.snapshot()
	next = append(next[:i], next[i+1:]...)
	return r.commit(ctx, next)
}

// Count returns the number of loaded custom roles
func (r *KVRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.roles)
}

// Backend names the underlying store
func (r *KVRepository) Backend() string {
	return r.store.Backend()
}

// commit persists next and swaps it in. On a store error the in-memory list is untouched.
// Callers hold the write lock.
func (r *KVRepository) commit(ctx context.Context, next []permissions.Role) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode custom roles: %w", err)
	}
	if err := r.store.Put(ctx, r.key, raw); err != nil {
		return fmt.Errorf("failed to save custom roles: %w", err)
	}
	r.roles = next
	return nil
}

func (r *KVRepository) snapshot() []permissions.Role {
	out := make([]permissions.Role, len(r.roles))
	copy(out, r.roles)
	return out
}

func (r *KVRepository) indexOf(id string) int {
	for i, role := range r.roles {
		if role.ID == id {
			return i
		}
	}
	return -1
}

var _ Repository = (*KVRepository)(nil)
