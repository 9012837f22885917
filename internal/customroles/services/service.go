package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"role-explorer/pkg/insights"
	"role-explorer/pkg/logging"
	"role-explorer/pkg/metrics"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"
)

// CreateRequest describes a new custom role. Grants apply on top of the base
// role's grants, Toggle flips names in order, then Revoke removes names.
type CreateRequest struct {
	Name        string
	Description string
	BaseRoleID  string
	Grants      map[permissions.APIName]permissions.AccessLevel
	Toggle      []permissions.APIName
	Revoke      []permissions.APIName
}

// UpdateRequest changes an existing custom role. Nil fields are left alone;
// a non-nil Grants replaces the whole grant set. Toggle flips names after that.
type UpdateRequest struct {
	Name        *string
	Description *string
	Grants      map[permissions.APIName]permissions.AccessLevel
	Toggle      []permissions.APIName
}

// Service handles business logic for custom roles
type Service struct {
	catalog   *permissions.Catalog
	repo      LoadedRepository
	simulator *sandbox.Simulator
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewService creates a service. simulator and m may be nil.
func NewService(catalog *permissions.Catalog, repo LoadedRepository, simulator *sandbox.Simulator, m *metrics.Metrics) *Service {
	return &Service{
		catalog:   catalog,
		repo:      repo,
		simulator: simulator,
		metrics:   m,
		now:       time.Now,
	}
}

// Initialize loads the stored roles and registers them with the simulator
func (s *Service) Initialize(ctx context.Context) error {
	if err := s.repo.Load(ctx); err != nil {
		s.metrics.ObserveStoreError(s.repo.Backend(), "load")
		return err
	}
	roles, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list custom roles: %w", err)
	}
	for _, role := range roles {
		s.syncSimulator(role)
	}
	s.metrics.SetCustomRoles(len(roles))
	return nil
}

// Catalog returns the catalog the service resolves against
func (s *Service) Catalog() *permissions.Catalog {
	return s.catalog
}

// List returns every custom role in creation order
func (s *Service) List(ctx context.Context) ([]permissions.Role, error) {
	return s.repo.List(ctx)
}

// Get returns one custom role
func (s *Service) Get(ctx context.Context, id string) (permissions.Role, error) {
	return s.repo.Get(ctx, id)
}

// Create builds, validates and stores a new custom role
func (s *Service) Create(ctx context.Context, req CreateRequest) (permissions.Role, error) {
	b := NewBuilder(s.catalog)
	if req.BaseRoleID != "" {
		base, err := s.lookup(ctx, req.BaseRoleID)
		if err != nil {
			return permissions.Role{}, err
		}
		b.FromRole(base)
		if base.IsCustom() {
			// Copies of a custom role are new roles that remember the original's base
			b.id = ""
		}
	}
	if err := applyGrants(b, req.Grants); err != nil {
		return permissions.Role{}, err
	}
	if err := applyToggles(b, req.Toggle); err != nil {
		return permissions.Role{}, err
	}
	for _, name := range req.Revoke {
		b.Revoke(name)
	}

	role, err := b.Named(req.Name).Described(req.Description).Build()
	if err != nil {
		return permissions.Role{}, err
	}
	now := s.now().UTC()
	role.CreatedAt = &now
	role.UpdatedAt = &now

	if err := s.repo.Create(ctx, role); err != nil {
		s.storeFailed(ctx, "create", err)
		return permissions.Role{}, err
	}
	s.syncSimulator(role)
	s.metrics.ObserveCustomRoleMutation("create", s.repo.Count())
	slog.InfoContext(ctx, "Custom role created", "role_id", role.ID, "permissions", len(role.PermissionAccess))
	return role, nil
}

// Update edits an existing custom role
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (permissions.Role, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return permissions.Role{}, err
	}

	b := NewBuilder(s.catalog)
	if req.Grants != nil {
		b.id = existing.ID
		b.baseRoleID = existing.BaseRoleID
		b.Named(existing.Name).Described(existing.CustomDescription)
		if err := applyGrants(b, req.Grants); err != nil {
			return permissions.Role{}, err
		}
	} else {
		b.FromRole(existing)
	}
	if err := applyToggles(b, req.Toggle); err != nil {
		return permissions.Role{}, err
	}
	if req.Name != nil {
		b.Named(*req.Name)
	}
	if req.Description != nil {
		b.Described(*req.Description)
	}

	role, err := b.Build()
	if err != nil {
		return permissions.Role{}, err
	}
	now := s.now().UTC()
	role.CreatedAt = existing.CreatedAt
	role.UpdatedAt = &now

	if err := s.repo.Update(ctx, role); err != nil {
		s.storeFailed(ctx, "update", err)
		return permissions.Role{}, err
	}
	s.syncSimulator(role)
	s.metrics.ObserveCustomRoleMutation("update", s.repo.Count())
	slog.InfoContext(ctx, "Custom role updated", "role_id", role.ID, "permissions", len(role.PermissionAccess))
	return role, nil
}

// Delete removes a custom role
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.storeFailed(ctx, "delete", err)
		return err
	}
	if s.simulator != nil {
		if err := s.simulator.RemoveRole(id); err != nil {
			slog.WarnContext(ctx, "Failed to remove custom role from sandbox", "role_id", id, "error", err)
		}
	}
	s.metrics.ObserveCustomRoleMutation("delete", s.repo.Count())
	slog.InfoContext(ctx, "Custom role deleted", "role_id", id)
	return nil
}

// Resolve returns the effective permissions of a built-in or custom role.
// Unknown ids resolve to an empty list.
func (s *Service) Resolve(ctx context.Context, roleID string) ([]permissions.ResolvedPermission, error) {
	role, err := s.lookup(ctx, roleID)
	if permissions.IsNotFound(err) {
		return []permissions.ResolvedPermission{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.catalog.ResolveRole(role), nil
}

// Details returns the descriptive summary of a role. Built-in roles carry fixed
// details; custom roles get generated ones with their own description first.
func (s *Service) Details(ctx context.Context, roleID string) (permissions.Role, permissions.RoleDetails, error) {
	role, err := s.lookup(ctx, roleID)
	if err != nil {
		return permissions.Role{}, permissions.RoleDetails{}, err
	}
	return role, s.DetailsFor(role), nil
}

// DetailsFor summarises an already loaded role
func (s *Service) DetailsFor(role permissions.Role) permissions.RoleDetails {
	if !role.IsCustom() && role.Details != nil {
		return *permissions.CloneRole(role).Details
	}
	details := insights.Generate(permissions.PermissionsOf(s.catalog.ResolveRole(role)))
	if role.CustomDescription != "" {
		details.Description = role.CustomDescription
	}
	return details
}

// Restore replaces the stored roles with the latest snapshot and reloads them
func (s *Service) Restore(ctx context.Context, snapshots *Snapshotter) (bool, error) {
	previous, err := s.repo.List(ctx)
	if err != nil {
		logging.LogWarn(ctx, nil, "Failed to list custom roles before restore", err)
	}
	restored, err := snapshots.Restore(ctx)
	if err != nil || !restored {
		return false, err
	}
	if s.simulator != nil {
		for _, role := range previous {
			if err := s.simulator.RemoveRole(role.ID); err != nil {
				slog.WarnContext(ctx, "Failed to remove custom role from sandbox", "role_id", role.ID, "error", err)
			}
		}
	}
	if err := s.Initialize(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Lookup finds a built-in or custom role by id
func (s *Service) Lookup(ctx context.Context, roleID string) (permissions.Role, error) {
	return s.lookup(ctx, roleID)
}

func (s *Service) lookup(ctx context.Context, roleID string) (permissions.Role, error) {
	if role, ok := s.catalog.Role(roleID); ok {
		return role, nil
	}
	role, err := s.repo.Get(ctx, roleID)
	if err != nil {
		return permissions.Role{}, err
	}
	return role, nil
}

func (s *Service) syncSimulator(role permissions.Role) {
	if s.simulator == nil {
		return
	}
	if err := s.simulator.LoadRole(role); err != nil {
		slog.Warn("Failed to load custom role into sandbox", "role_id", role.ID, "error", err)
	}
}

func (s *Service) storeFailed(ctx context.Context, operation string, err error) {
	if permissions.IsNotFound(err) || permissions.IsInvalidArgument(err) {
		return
	}
	s.metrics.ObserveStoreError(s.repo.Backend(), operation)
	logging.LogError(ctx, nil, "Custom role store "+operation+" failed", err)
}

func applyGrants(b *Builder, grants map[permissions.APIName]permissions.AccessLevel) error {
	for name, level := range grants {
		if err := b.Grant(name, level); err != nil {
			return err
		}
	}
	return nil
}

func applyToggles(b *Builder, names []permissions.APIName) error {
	for _, name := range names {
		if err := b.Toggle(name); err != nil {
			return err
		}
	}
	return nil
}
