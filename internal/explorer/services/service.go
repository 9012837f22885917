package services

import (
	"bytes"
	"context"

	customroles "role-explorer/internal/customroles/services"
	"role-explorer/pkg/grid"
	"role-explorer/pkg/insights"
	"role-explorer/pkg/metrics"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"
)

// PermissionQuery narrows and optionally groups the catalog listing
type PermissionQuery struct {
	Match    string
	Search   string
	Category string
	GroupBy  string
}

// Bucket is one labelled group of a grouped listing
type Bucket struct {
	Label       string                   `json:"label" yaml:"label"`
	Permissions []permissions.Permission `json:"permissions" yaml:"permissions"`
}

// Listing is the result of a permission query. Buckets is set only when grouping.
type Listing struct {
	Total       int                      `json:"total" yaml:"total"`
	GroupBy     string                   `json:"group_by,omitempty" yaml:"group_by,omitempty"`
	Permissions []permissions.Permission `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Buckets     []Bucket                 `json:"buckets,omitempty" yaml:"buckets,omitempty"`
}

// RoleInsight bundles the descriptive and risk views of one role
type RoleInsight struct {
	Role        permissions.Role                 `json:"role" yaml:"role"`
	Details     permissions.RoleDetails          `json:"details" yaml:"details"`
	Risk        insights.Assessment              `json:"risk" yaml:"risk"`
	Permissions []permissions.ResolvedPermission `json:"permissions" yaml:"permissions"`
}

// Service answers catalog, insight and sandbox questions for the HTTP and CLI surfaces
type Service struct {
	catalog   *permissions.Catalog
	roles     *customroles.Service
	simulator *sandbox.Simulator
	metrics   *metrics.Metrics
}

// NewService creates the explorer service. m may be nil.
func NewService(catalog *permissions.Catalog, roles *customroles.Service, simulator *sandbox.Simulator, m *metrics.Metrics) *Service {
	return &Service{
		catalog:   catalog,
		roles:     roles,
		simulator: simulator,
		metrics:   m,
	}
}

// Catalog returns the permission catalog
func (s *Service) Catalog() *permissions.Catalog {
	return s.catalog
}

// Permissions filters the catalog by glob, text and category, then groups when asked
func (s *Service) Permissions(q PermissionQuery) (Listing, error) {
	perms, err := permissions.Match(s.catalog.Permissions(), q.Match)
	if err != nil {
		return Listing{}, err
	}
	perms = permissions.Search(perms, q.Search)
	perms = permissions.InCategory(perms, q.Category)

	if q.GroupBy == "" {
		return Listing{Total: len(perms), Permissions: perms}, nil
	}

	dim, err := permissions.ParseDimension(q.GroupBy)
	if err != nil {
		return Listing{}, err
	}
	groups, err := permissions.Group(perms, dim)
	if err != nil {
		return Listing{}, err
	}
	listing := Listing{Total: len(perms), GroupBy: dim.String(), Buckets: []Bucket{}}
	for _, label := range groups.Labels() {
		listing.Buckets = append(listing.Buckets, Bucket{Label: label, Permissions: groups[label]})
	}
	return listing, nil
}

// Permission returns one permission by api name
func (s *Service) Permission(name permissions.APIName) (permissions.Permission, error) {
	return s.catalog.MustPermission(name)
}

// RoleGroups returns the built-in roles grouped by category
func (s *Service) RoleGroups() []permissions.RoleGroup {
	return s.catalog.RolesByCategory()
}

// Resolve returns the effective permissions of a built-in or custom role
func (s *Service) Resolve(ctx context.Context, roleID string) ([]permissions.ResolvedPermission, error) {
	return s.roles.Resolve(ctx, roleID)
}

// Audit returns catalog integrity findings
func (s *Service) Audit() []permissions.Finding {
	return s.catalog.Audit()
}

// Details derives descriptive text for an ad-hoc set. Unknown names are
// dropped and returned separately.
func (s *Service) Details(names []permissions.APIName) (permissions.RoleDetails, []permissions.APIName) {
	perms := s.catalog.ResolveByAPINames(names)
	return insights.Generate(perms), s.catalog.UnknownAPINames(names)
}

// Assess scores an ad-hoc set. Unknown names are dropped and returned separately.
func (s *Service) Assess(names []permissions.APIName) (insights.Assessment, []permissions.APIName) {
	assessment := insights.Assess(s.catalog.ResolveByAPINames(names))
	s.metrics.ObserveAssessment(string(assessment.OverallRisk))
	return assessment, s.catalog.UnknownAPINames(names)
}

// RoleInsight describes and scores a built-in or custom role through its effective grants
func (s *Service) RoleInsight(ctx context.Context, roleID string) (RoleInsight, error) {
	role, details, err := s.roles.Details(ctx, roleID)
	if err != nil {
		return RoleInsight{}, err
	}
	resolved := s.catalog.ResolveRole(role)
	assessment := insights.Assess(permissions.PermissionsOf(resolved))
	s.metrics.ObserveAssessment(string(assessment.OverallRisk))

	return RoleInsight{
		Role:        role,
		Details:     details,
		Risk:        assessment,
		Permissions: resolved,
	}, nil
}

// Check simulates roleID performing action on the named permission
func (s *Service) Check(ctx context.Context, roleID string, name permissions.APIName, action string) (sandbox.Decision, error) {
	if _, err := s.roles.Lookup(ctx, roleID); err != nil {
		return sandbox.Decision{}, err
	}
	decision, err := s.simulator.Check(roleID, name, action)
	if err != nil {
		return sandbox.Decision{}, err
	}
	s.metrics.ObserveSandboxCheck(decision.Allowed)
	return decision, nil
}

// Member is a named holder of one or more roles in a sandbox check
type Member struct {
	Name  string
	Roles []string
}

// CheckMembers simulates each member performing action on the named
// permission with the union of the roles it holds. A role id that does not
// resolve is a bad request, not a missing resource.
func (s *Service) CheckMembers(ctx context.Context, members []Member, name permissions.APIName, action string) ([]sandbox.Decision, error) {
	decisions := make([]sandbox.Decision, 0, len(members))
	for _, member := range members {
		for _, roleID := range member.Roles {
			if _, err := s.roles.Lookup(ctx, roleID); err != nil {
				if permissions.IsNotFound(err) {
					return nil, permissions.InvalidArgument("sandbox", "member %s holds unknown role %q", member.Name, roleID)
				}
				return nil, err
			}
		}
		decision, err := s.simulator.CheckMember(member.Name, member.Roles, name, action)
		if err != nil {
			return nil, err
		}
		s.metrics.ObserveSandboxCheck(decision.Allowed)
		decisions = append(decisions, decision)
	}
	return decisions, nil
}

// Grid renders the role-by-permission grid as CSV
func (s *Service) Grid() ([]byte, error) {
	var buf bytes.Buffer
	if err := grid.Export(&buf, s.catalog); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
