// Package sandbox simulates whether a role may perform an action on a
// permission. Policies are derived from resolved grants and live only in
// memory; nothing here guards a real resource.
package sandbox

import (
	"fmt"
	"log/slog"

	"role-explorer/pkg/permissions"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// Actions understood by the simulator
const (
	ActionRead  = "read"
	ActionWrite = "write"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Decision is the outcome of a simulated action
type Decision struct {
	Subject string              `json:"subject" yaml:"subject"`
	APIName permissions.APIName `json:"api_name" yaml:"api_name"`
	Action  string              `json:"action" yaml:"action"`
	Allowed bool                `json:"allowed" yaml:"allowed"`
	Reason  string              `json:"reason" yaml:"reason"`
	Roles   []string            `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// Simulator holds one casbin policy per role grant
type Simulator struct {
	catalog  *permissions.Catalog
	enforcer *casbin.SyncedEnforcer
}

// New creates a simulator loaded with every built-in role in the catalog
func New(catalog *permissions.Catalog) (*Simulator, error) {
	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sandbox policy model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create sandbox enforcer: %w", err)
	}

	s := &Simulator{catalog: catalog, enforcer: enforcer}
	for _, role := range catalog.Roles() {
		if err := s.LoadRole(role); err != nil {
			return nil, err
		}
	}

	slog.Debug("Sandbox simulator initialized", "roles", len(catalog.Roles()))
	return s, nil
}

// LoadRole replaces the policies held for role with its current grants
func (s *Simulator) LoadRole(role permissions.Role) error {
	if _, err := s.enforcer.RemoveFilteredPolicy(0, role.ID); err != nil {
		return fmt.Errorf("failed to clear policies for role %s: %w", role.ID, err)
	}

	var rules [][]string
	for _, rp := range s.catalog.ResolveRole(role) {
		for _, verb := range rp.Access.Verbs() {
			rules = append(rules, []string{role.ID, string(rp.Permission.APIName), verb})
		}
	}
	if len(rules) == 0 {
		return nil
	}

	if _, err := s.enforcer.AddPolicies(rules); err != nil {
		return fmt.Errorf("failed to add policies for role %s: %w", role.ID, err)
	}
	return nil
}

// RemoveRole drops every policy and assignment held for the role
func (s *Simulator) RemoveRole(roleID string) error {
	if _, err := s.enforcer.RemoveFilteredPolicy(0, roleID); err != nil {
		return fmt.Errorf("failed to remove policies for role %s: %w", roleID, err)
	}
	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(1, roleID); err != nil {
		return fmt.Errorf("failed to remove assignments for role %s: %w", roleID, err)
	}
	return nil
}

// Assign makes member hold the given roles for later checks
func (s *Simulator) Assign(member string, roleIDs ...string) error {
	for _, roleID := range roleIDs {
		if _, err := s.enforcer.AddGroupingPolicy(member, roleID); err != nil {
			return fmt.Errorf("failed to assign role %s to %s: %w", roleID, member, err)
		}
	}
	return nil
}

// RolesFor returns the roles assigned to member
func (s *Simulator) RolesFor(member string) ([]string, error) {
	roles, err := s.enforcer.GetRolesForUser(member)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles for %s: %w", member, err)
	}
	return roles, nil
}

// Check simulates the role roleID performing action on the named permission
func (s *Simulator) Check(roleID string, name permissions.APIName, action string) (Decision, error) {
	return s.decide(roleID, roleID, name, action)
}

// CheckMember simulates a member holding roleIDs performing action on the
// named permission. The assignment lives only for the duration of the call.
func (s *Simulator) CheckMember(member string, roleIDs []string, name permissions.APIName, action string) (Decision, error) {
	subject := "member:" + uuid.NewString()
	if err := s.Assign(subject, roleIDs...); err != nil {
		return Decision{}, err
	}
	defer func() {
		if _, err := s.enforcer.DeleteRolesForUser(subject); err != nil {
			slog.Warn("Failed to clear sandbox member", "member", member, "error", err)
		}
	}()

	d, err := s.decide(subject, member, name, action)
	if err != nil {
		return Decision{}, err
	}
	if d.Roles, err = s.RolesFor(subject); err != nil {
		return Decision{}, err
	}
	return d, nil
}

func (s *Simulator) decide(subject, label string, name permissions.APIName, action string) (Decision, error) {
	if action != ActionRead && action != ActionWrite {
		return Decision{}, oops.In("sandbox").
			Code(permissions.CodeInvalidArgument).
			With("action", action).
			Errorf("unknown action %q, expected read or write", action)
	}

	p, err := s.catalog.MustPermission(name)
	if err != nil {
		return Decision{}, err
	}

	allowed, err := s.enforcer.Enforce(subject, string(name), action)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to evaluate sandbox policy: %w", err)
	}

	d := Decision{Subject: label, APIName: name, Action: action, Allowed: allowed}
	switch {
	case allowed:
		d.Reason = fmt.Sprintf("%s grants %s on %s", label, action, name)
	case !p.Actions.Covers(permissions.AccessLevel(action)):
		d.Reason = fmt.Sprintf("%s does not support %s", name, action)
	case s.holdsAny(subject, name):
		d.Reason = fmt.Sprintf("%s holds %s on %s without %s", label, s.otherVerb(action), name, action)
	default:
		d.Reason = fmt.Sprintf("%s has no access to %s", label, name)
	}
	return d, nil
}

func (s *Simulator) holdsAny(subject string, name permissions.APIName) bool {
	for _, verb := range []string{ActionRead, ActionWrite} {
		if ok, err := s.enforcer.Enforce(subject, string(name), verb); err == nil && ok {
			return true
		}
	}
	return false
}

func (s *Simulator) otherVerb(action string) string {
	if action == ActionRead {
		return ActionWrite
	}
	return ActionRead
}
