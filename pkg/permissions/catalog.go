package permissions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/oops"
)

// Catalog is the immutable, ordered collection of permissions and built-in roles.
// Every accessor hands out copies so callers cannot mutate the shared records.
type Catalog struct {
	permissions []Permission
	byName      map[APIName]int
	roles       []Role
	roleIndex   map[string]int
	categories  []string
}

// RoleGroup is a role category with its built-in roles in declared order
type RoleGroup struct {
	Category RoleCategory `json:"category" yaml:"category"`
	Roles    []Role       `json:"roles" yaml:"roles"`
}

// Finding is one data-quality issue reported by Audit
type Finding struct {
	Code    string  `json:"code" yaml:"code"`
	APIName APIName `json:"api_name,omitempty" yaml:"api_name,omitempty"`
	RoleID  string  `json:"role_id,omitempty" yaml:"role_id,omitempty"`
	Message string  `json:"message" yaml:"message"`
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the built-in catalog
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = New(staticPermissions, staticRoles)
	})
	return defaultCatalog
}

// New builds a catalog from the given records. The records are copied.
func New(perms []Permission, roles []Role) *Catalog {
	c := &Catalog{
		permissions: make([]Permission, 0, len(perms)),
		byName:      make(map[APIName]int, len(perms)),
		roles:       make([]Role, 0, len(roles)),
		roleIndex:   make(map[string]int, len(roles)),
	}

	seenCategory := make(map[string]bool)
	for _, p := range perms {
		if _, dup := c.byName[p.APIName]; dup {
			continue
		}
		c.byName[p.APIName] = len(c.permissions)
		c.permissions = append(c.permissions, p.clone())
		if !seenCategory[p.ProductCategory] {
			seenCategory[p.ProductCategory] = true
			c.categories = append(c.categories, p.ProductCategory)
		}
	}

	for _, r := range roles {
		if _, dup := c.roleIndex[r.ID]; dup {
			continue
		}
		c.roleIndex[r.ID] = len(c.roles)
		c.roles = append(c.roles, cloneRole(r))
	}

	return c
}

// Permissions returns every permission in catalog order
func (c *Catalog) Permissions() []Permission {
	out := make([]Permission, len(c.permissions))
	for i, p := range c.permissions {
		out[i] = p.clone()
	}
	return out
}

// Permission looks up a permission by api name
func (c *Catalog) Permission(name APIName) (Permission, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Permission{}, false
	}
	return c.permissions[i].clone(), true
}

// MustPermission looks up a permission and fails with NOT_FOUND when it is absent
func (c *Catalog) MustPermission(name APIName) (Permission, error) {
	p, ok := c.Permission(name)
	if !ok {
		return Permission{}, oops.In("permissions").
			Code(CodeNotFound).
			With("api_name", name).
			Errorf("permission %q not found", name)
	}
	return p, nil
}

// Len returns the number of permissions in the catalog
func (c *Catalog) Len() int {
	return len(c.permissions)
}

// ProductCategories returns the product categories in order of first appearance
func (c *Catalog) ProductCategories() []string {
	return append([]string(nil), c.categories...)
}

// Roles returns the built-in roles in declared order
func (c *Catalog) Roles() []Role {
	out := make([]Role, len(c.roles))
	for i, r := range c.roles {
		out[i] = cloneRole(r)
	}
	return out
}

// Role looks up a built-in role by id
func (c *Catalog) Role(id string) (Role, bool) {
	i, ok := c.roleIndex[id]
	if !ok {
		return Role{}, false
	}
	return cloneRole(c.roles[i]), true
}

// IsBuiltinRole reports whether id names a built-in role
func (c *Catalog) IsBuiltinRole(id string) bool {
	_, ok := c.roleIndex[id]
	return ok
}

// RolesByCategory groups the built-in roles by category in category order.
// Categories without roles are omitted.
func (c *Catalog) RolesByCategory() []RoleGroup {
	var groups []RoleGroup
	for _, category := range RoleCategories {
		group := RoleGroup{Category: category}
		for _, r := range c.roles {
			if r.Category == category.Name {
				group.Roles = append(group.Roles, cloneRole(r))
			}
		}
		if len(group.Roles) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// CheckGrant verifies that level is a valid grant on the named permission
func (c *Catalog) CheckGrant(name APIName, level AccessLevel) error {
	p, err := c.MustPermission(name)
	if err != nil {
		return err
	}
	if !p.Actions.Covers(level) {
		return oops.In("permissions").
			Code(CodeInvalidArgument).
			With("api_name", name).
			With("access_level", level).
			Errorf("access %q exceeds %q actions (%s)", level, name, p.Actions)
	}
	return nil
}

// Audit reports data-quality findings without modifying the catalog
func (c *Catalog) Audit() []Finding {
	var findings []Finding

	for _, p := range c.permissions {
		if expected := operationTypeFor(p.Actions); expected != p.OperationType {
			findings = append(findings, Finding{
				Code:    CodeDataIntegrity,
				APIName: p.APIName,
				Message: fmt.Sprintf("operation type %q does not match actions %q", p.OperationType, p.Actions),
			})
		}
		for _, roleID := range sortedRoleIDs(p.RoleAccess) {
			level := p.RoleAccess[roleID]
			if !p.Actions.Covers(level) {
				findings = append(findings, Finding{
					Code:    CodeDataIntegrity,
					APIName: p.APIName,
					RoleID:  roleID,
					Message: fmt.Sprintf("role access %q exceeds permission actions %q", level, p.Actions),
				})
			}
			if !c.IsBuiltinRole(roleID) {
				findings = append(findings, Finding{
					Code:    CodeDataIntegrity,
					APIName: p.APIName,
					RoleID:  roleID,
					Message: "role access references an unknown role",
				})
			}
		}
	}

	for _, r := range c.roles {
		if len(c.ResolveForRole(r.ID)) == 0 {
			findings = append(findings, Finding{
				Code:    CodeDataIntegrity,
				RoleID:  r.ID,
				Message: "built-in role has no permission grants",
			})
		}
	}

	return findings
}

func operationTypeFor(actions AccessLevel) string {
	switch actions {
	case AccessRead:
		return OperationReadOnly
	case AccessWrite:
		return OperationWrite
	case AccessReadWrite:
		return OperationReadWrite
	}
	return ""
}

func cloneRole(r Role) Role {
	c := r
	if r.Details != nil {
		d := *r.Details
		d.CanDo = cloneStrings(r.Details.CanDo)
		d.CannotDo = cloneStrings(r.Details.CannotDo)
		c.Details = &d
	}
	if r.PermissionAccess != nil {
		c.PermissionAccess = make(map[APIName]AccessLevel, len(r.PermissionAccess))
		for k, v := range r.PermissionAccess {
			c.PermissionAccess[k] = v
		}
	}
	return c
}

// CloneRole returns a deep copy of r
func CloneRole(r Role) Role {
	return cloneRole(r)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func sortedRoleIDs(access map[string]AccessLevel) []string {
	ids := make([]string, 0, len(access))
	for id := range access {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
