package permissions

// ResolveForRole returns the permissions a built-in role holds, in catalog order.
// Unknown roles resolve to an empty result.
func (c *Catalog) ResolveForRole(roleID string) []ResolvedPermission {
	out := []ResolvedPermission{}
	for _, p := range c.permissions {
		level, ok := p.RoleAccess[roleID]
		if !ok {
			continue
		}
		out = append(out, effective(p, level))
	}
	return out
}

// ResolveRole resolves any role. Roles carrying PermissionAccess are read from that
// map; api names missing from the catalog are dropped. Other roles fall back to the
// catalog's RoleAccess entries for the role id.
func (c *Catalog) ResolveRole(role Role) []ResolvedPermission {
	if !role.IsCustom() {
		return c.ResolveForRole(role.ID)
	}

	out := []ResolvedPermission{}
	for _, p := range c.permissions {
		level, ok := role.PermissionAccess[p.APIName]
		if !ok {
			continue
		}
		out = append(out, effective(p, level))
	}
	return out
}

// ResolveByAPINames looks up an ad-hoc permission set in catalog order.
// Duplicates collapse and unknown names are dropped.
func (c *Catalog) ResolveByAPINames(names []APIName) []Permission {
	wanted := make(map[APIName]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	out := []Permission{}
	for _, p := range c.permissions {
		if wanted[p.APIName] {
			out = append(out, p.clone())
		}
	}
	return out
}

// UnknownAPINames returns the names that are not in the catalog, preserving input order
func (c *Catalog) UnknownAPINames(names []APIName) []APIName {
	var unknown []APIName
	for _, n := range names {
		if _, ok := c.byName[n]; !ok {
			unknown = append(unknown, n)
		}
	}
	return unknown
}

// PermissionsOf strips the access levels from a resolved set
func PermissionsOf(resolved []ResolvedPermission) []Permission {
	out := make([]Permission, len(resolved))
	for i, r := range resolved {
		out[i] = r.Permission
	}
	return out
}

// effective builds the role's view of p. A read grant on a write-capable
// permission is reported as read-only.
func effective(p Permission, level AccessLevel) ResolvedPermission {
	view := p.clone()
	if level == AccessRead && (view.Actions.CanWrite() || view.IsWriteBearing()) {
		view.OperationType = OperationReadOnly
		view.Actions = AccessRead
	}
	return ResolvedPermission{Permission: view, Access: level}
}
