package dto

import (
	"time"

	"role-explorer/pkg/permissions"
)

// CustomRole represents a custom role in API responses
type CustomRole struct {
	ID          string                  `json:"id" description:"Custom role id"`
	Name        string                  `json:"name" description:"Role name"`
	BaseRoleID  string                  `json:"base_role_id,omitempty" description:"Role the custom role was derived from"`
	Grants      map[string]string       `json:"grants" description:"Permission api name to access level"`
	Details     permissions.RoleDetails `json:"details" description:"Description, capabilities and intended audience"`
	Permissions int                     `json:"permissions" description:"Number of granted permissions"`
	CreatedAt   *time.Time              `json:"created_at,omitempty"`
	UpdatedAt   *time.Time              `json:"updated_at,omitempty"`
}

// CustomRoleOutput wraps a single custom role
type CustomRoleOutput struct {
	Body CustomRole
}

// CustomRoleListOutput wraps the list of custom roles
type CustomRoleListOutput struct {
	Body struct {
		Roles []CustomRole `json:"roles"`
		Total int          `json:"total"`
	}
}

// DeleteCustomRoleOutput confirms a deletion
type DeleteCustomRoleOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

// FromRole converts a stored role and its details to the response shape
func FromRole(role permissions.Role, details permissions.RoleDetails) CustomRole {
	grants := make(map[string]string, len(role.PermissionAccess))
	for name, level := range role.PermissionAccess {
		grants[string(name)] = string(level)
	}
	return CustomRole{
		ID:          role.ID,
		Name:        role.Name,
		BaseRoleID:  role.BaseRoleID,
		Grants:      grants,
		Details:     details,
		Permissions: len(grants),
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}
