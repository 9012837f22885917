package dto

// CreateCustomRoleInput represents the input for creating a custom role
type CreateCustomRoleInput struct {
	Body struct {
		Name        string            `json:"name" minLength:"1" maxLength:"80" required:"true" description:"Role name"`
		Description string            `json:"description,omitempty" maxLength:"500" description:"Custom description shown instead of the generated one"`
		BaseRoleID  string            `json:"base_role_id,omitempty" description:"Built-in or custom role to start from"`
		Grants      map[string]string `json:"grants,omitempty" description:"Permission api name to access level (read, write, or 'read, write'), applied on top of the base role"`
		Revoke      []string          `json:"revoke,omitempty" description:"Permission api names to drop from the base role"`
		Toggle      []string          `json:"toggle,omitempty" description:"Permission api names to flip after grants: granted at full access when absent, removed when present"`
	}
}

// UpdateCustomRoleInput represents the input for updating a custom role
type UpdateCustomRoleInput struct {
	RoleID string `path:"role_id" required:"true" description:"Custom role id"`
	Body   struct {
		Name        *string           `json:"name,omitempty" minLength:"1" maxLength:"80" description:"New role name"`
		Description *string           `json:"description,omitempty" maxLength:"500" description:"New custom description; empty restores the generated one"`
		Grants      map[string]string `json:"grants,omitempty" description:"Replaces the full grant set when present"`
		Toggle      []string          `json:"toggle,omitempty" description:"Permission api names to flip after grants are resolved"`
	}
}

// CustomRoleIDInput identifies one custom role
type CustomRoleIDInput struct {
	RoleID string `path:"role_id" required:"true" description:"Custom role id"`
}
