package dto

import (
	"role-explorer/internal/explorer/services"
	"role-explorer/pkg/insights"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"
)

// ListPermissionsInput filters the catalog listing
type ListPermissionsInput struct {
	GroupBy  string `query:"group_by" description:"Grouping dimension: productCategory, taskCategory, operationType, riskLevel, sensitivity or alphabetical"`
	Match    string `query:"match" description:"Glob over api names, e.g. payout_*"`
	Search   string `query:"q" description:"Case-insensitive text search over names and descriptions"`
	Category string `query:"category" description:"Product category"`
}

// ListPermissionsOutput wraps a permission listing
type ListPermissionsOutput struct {
	Body services.Listing
}

// PermissionInput identifies one permission
type PermissionInput struct {
	APIName string `path:"api_name" required:"true" description:"Permission api name"`
}

// PermissionOutput wraps one permission
type PermissionOutput struct {
	Body permissions.Permission
}

// RoleGroupsOutput lists built-in roles by category
type RoleGroupsOutput struct {
	Body struct {
		Categories []permissions.RoleGroup `json:"categories"`
	}
}

// RoleInput identifies a built-in or custom role
type RoleInput struct {
	RoleID string `path:"role_id" required:"true" description:"Built-in or custom role id"`
}

// ResolvedPermissionsOutput lists a role's effective permissions
type ResolvedPermissionsOutput struct {
	Body struct {
		RoleID      string                           `json:"role_id"`
		Total       int                              `json:"total"`
		Permissions []permissions.ResolvedPermission `json:"permissions"`
	}
}

// AuditOutput lists catalog integrity findings
type AuditOutput struct {
	Body struct {
		Total    int                   `json:"total"`
		Findings []permissions.Finding `json:"findings"`
	}
}

// GridOutput carries the CSV grid
type GridOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// PermissionSetInput is an ad-hoc selection of api names
type PermissionSetInput struct {
	Body struct {
		Permissions []string `json:"permissions" required:"true" description:"Permission api names; unknown names are ignored"`
	}
}

// DetailsOutput carries generated role details
type DetailsOutput struct {
	Body struct {
		Details permissions.RoleDetails `json:"details"`
		Ignored []permissions.APIName   `json:"ignored,omitempty" description:"Api names not found in the catalog"`
	}
}

// RiskOutput carries a risk assessment
type RiskOutput struct {
	Body struct {
		Assessment insights.Assessment   `json:"assessment"`
		Ignored    []permissions.APIName `json:"ignored,omitempty" description:"Api names not found in the catalog"`
	}
}

// RoleInsightOutput carries details and risk for one role
type RoleInsightOutput struct {
	Body services.RoleInsight
}

// SandboxCheckInput simulates one action
type SandboxCheckInput struct {
	Body struct {
		RoleID  string          `json:"role_id" required:"true" minLength:"1" description:"Built-in or custom role id"`
		APIName string          `json:"api_name" required:"true" minLength:"1" description:"Permission api name"`
		Action  string          `json:"action" required:"true" description:"read or write"`
		Members []SandboxMember `json:"members,omitempty" description:"Members to check as well, each holding the union of its roles"`
	}
}

// SandboxMember names a holder of several roles
type SandboxMember struct {
	Name  string   `json:"name" required:"true" minLength:"1" description:"Member name"`
	Roles []string `json:"roles" required:"true" description:"Built-in or custom role ids the member holds"`
}

// SandboxCheckOutput carries the simulated decision for the role and for
// each requested member
type SandboxCheckOutput struct {
	Body struct {
		sandbox.Decision
		Members []sandbox.Decision `json:"members,omitempty"`
	}
}

// APINames converts raw names from a request body
func APINames(raw []string) []permissions.APIName {
	names := make([]permissions.APIName, len(raw))
	for i, n := range raw {
		names[i] = permissions.APIName(n)
	}
	return names
}
