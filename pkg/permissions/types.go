package permissions

import (
	"strings"
	"time"

	"github.com/samber/oops"
)

// APIName is the stable identifier of a permission in the catalog
type APIName string

// AccessLevel is the level of access a role holds on a permission
type AccessLevel string

const (
	AccessRead      AccessLevel = "read"
	AccessWrite     AccessLevel = "write"
	AccessReadWrite AccessLevel = "read, write"
)

// ParseAccessLevel converts a raw string into an AccessLevel, rejecting unknown values
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch AccessLevel(strings.TrimSpace(s)) {
	case AccessRead:
		return AccessRead, nil
	case AccessWrite:
		return AccessWrite, nil
	case AccessReadWrite, "read,write", "write, read":
		return AccessReadWrite, nil
	}
	return "", oops.In("permissions").
		Code(CodeInvalidArgument).
		With("access_level", s).
		Errorf("unknown access level %q", s)
}

// UnmarshalText validates access levels decoded from JSON or other text formats
func (a *AccessLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseAccessLevel(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// CanRead reports whether the level includes read access
func (a AccessLevel) CanRead() bool {
	return a == AccessRead || a == AccessReadWrite
}

// CanWrite reports whether the level includes write access
func (a AccessLevel) CanWrite() bool {
	return a == AccessWrite || a == AccessReadWrite
}

// Covers reports whether a grant at level a stays within the nominal level other
func (a AccessLevel) Covers(other AccessLevel) bool {
	if other.CanRead() && !a.CanRead() {
		return false
	}
	if other.CanWrite() && !a.CanWrite() {
		return false
	}
	return true
}

// Verbs returns the individual actions contained in the level
func (a AccessLevel) Verbs() []string {
	switch a {
	case AccessRead:
		return []string{"read"}
	case AccessWrite:
		return []string{"write"}
	case AccessReadWrite:
		return []string{"read", "write"}
	}
	return nil
}

// Operation type labels
const (
	OperationReadOnly  = "Read-only"
	OperationWrite     = "Write"
	OperationReadWrite = "Read + Write"
)

// RiskLevel classifies how dangerous a permission is
type RiskLevel string

const (
	RiskStandard RiskLevel = "Standard"
	RiskElevated RiskLevel = "Elevated"
	RiskCritical RiskLevel = "Critical"
)

// Sensitivity labels used for grouping
const (
	SensitivityPII                = "PII"
	SensitivityFinancialData      = "Financial Data"
	SensitivityPaymentCredentials = "Payment Credentials"
	SensitivityNone               = "Non-sensitive"
)

// Permission represents one grantable capability in the catalog
type Permission struct {
	APIName               APIName                `json:"api_name" yaml:"api_name"`
	DisplayName           string                 `json:"display_name" yaml:"display_name"`
	Description           string                 `json:"description" yaml:"description"`
	ProductCategory       string                 `json:"product_category" yaml:"product_category"`
	TaskCategories        []string               `json:"task_categories" yaml:"task_categories"`
	Actions               AccessLevel            `json:"actions" yaml:"actions"`
	OperationType         string                 `json:"operation_type" yaml:"operation_type"`
	RiskLevel             RiskLevel              `json:"risk_level" yaml:"risk_level"`
	HasPII                bool                   `json:"has_pii" yaml:"has_pii"`
	HasFinancialData      bool                   `json:"has_financial_data" yaml:"has_financial_data"`
	HasPaymentCredentials bool                   `json:"has_payment_credentials" yaml:"has_payment_credentials"`
	RoleAccess            map[string]AccessLevel `json:"role_access,omitempty" yaml:"role_access,omitempty"`
}

// IsWriteBearing reports whether the operation type allows changes
func (p Permission) IsWriteBearing() bool {
	return p.OperationType == OperationWrite || p.OperationType == OperationReadWrite
}

// IsReadOnly reports whether the operation type is read-only
func (p Permission) IsReadOnly() bool {
	return p.OperationType == OperationReadOnly
}

// SensitivityLabels returns the sensitivity buckets the permission belongs to
func (p Permission) SensitivityLabels() []string {
	var labels []string
	if p.HasPII {
		labels = append(labels, SensitivityPII)
	}
	if p.HasFinancialData {
		labels = append(labels, SensitivityFinancialData)
	}
	if p.HasPaymentCredentials {
		labels = append(labels, SensitivityPaymentCredentials)
	}
	if len(labels) == 0 {
		labels = append(labels, SensitivityNone)
	}
	return labels
}

// HasTask reports whether the permission belongs to the given task category
func (p Permission) HasTask(task string) bool {
	for _, t := range p.TaskCategories {
		if t == task {
			return true
		}
	}
	return false
}

// clone returns a copy that shares no mutable state with p
func (p Permission) clone() Permission {
	c := p
	c.TaskCategories = cloneStrings(p.TaskCategories)
	if p.RoleAccess != nil {
		c.RoleAccess = make(map[string]AccessLevel, len(p.RoleAccess))
		for k, v := range p.RoleAccess {
			c.RoleAccess[k] = v
		}
	}
	return c
}

// RoleDetails holds the human-readable summary of a role
type RoleDetails struct {
	Description string   `json:"description" yaml:"description"`
	CanDo       []string `json:"can_do" yaml:"can_do"`
	CannotDo    []string `json:"cannot_do" yaml:"cannot_do"`
	BestFor     string   `json:"best_for,omitempty" yaml:"best_for,omitempty"`
}

// Role represents a named bundle of permissions, either built-in or custom
type Role struct {
	ID                string                  `json:"id" yaml:"id"`
	Name              string                  `json:"name" yaml:"name"`
	Category          string                  `json:"category" yaml:"category"`
	Details           *RoleDetails            `json:"details,omitempty" yaml:"details,omitempty"`
	UserCount         int                     `json:"user_count" yaml:"user_count"`
	PermissionAccess  map[APIName]AccessLevel `json:"permission_access,omitempty" yaml:"permission_access,omitempty"`
	CustomDescription string                  `json:"custom_description,omitempty" yaml:"custom_description,omitempty"`
	BaseRoleID        string                  `json:"base_role_id,omitempty" yaml:"base_role_id,omitempty"`
	CreatedAt         *time.Time              `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt         *time.Time              `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// IsCustom reports whether the role stores its grants directly
func (r Role) IsCustom() bool {
	return r.PermissionAccess != nil
}

// RoleCategory defines UI groupings for built-in roles
type RoleCategory struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Order       int    `json:"order" yaml:"order"`
}

// ResolvedPermission is a permission as seen through one role's grant
type ResolvedPermission struct {
	Permission Permission  `json:"permission" yaml:"permission"`
	Access     AccessLevel `json:"access" yaml:"access"`
}
