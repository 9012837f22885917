package services

import (
	"fmt"
	"strings"

	"role-explorer/pkg/permissions"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// IDPrefix starts every custom role id
const IDPrefix = "custom_"

// draft carries the validated header fields of a role under construction
type draft struct {
	Name        string `validate:"required,max=80"`
	Description string `validate:"max=500"`
}

// Builder assembles a custom role one grant at a time
type Builder struct {
	catalog  *permissions.Catalog
	validate *validator.Validate

	id         string
	baseRoleID string
	draft      draft
	access     map[permissions.APIName]permissions.AccessLevel
}

// NewBuilder starts an empty role
func NewBuilder(catalog *permissions.Catalog) *Builder {
	return &Builder{
		catalog:  catalog,
		validate: validator.New(),
		access:   map[permissions.APIName]permissions.AccessLevel{},
	}
}

// FromRole seeds the builder with base's effective grants. Built-in roles keep
// their id as BaseRoleID; custom roles are edited in place and keep their id.
func (b *Builder) FromRole(base permissions.Role) *Builder {
	for _, rp := range b.catalog.ResolveRole(base) {
		b.access[rp.Permission.APIName] = rp.Access
	}
	if base.IsCustom() {
		b.id = base.ID
		b.baseRoleID = base.BaseRoleID
		b.draft.Name = base.Name
		b.draft.Description = base.CustomDescription
	} else {
		b.baseRoleID = base.ID
	}
	return b
}

// Toggle grants name at its full nominal access, or removes it when already granted
func (b *Builder) Toggle(name permissions.APIName) error {
	if _, ok := b.access[name]; ok {
		delete(b.access, name)
		return nil
	}
	p, ok := b.catalog.Permission(name)
	if !ok {
		return unknownPermission(name)
	}
	b.access[name] = p.Actions
	return nil
}

// Grant sets the access level for name. Levels wider than the permission's
// actions are rejected.
func (b *Builder) Grant(name permissions.APIName, level permissions.AccessLevel) error {
	if level.Verbs() == nil {
		return permissions.InvalidArgument("customroles", "unknown access level %q for %s", level, name)
	}
	if _, ok := b.catalog.Permission(name); !ok {
		return unknownPermission(name)
	}
	if err := b.catalog.CheckGrant(name, level); err != nil {
		return err
	}
	b.access[name] = level
	return nil
}

// Revoke removes name from the role
func (b *Builder) Revoke(name permissions.APIName) {
	delete(b.access, name)
}

// Named sets the role name
func (b *Builder) Named(name string) *Builder {
	b.draft.Name = strings.TrimSpace(name)
	return b
}

// Described sets the optional custom description
func (b *Builder) Described(description string) *Builder {
	b.draft.Description = strings.TrimSpace(description)
	return b
}

// Build validates the header fields and returns the role. New roles get a fresh id.
func (b *Builder) Build() (permissions.Role, error) {
	if err := b.validate.Struct(b.draft); err != nil {
		return permissions.Role{}, oops.In("customroles").
			Code(permissions.CodeInvalidArgument).
			Wrapf(err, "invalid custom role: %s", validationMessage(err))
	}

	id := b.id
	if id == "" {
		id = IDPrefix + uuid.New().String()
	}

	access := make(map[permissions.APIName]permissions.AccessLevel, len(b.access))
	for name, level := range b.access {
		access[name] = level
	}

	return permissions.Role{
		ID:                id,
		Name:              b.draft.Name,
		Category:          "Custom Roles",
		PermissionAccess:  access,
		CustomDescription: b.draft.Description,
		BaseRoleID:        b.baseRoleID,
	}, nil
}

// unknownPermission rejects a name from request input; the role itself is not missing
func unknownPermission(name permissions.APIName) error {
	return permissions.InvalidArgument("customroles", "unknown permission %q", name)
}

func validationMessage(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return err.Error()
	}
	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
