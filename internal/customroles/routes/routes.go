package routes

import (
	"context"
	"fmt"
	"net/http"

	"role-explorer/internal/customroles/dto"
	"role-explorer/internal/customroles/services"
	"role-explorer/pkg/handlers"
	"role-explorer/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
)

// Module contains the dependencies for custom role routes
type Module struct {
	service *services.Service
}

// NewModule creates a new routes module
func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterUnifiedRoutes registers all custom role routes with the API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "custom-roles-list",
		Method:      http.MethodGet,
		Path:        "/custom-roles",
		Summary:     "List custom roles",
		Description: "Returns every stored custom role with generated details",
		Tags:        []string{"Custom Roles"},
	}, m.listRoles)

	huma.Register(api, huma.Operation{
		OperationID:   "custom-roles-create",
		Method:        http.MethodPost,
		Path:          "/custom-roles",
		Summary:       "Create a custom role",
		Description:   "Creates a custom role, optionally starting from a built-in or custom base role",
		Tags:          []string{"Custom Roles"},
		DefaultStatus: http.StatusCreated,
	}, m.createRole)

	huma.Register(api, huma.Operation{
		OperationID: "custom-roles-get",
		Method:      http.MethodGet,
		Path:        "/custom-roles/{role_id}",
		Summary:     "Get a custom role",
		Tags:        []string{"Custom Roles"},
	}, m.getRole)

	huma.Register(api, huma.Operation{
		OperationID: "custom-roles-update",
		Method:      http.MethodPut,
		Path:        "/custom-roles/{role_id}",
		Summary:     "Update a custom role",
		Description: "Renames, redescribes or replaces the grants of a custom role",
		Tags:        []string{"Custom Roles"},
	}, m.updateRole)

	huma.Register(api, huma.Operation{
		OperationID: "custom-roles-delete",
		Method:      http.MethodDelete,
		Path:        "/custom-roles/{role_id}",
		Summary:     "Delete a custom role",
		Tags:        []string{"Custom Roles"},
	}, m.deleteRole)
}

func (m *Module) listRoles(ctx context.Context, input *struct{}) (*dto.CustomRoleListOutput, error) {
	roles, err := m.service.List(ctx)
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to list custom roles", err)
	}

	out := &dto.CustomRoleListOutput{}
	out.Body.Roles = make([]dto.CustomRole, len(roles))
	for i, role := range roles {
		out.Body.Roles[i] = dto.FromRole(role, m.service.DetailsFor(role))
	}
	out.Body.Total = len(roles)
	return out, nil
}

func (m *Module) createRole(ctx context.Context, input *dto.CreateCustomRoleInput) (*dto.CustomRoleOutput, error) {
	grants, err := parseGrants(input.Body.Grants)
	if err != nil {
		return nil, handlers.APIError(ctx, "Invalid grants", err)
	}
	role, err := m.service.Create(ctx, services.CreateRequest{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		BaseRoleID:  input.Body.BaseRoleID,
		Grants:      grants,
		Revoke:      apiNames(input.Body.Revoke),
		Toggle:      apiNames(input.Body.Toggle),
	})
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to create custom role", err)
	}
	return &dto.CustomRoleOutput{Body: dto.FromRole(role, m.service.DetailsFor(role))}, nil
}

func (m *Module) getRole(ctx context.Context, input *dto.CustomRoleIDInput) (*dto.CustomRoleOutput, error) {
	role, err := m.service.Get(ctx, input.RoleID)
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to get custom role", err)
	}
	return &dto.CustomRoleOutput{Body: dto.FromRole(role, m.service.DetailsFor(role))}, nil
}

func (m *Module) updateRole(ctx context.Context, input *dto.UpdateCustomRoleInput) (*dto.CustomRoleOutput, error) {
	var grants map[permissions.APIName]permissions.AccessLevel
	if input.Body.Grants != nil {
		parsed, err := parseGrants(input.Body.Grants)
		if err != nil {
			return nil, handlers.APIError(ctx, "Invalid grants", err)
		}
		grants = parsed
	}

	role, err := m.service.Update(ctx, input.RoleID, services.UpdateRequest{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Grants:      grants,
		Toggle:      apiNames(input.Body.Toggle),
	})
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to update custom role", err)
	}
	return &dto.CustomRoleOutput{Body: dto.FromRole(role, m.service.DetailsFor(role))}, nil
}

func (m *Module) deleteRole(ctx context.Context, input *dto.CustomRoleIDInput) (*dto.DeleteCustomRoleOutput, error) {
	if err := m.service.Delete(ctx, input.RoleID); err != nil {
		return nil, handlers.APIError(ctx, "Failed to delete custom role", err)
	}
	out := &dto.DeleteCustomRoleOutput{}
	out.Body.Message = fmt.Sprintf("Custom role '%s' deleted successfully", input.RoleID)
	return out, nil
}

func parseGrants(raw map[string]string) (map[permissions.APIName]permissions.AccessLevel, error) {
	grants := make(map[permissions.APIName]permissions.AccessLevel, len(raw))
	for name, value := range raw {
		level, err := permissions.ParseAccessLevel(value)
		if err != nil {
			return nil, err
		}
		grants[permissions.APIName(name)] = level
	}
	return grants, nil
}

func apiNames(raw []string) []permissions.APIName {
	names := make([]permissions.APIName, len(raw))
	for i, name := range raw {
		names[i] = permissions.APIName(name)
	}
	return names
}
