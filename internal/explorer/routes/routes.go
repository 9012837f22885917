package routes

import (
	"context"
	"net/http"

	"role-explorer/internal/explorer/dto"
	"role-explorer/internal/explorer/services"
	"role-explorer/pkg/handlers"
	"role-explorer/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
)

// Module contains the dependencies for explorer routes
type Module struct {
	service *services.Service
}

// NewModule creates a new routes module
func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterUnifiedRoutes registers catalog, insight and sandbox routes with the API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	// Catalog
	huma.Register(api, huma.Operation{
		OperationID: "catalog-list-permissions",
		Method:      http.MethodGet,
		Path:        "/catalog/permissions",
		Summary:     "List permissions",
		Description: "Lists catalog permissions, optionally filtered and grouped along one dimension",
		Tags:        []string{"Catalog"},
	}, m.listPermissions)

	huma.Register(api, huma.Operation{
		OperationID: "catalog-get-permission",
		Method:      http.MethodGet,
		Path:        "/catalog/permissions/{api_name}",
		Summary:     "Get a permission",
		Tags:        []string{"Catalog"},
	}, m.getPermission)

	huma.Register(api, huma.Operation{
		OperationID: "catalog-list-roles",
		Method:      http.MethodGet,
		Path:        "/catalog/roles",
		Summary:     "List built-in roles",
		Description: "Returns the built-in roles grouped by category",
		Tags:        []string{"Catalog"},
	}, m.listRoles)

	huma.Register(api, huma.Operation{
		OperationID: "catalog-resolve-role",
		Method:      http.MethodGet,
		Path:        "/catalog/roles/{role_id}/permissions",
		Summary:     "Resolve role permissions",
		Description: "Effective permissions of a built-in or custom role; unknown roles resolve to an empty list",
		Tags:        []string{"Catalog"},
	}, m.resolveRole)

	huma.Register(api, huma.Operation{
		OperationID: "catalog-audit",
		Method:      http.MethodGet,
		Path:        "/catalog/audit",
		Summary:     "Audit the catalog",
		Description: "Reports data-quality findings such as grants wider than a permission's actions",
		Tags:        []string{"Catalog"},
	}, m.audit)

	huma.Register(api, huma.Operation{
		OperationID: "catalog-export-grid",
		Method:      http.MethodGet,
		Path:        "/catalog/grid.csv",
		Summary:     "Export the access grid",
		Description: "Role-by-permission access grid as CSV",
		Tags:        []string{"Catalog"},
	}, m.exportGrid)

	// Insights
	huma.Register(api, huma.Operation{
		OperationID: "insights-details",
		Method:      http.MethodPost,
		Path:        "/insights/details",
		Summary:     "Describe a permission set",
		Description: "Generates a description, can-do and cannot-do lists and an audience for the selected permissions",
		Tags:        []string{"Insights"},
	}, m.details)

	huma.Register(api, huma.Operation{
		OperationID: "insights-risk",
		Method:      http.MethodPost,
		Path:        "/insights/risk",
		Summary:     "Assess a permission set",
		Description: "Scores the selected permissions and lists risk factors, warnings and recommendations",
		Tags:        []string{"Insights"},
	}, m.risk)

	huma.Register(api, huma.Operation{
		OperationID: "insights-role",
		Method:      http.MethodGet,
		Path:        "/insights/roles/{role_id}",
		Summary:     "Describe and assess a role",
		Tags:        []string{"Insights"},
	}, m.roleInsight)

	// Sandbox
	huma.Register(api, huma.Operation{
		OperationID: "sandbox-check",
		Method:      http.MethodPost,
		Path:        "/sandbox/check",
		Summary:     "Simulate an action",
		Description: "Reports whether a role could perform read or write on a permission. Nothing is enforced.",
		Tags:        []string{"Sandbox"},
	}, m.sandboxCheck)
}

func (m *Module) listPermissions(ctx context.Context, input *dto.ListPermissionsInput) (*dto.ListPermissionsOutput, error) {
	listing, err := m.service.Permissions(services.PermissionQuery{
		Match:    input.Match,
		Search:   input.Search,
		Category: input.Category,
		GroupBy:  input.GroupBy,
	})
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to list permissions", err)
	}
	return &dto.ListPermissionsOutput{Body: listing}, nil
}

func (m *Module) getPermission(ctx context.Context, input *dto.PermissionInput) (*dto.PermissionOutput, error) {
	p, err := m.service.Permission(permissions.APIName(input.APIName))
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to get permission", err)
	}
	return &dto.PermissionOutput{Body: p}, nil
}

func (m *Module) listRoles(ctx context.Context, input *struct{}) (*dto.RoleGroupsOutput, error) {
	out := &dto.RoleGroupsOutput{}
	out.Body.Categories = m.service.RoleGroups()
	return out, nil
}

func (m *Module) resolveRole(ctx context.Context, input *dto.RoleInput) (*dto.ResolvedPermissionsOutput, error) {
	resolved, err := m.service.Resolve(ctx, input.RoleID)
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to resolve role", err)
	}
	out := &dto.ResolvedPermissionsOutput{}
	out.Body.RoleID = input.RoleID
	out.Body.Total = len(resolved)
	out.Body.Permissions = resolved
	return out, nil
}

func (m *Module) audit(ctx context.Context, input *struct{}) (*dto.AuditOutput, error) {
	findings := m.service.Audit()
	out := &dto.AuditOutput{}
	out.Body.Total = len(findings)
	out.Body.Findings = findings
	return out, nil
}

func (m *Module) exportGrid(ctx context.Context, input *struct{}) (*dto.GridOutput, error) {
	body, err := m.service.Grid()
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to export grid", err)
	}
	return &dto.GridOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="role-permission-grid.csv"`,
		Body:               body,
	}, nil
}

func (m *Module) details(ctx context.Context, input *dto.PermissionSetInput) (*dto.DetailsOutput, error) {
	details, ignored := m.service.Details(dto.APINames(input.Body.Permissions))
	out := &dto.DetailsOutput{}
	out.Body.Details = details
	out.Body.Ignored = ignored
	return out, nil
}

func (m *Module) risk(ctx context.Context, input *dto.PermissionSetInput) (*dto.RiskOutput, error) {
	assessment, ignored := m.service.Assess(dto.APINames(input.Body.Permissions))
	out := &dto.RiskOutput{}
	out.Body.Assessment = assessment
	out.Body.Ignored = ignored
	return out, nil
}

func (m *Module) roleInsight(ctx context.Context, input *dto.RoleInput) (*dto.RoleInsightOutput, error) {
	insight, err := m.service.RoleInsight(ctx, input.RoleID)
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to describe role", err)
	}
	return &dto.RoleInsightOutput{Body: insight}, nil
}

func (m *Module) sandboxCheck(ctx context.Context, input *dto.SandboxCheckInput) (*dto.SandboxCheckOutput, error) {
	name := permissions.APIName(input.Body.APIName)
	decision, err := m.service.Check(ctx, input.Body.RoleID, name, input.Body.Action)
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to run sandbox check", err)
	}

	members := make([]services.Member, len(input.Body.Members))
	for i, member := range input.Body.Members {
		members[i] = services.Member{Name: member.Name, Roles: member.Roles}
	}
	decisions, err := m.service.CheckMembers(ctx, members, name, input.Body.Action)
	if err != nil {
		return nil, handlers.APIError(ctx, "Failed to run sandbox check", err)
	}

	out := &dto.SandboxCheckOutput{}
	out.Body.Decision = decision
	if len(decisions) > 0 {
		out.Body.Members = decisions
	}
	return out, nil
}
