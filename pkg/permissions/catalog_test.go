package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Same(t, c, Default())

	perms := c.Permissions()
	assert.Equal(t, c.Len(), len(perms))
	assert.GreaterOrEqual(t, len(perms), 50)
	assert.Equal(t, APIName("dashboard_baseline"), perms[0].APIName)

	seen := make(map[APIName]bool)
	for _, p := range perms {
		assert.False(t, seen[p.APIName], "duplicate api name %s", p.APIName)
		seen[p.APIName] = true
		assert.Contains(t, ProductCategories, p.ProductCategory, "permission %s", p.APIName)
		assert.NotEmpty(t, p.TaskCategories, "permission %s", p.APIName)
	}

	assert.Len(t, c.Roles(), 14)
	assert.Equal(t, ProductCategories, c.ProductCategories())
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := Default()

	p, ok := c.Permission("team_management")
	require.True(t, ok)
	p.RoleAccess["view_only"] = AccessReadWrite
	p.TaskCategories[0] = "changed"

	again, _ := c.Permission("team_management")
	assert.NotContains(t, again.RoleAccess, "view_only")
	assert.Equal(t, TaskManageTeamAccess, again.TaskCategories[0])

	r, ok := c.Role(RoleAnalyst)
	require.True(t, ok)
	r.Details.CanDo[0] = "changed"

	again2, _ := c.Role(RoleAnalyst)
	assert.NotEqual(t, "changed", again2.Details.CanDo[0])
}

func TestMustPermission(t *testing.T) {
	c := Default()

	p, err := c.MustPermission("payout_operations")
	require.NoError(t, err)
	assert.Equal(t, RiskCritical, p.RiskLevel)

	_, err = c.MustPermission("customer_pii_operations")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsInvalidArgument(err))
}

func TestRolesByCategory(t *testing.T) {
	groups := Default().RolesByCategory()
	require.NotEmpty(t, groups)

	total := 0
	for i, g := range groups {
		if i > 0 {
			assert.Less(t, groups[i-1].Category.Order, g.Category.Order)
		}
		for _, r := range g.Roles {
			assert.Equal(t, g.Category.Name, r.Category)
		}
		total += len(g.Roles)
	}
	assert.Equal(t, 14, total)
	assert.Equal(t, "Administrative", groups[0].Category.Name)
	assert.Equal(t, RoleAdministrator, groups[0].Roles[0].ID)
}

func TestCheckGrant(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		api     APIName
		level   AccessLevel
		wantErr func(error) bool
	}{
		{"read on read-write", "payout_operations", AccessRead, nil},
		{"write on read-write", "payout_operations", AccessWrite, nil},
		{"read-write on read-write", "payout_operations", AccessReadWrite, nil},
		{"write on read-only", "balance_operations", AccessWrite, IsInvalidArgument},
		{"read on write-only", "balance_transfer_operations", AccessRead, IsInvalidArgument},
		{"unknown permission", "nope", AccessRead, IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.CheckGrant(tt.api, tt.level)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
		})
	}
}

func TestAuditDefaultCatalog(t *testing.T) {
	findings := Default().Audit()

	// Only the two roles shipped without grants are reported
	var roleIDs []string
	for _, f := range findings {
		assert.Equal(t, CodeDataIntegrity, f.Code)
		assert.Empty(t, f.APIName, "unexpected permission finding: %s", f.Message)
		roleIDs = append(roleIDs, f.RoleID)
	}
	assert.ElementsMatch(t, []string{RoleIssuingSupportAgent, RoleTaxAnalyst}, roleIDs)
}

func TestAuditReportsBrokenRecords(t *testing.T) {
	c := New([]Permission{
		{
			APIName:       "a",
			Actions:       AccessRead,
			OperationType: OperationWrite,
			RoleAccess:    map[string]AccessLevel{"r1": AccessReadWrite, "ghost": AccessRead},
		},
	}, []Role{{ID: "r1", Name: "R1"}})

	findings := c.Audit()
	require.Len(t, findings, 3)
	assert.Contains(t, findings[0].Message, "operation type")
	assert.Equal(t, "ghost", findings[1].RoleID)
	assert.Equal(t, "r1", findings[2].RoleID)
}

func TestNewDropsDuplicates(t *testing.T) {
	c := New([]Permission{
		{APIName: "a", ProductCategory: "X", Description: "first"},
		{APIName: "a", ProductCategory: "Y", Description: "second"},
		{APIName: "b", ProductCategory: "Y"},
	}, nil)

	assert.Equal(t, 2, c.Len())
	p, _ := c.Permission("a")
	assert.Equal(t, "first", p.Description)
	assert.Equal(t, []string{"X", "Y"}, c.ProductCategories())
}

func TestParseAccessLevel(t *testing.T) {
	tests := []struct {
		in   string
		want AccessLevel
		ok   bool
	}{
		{"read", AccessRead, true},
		{"write", AccessWrite, true},
		{"read, write", AccessReadWrite, true},
		{"read,write", AccessReadWrite, true},
		{" write, read ", AccessReadWrite, true},
		{"admin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseAccessLevel(tt.in)
		if !tt.ok {
			assert.True(t, IsInvalidArgument(err), "input %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestAccessLevelCovers(t *testing.T) {
	assert.True(t, AccessReadWrite.Covers(AccessRead))
	assert.True(t, AccessReadWrite.Covers(AccessWrite))
	assert.True(t, AccessRead.Covers(AccessRead))
	assert.False(t, AccessRead.Covers(AccessWrite))
	assert.False(t, AccessWrite.Covers(AccessReadWrite))
	assert.Equal(t, []string{"read", "write"}, AccessReadWrite.Verbs())
}
