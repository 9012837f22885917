package insights

import (
	"testing"

	"role-explorer/pkg/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pick(names ...permissions.APIName) []permissions.Permission {
	return permissions.Default().ResolveByAPINames(names)
}

func TestGenerateEmpty(t *testing.T) {
	details := Generate(nil)

	assert.Equal(t, "Custom role with minimal permissions. Add permissions to define what this role can do.", details.Description)
	assert.Equal(t, []string{"No permissions selected"}, details.CanDo)
	assert.Empty(t, details.BestFor)
}

func TestGenerateDashboardOnly(t *testing.T) {
	details := Generate(pick("dashboard_baseline"))

	assert.Equal(t, "For teams needing read-only visibility. Custom role with read-only access to Dashboard.", details.Description)
	assert.Equal(t, []string{"View the Dashboard home page and basic account information"}, details.CanDo)
	assert.Equal(t, []string{
		"Invite, remove, or manage team member roles",
		"Change account security settings",
		"Transfer funds between accounts",
		"Manage payouts to bank accounts",
		"Create or roll API keys",
	}, details.CannotDo)
	assert.Equal(t, "Teams needing read-only visibility", details.BestFor)
}

func TestGenerateSecurityRole(t *testing.T) {
	details := Generate(pick("team_management", "settings_security"))

	assert.Equal(t,
		"For security and IT teams. Custom role with read and write access to Team & Security. Includes access to PII.",
		details.Description)
	assert.Equal(t, []string{
		"Change two-step authentication and session policies",
		"Invite, remove, and change the roles of team members",
	}, details.CanDo)
	assert.Equal(t, []string{
		"Transfer funds between accounts",
		"Manage payouts to bank accounts",
		"Create or roll API keys",
		"Issue refunds to customers",
		"Respond to payment disputes",
	}, details.CannotDo)
	assert.Equal(t, "Security and IT teams", details.BestFor)
}

func TestDescribeAreas(t *testing.T) {
	t.Run("more than three categories", func(t *testing.T) {
		perms := pick("charge_operations", "refund_operations", "customer_operations", "invoice_operations", "balance_operations")
		assert.Equal(t,
			"For payment operations teams. Custom role with read and write access to Payments, Customers, and 2 more areas. Includes access to PII, financial data.",
			Describe(perms))
	})

	t.Run("five categories name two and count three", func(t *testing.T) {
		perms := pick("charge_operations", "refund_operations", "customer_operations",
			"invoice_operations", "balance_operations", "financial_reports")
		assert.Contains(t, Describe(perms), " access to Payments, Customers, and 3 more areas.")
	})

	t.Run("exactly three categories lists two", func(t *testing.T) {
		perms := pick("charge_operations", "customer_operations", "coupon_operations")
		assert.Equal(t,
			"For customer support teams. Custom role with read and write access to Payments, Customers. Includes access to PII.",
			Describe(perms))
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		perms := pick("dashboard_baseline", "branding_settings", "usage_record_operations")
		assert.Contains(t, Describe(perms), "access to Dashboard, Billing.")
	})
}

func TestAudience(t *testing.T) {
	tests := []struct {
		name  string
		perms []permissions.APIName
		want  string
	}{
		{"team access wins", []permissions.APIName{"audit_log_operations", "balance_transfer_operations"}, AudienceSecurity},
		{"read only", []permissions.APIName{"balance_operations", "financial_reports"}, AudienceReadOnly},
		{"write and financial", []permissions.APIName{"refund_operations"}, AudiencePayments},
		{"customer issues", []permissions.APIName{"charge_operations"}, AudienceSupport},
		{"developers", []permissions.APIName{"webhook_endpoint_operations", "sandbox_operations"}, AudienceDevelopers},
		{"billing", []permissions.APIName{"coupon_operations", "usage_record_operations"}, AudienceBilling},
		{"default", []permissions.APIName{"terminal_reader_operations"}, AudienceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Audience(pick(tt.perms...)))
		})
	}
}

func TestAudienceReportingDominant(t *testing.T) {
	// Reporting writes without financial data do not exist in the catalog
	perms := []permissions.Permission{
		{APIName: "a", ProductCategory: "Reporting", Actions: permissions.AccessReadWrite, TaskCategories: []string{"Export data"}},
		{APIName: "b", ProductCategory: "Reporting", Actions: permissions.AccessRead, TaskCategories: []string{"Export data"}},
	}
	assert.Equal(t, AudienceFinance, Audience(perms))
}

func TestCanDoSummarizesBusyTasks(t *testing.T) {
	perms := pick("subscription_operations", "invoice_operations", "product_catalog_operations", "coupon_operations")

	assert.Equal(t, []string{
		"Create, update, pause, and cancel subscriptions",
		"Manage billing (4 capabilities)",
		"Manage the product catalog and pricing",
	}, CanDo(perms))
}

func TestCanDoCapAndDedupe(t *testing.T) {
	items := CanDo(permissions.Default().Permissions())
	require.Len(t, items, 6)

	seen := make(map[string]bool)
	for _, item := range items {
		assert.False(t, seen[item], "duplicate item %q", item)
		seen[item] = true
	}
	assert.Equal(t, "Process transactions (8 capabilities)", items[0])
}

func TestCannotDoReadOnlyAndCategories(t *testing.T) {
	var perms []permissions.Permission
	for _, n := range notableMissing {
		if n.apiName == "customer_pii_operations" {
			continue
		}
		perms = append(perms, permissions.Permission{
			APIName:         n.apiName,
			ProductCategory: "Dashboard",
			Actions:         permissions.AccessRead,
			OperationType:   permissions.OperationReadOnly,
		})
	}

	assert.Equal(t, []string{
		"View customer personal information",
		"Make any changes (read-only access)",
		"Access Payments features",
		"Access Customers features",
		"Access Checkout & Links features",
	}, CannotDo(perms))
}

func TestCannotDoMaximallyPermissive(t *testing.T) {
	// Only the entry that matches no catalog permission remains
	assert.Equal(t, []string{"View customer personal information"}, CannotDo(permissions.Default().Permissions()))
}
