package insights

import (
	"testing"

	"role-explorer/pkg/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factorNames(factors []Factor) []string {
	names := make([]string, len(factors))
	for i, f := range factors {
		names[i] = f.Name
	}
	return names
}

func findFactor(t *testing.T, a Assessment, name string) Factor {
	t.Helper()
	for _, f := range a.Factors {
		if f.Name == name {
			return f
		}
	}
	require.Failf(t, "factor not found", "%s in %v", name, factorNames(a.Factors))
	return Factor{}
}

func TestAssessEmpty(t *testing.T) {
	a := Assess(nil)

	assert.Equal(t, LevelLow, a.OverallRisk)
	assert.Zero(t, a.Score)
	assert.Empty(t, a.Factors)
	assert.Empty(t, a.Warnings)
	assert.Equal(t, []string{"Add permissions to define role capabilities"}, a.Recommendations)
}

func TestAssessDashboardBaseline(t *testing.T) {
	c := permissions.Default()
	role := permissions.Role{
		ID:               "custom_dashboard",
		PermissionAccess: map[permissions.APIName]permissions.AccessLevel{"dashboard_baseline": permissions.AccessRead},
	}
	resolved := c.ResolveRole(role)
	require.Len(t, resolved, 1)

	a := Assess(permissions.PermissionsOf(resolved))
	assert.Equal(t, LevelLow, a.OverallRisk)
	assert.Zero(t, a.Score)
	assert.Equal(t, []string{"Read-Only Access"}, factorNames(a.Factors))
	assert.Empty(t, a.Warnings)
}

func TestAssessBalanceTransfer(t *testing.T) {
	a := Assess(pick("balance_transfer_operations"))

	assert.Equal(t, LevelHigh, a.OverallRisk)
	assert.GreaterOrEqual(t, a.Score, 25)
	assert.Equal(t, 45, a.Score)

	assert.Equal(t, []string{"Critical Operations", "Financial Data", "Write-Heavy Access"}, factorNames(a.Factors))
	critical := findFactor(t, a, "Critical Operations")
	assert.Equal(t, LevelHigh, critical.Level)
	assert.Equal(t, "1 critical write operation(s)", critical.Description)
	assert.Equal(t, "100% of permissions allow changes", findFactor(t, a, "Write-Heavy Access").Description)

	assert.Contains(t, a.Warnings, "Can transfer funds between accounts")
	assert.Equal(t, []string{oversightRecommendation, auditRecommendation}, a.Recommendations)
}

func TestAssessReadOnlyDiscount(t *testing.T) {
	perms := pick("balance_operations", "financial_reports", "tax_report_operations", "identity_verification_report_data")
	card := assess(perms)

	// 3 financial at 10*0.2 plus 1 PII at 8*0.2
	assert.Equal(t, 8, card.raw)
	assert.Equal(t, 2, card.Score)
	assert.LessOrEqual(t, float64(card.Score), 0.3*float64(card.raw))
	assert.Equal(t, LevelLow, card.OverallRisk)

	assert.Equal(t, LevelLow, findFactor(t, card.Assessment, "Financial Data").Level)
	assert.Equal(t, "Read-only view of 3 permission(s) with financial data", findFactor(t, card.Assessment, "Financial Data").Description)
	assert.Equal(t, LevelLow, findFactor(t, card.Assessment, "Read-Only Access").Level)
}

func TestAssessReadNarrowedCredentials(t *testing.T) {
	c := permissions.Default()
	resolved := c.ResolveRole(permissions.Role{
		ID:               "custom_keys_viewer",
		PermissionAccess: map[permissions.APIName]permissions.AccessLevel{"api_key_operations": permissions.AccessRead},
	})

	a := Assess(permissions.PermissionsOf(resolved))
	credentials := findFactor(t, a, "Payment Credentials")
	assert.Equal(t, LevelMedium, credentials.Level)
	assert.NotContains(t, a.Warnings, credentialsWarning)
	assert.Equal(t, 1, a.Score)
	assert.Empty(t, a.Warnings)
}

func TestAssessStandardOperations(t *testing.T) {
	a := Assess(pick("dashboard_baseline", "charge_operations", "balance_operations"))

	assert.Equal(t, []string{"Financial Data", "Personal Data (PII)", "Standard Operations"}, factorNames(a.Factors))
	assert.Equal(t, 18, a.Score)
	assert.Equal(t, LevelLow, a.OverallRisk)
	assert.Empty(t, a.Recommendations)
}

func TestAssessWarnings(t *testing.T) {
	a := Assess(pick("charge_operations", "dispute_operations", "customer_operations", "subscription_operations", "api_key_operations"))

	require.NotEmpty(t, a.Warnings)
	assert.Equal(t, credentialsWarning, a.Warnings[0])
	assert.Contains(t, a.Warnings[1], "GDPR")
	assert.Equal(t, LevelHigh, a.OverallRisk)
}

func TestAssessFullCatalog(t *testing.T) {
	a := Assess(permissions.Default().Permissions())

	assert.Equal(t, 100, a.Score)
	assert.Equal(t, LevelHigh, a.OverallRisk)
	assert.LessOrEqual(t, len(a.Warnings), 5)
	assert.LessOrEqual(t, len(a.Recommendations), 3)
	assert.Equal(t, []string{splitRoleRecommendation, reviewRecommendation}, a.Recommendations)

	broad := findFactor(t, a, "Broad Access")
	assert.Equal(t, LevelMedium, broad.Level)

	for i := 1; i < len(a.Factors); i++ {
		assert.LessOrEqual(t, a.Factors[i-1].Level.rank(), a.Factors[i].Level.rank())
	}
}

func TestAssessHighRiskWarningsAreIndependent(t *testing.T) {
	perms := pick("payout_operations", "team_management", "settings_security", "sensitive_resources",
		"embeddable_key_admin", "account_admin_management_operations", "balance_transfer_operations")
	a := Assess(perms)

	// The credential warning comes first and pushes the table past the cap
	require.Len(t, a.Warnings, 5)
	assert.Equal(t, []string{
		credentialsWarning,
		"Can transfer funds between accounts",
		"Can manage administrators of connected accounts",
		"Can invite and remove team members or change their roles",
		"Can change account security settings such as 2FA requirements",
	}, a.Warnings)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{100, LevelHigh},
		{70, LevelHigh},
		{69, LevelHigh},
		{45, LevelHigh},
		{44, LevelMedium},
		{20, LevelMedium},
		{19, LevelLow},
		{0, LevelLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score), "score %d", tt.score)
	}
}
