// Package insights derives human-readable summaries and risk assessments
// from arbitrary permission sets. Every function here is pure.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"role-explorer/pkg/permissions"
)

const (
	emptyDescription = "Custom role with minimal permissions. Add permissions to define what this role can do."
	emptyCanDo       = "No permissions selected"
	readOnlyCannotDo = "Make any changes (read-only access)"

	maxCanDo    = 6
	maxCannotDo = 5
)

// Audience phrases in the order they are tried
const (
	AudienceSecurity   = "security and IT teams"
	AudienceReadOnly   = "teams needing read-only visibility"
	AudiencePayments   = "payment operations teams"
	AudienceSupport    = "customer support teams"
	AudienceDevelopers = "developers and engineering teams"
	AudienceBilling    = "billing and revenue teams"
	AudienceFinance    = "finance and analytics teams"
	AudienceDefault    = "team members"
)

var canDoPriority = []string{
	permissions.TaskProcessTransactions,
	permissions.TaskCustomerIssues,
	permissions.TaskManageBilling,
	permissions.TaskMonitorFinances,
	permissions.TaskExportData,
	permissions.TaskConfigureSettings,
	permissions.TaskBuildIntegrations,
	permissions.TaskManageTeamAccess,
	permissions.TaskMoveFunds,
}

type lossStatement struct {
	apiName   permissions.APIName
	statement string
}

// customer_pii_operations is not in the catalog and never matches a selection
var notableMissing = []lossStatement{
	{"team_management", "Invite, remove, or manage team member roles"},
	{"settings_security", "Change account security settings"},
	{"balance_transfer_operations", "Transfer funds between accounts"},
	{"payout_operations", "Manage payouts to bank accounts"},
	{"api_key_operations", "Create or roll API keys"},
	{"refund_operations", "Issue refunds to customers"},
	{"dispute_operations", "Respond to payment disputes"},
	{"customer_pii_operations", "View customer personal information"},
	{"data_export_operations", "Export data in bulk"},
	{"sensitive_resources", "Access sensitive account resources"},
	{"business_settings", "Update business details"},
}

// Generate builds a role summary for an arbitrary permission set
func Generate(perms []permissions.Permission) permissions.RoleDetails {
	if len(perms) == 0 {
		return permissions.RoleDetails{
			Description: emptyDescription,
			CanDo:       []string{emptyCanDo},
			CannotDo:    CannotDo(perms),
		}
	}

	audience := Audience(perms)
	return permissions.RoleDetails{
		Description: Describe(perms),
		CanDo:       CanDo(perms),
		CannotDo:    CannotDo(perms),
		BestFor:     capitalize(audience),
	}
}

type categoryCount struct {
	name  string
	count int
}

// categoryCounts tallies product categories, most frequent first. Ties keep
// first-seen order.
func categoryCounts(perms []permissions.Permission) []categoryCount {
	index := make(map[string]int)
	var counts []categoryCount
	for _, p := range perms {
		i, ok := index[p.ProductCategory]
		if !ok {
			i = len(counts)
			index[p.ProductCategory] = i
			counts = append(counts, categoryCount{name: p.ProductCategory})
		}
		counts[i].count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	return counts
}

func hasWrite(perms []permissions.Permission) bool {
	for _, p := range perms {
		if p.Actions.CanWrite() {
			return true
		}
	}
	return false
}

func hasTask(perms []permissions.Permission, task string) bool {
	for _, p := range perms {
		if p.HasTask(task) {
			return true
		}
	}
	return false
}

// Audience picks the phrase describing who the permission set suits
func Audience(perms []permissions.Permission) string {
	if len(perms) == 0 {
		return AudienceDefault
	}

	dominant := categoryCounts(perms)[0].name
	write := hasWrite(perms)
	financial := false
	for _, p := range perms {
		if p.HasFinancialData {
			financial = true
			break
		}
	}

	switch {
	case hasTask(perms, permissions.TaskManageTeamAccess):
		return AudienceSecurity
	case !write:
		return AudienceReadOnly
	case financial:
		return AudiencePayments
	case hasTask(perms, permissions.TaskCustomerIssues):
		return AudienceSupport
	case dominant == "Developers":
		return AudienceDevelopers
	case dominant == "Billing":
		return AudienceBilling
	case dominant == "Reporting":
		return AudienceFinance
	}
	return AudienceDefault
}

// Describe composes the one-paragraph description of a permission set
func Describe(perms []permissions.Permission) string {
	if len(perms) == 0 {
		return emptyDescription
	}

	access := "read-only"
	if hasWrite(perms) {
		access = "read and write"
	}

	counts := categoryCounts(perms)
	var top []string
	for i := 0; i < len(counts) && i < 2; i++ {
		top = append(top, counts[i].name)
	}
	areas := strings.Join(top, ", ")
	if len(counts) > 3 {
		areas = fmt.Sprintf("%s, and %d more areas", areas, len(counts)-2)
	}

	return fmt.Sprintf("For %s. Custom role with %s access to %s.%s",
		Audience(perms), access, areas, sensitivityClause(perms))
}

func sensitivityClause(perms []permissions.Permission) string {
	var pii, financial, credentials bool
	for _, p := range perms {
		pii = pii || p.HasPII
		financial = financial || p.HasFinancialData
		credentials = credentials || p.HasPaymentCredentials
	}

	var parts []string
	if pii {
		parts = append(parts, "PII")
	}
	if financial {
		parts = append(parts, "financial data")
	}
	if credentials {
		parts = append(parts, "payment credentials")
	}
	if len(parts) == 0 {
		return ""
	}
	return " Includes access to " + strings.Join(parts, ", ") + "."
}

// CanDo lists what a holder of the permission set can do
func CanDo(perms []permissions.Permission) []string {
	if len(perms) == 0 {
		return []string{emptyCanDo}
	}

	var order []string
	byTask := make(map[string][]permissions.Permission)
	for _, p := range perms {
		for _, task := range p.TaskCategories {
			if _, ok := byTask[task]; !ok {
				order = append(order, task)
			}
			byTask[task] = append(byTask[task], p)
		}
	}

	var items []string
	prioritized := make(map[string]bool, len(canDoPriority))
	for _, task := range canDoPriority {
		prioritized[task] = true
		members := byTask[task]
		switch {
		case len(members) == 0:
		case len(members) > 2:
			items = append(items, fmt.Sprintf("%s (%d capabilities)", task, len(members)))
		default:
			for _, p := range members {
				items = append(items, p.Description)
			}
		}
	}
	for _, task := range order {
		if prioritized[task] {
			continue
		}
		items = append(items, byTask[task][0].Description)
	}

	return capList(dedupeFold(items), maxCanDo)
}

// CannotDo lists notable capabilities the permission set lacks
func CannotDo(perms []permissions.Permission) []string {
	present := make(map[permissions.APIName]bool, len(perms))
	categories := make(map[string]bool)
	for _, p := range perms {
		present[p.APIName] = true
		categories[p.ProductCategory] = true
	}

	items := []string{}
	for _, n := range notableMissing {
		if len(items) >= maxCannotDo {
			break
		}
		if !present[n.apiName] {
			items = append(items, n.statement)
		}
	}

	if len(items) < maxCannotDo && !hasWrite(perms) {
		items = append(items, readOnlyCannotDo)
	}

	for _, category := range permissions.ProductCategories {
		if len(items) >= maxCannotDo {
			break
		}
		if !categories[category] {
			items = append(items, fmt.Sprintf("Access %s features", category))
		}
	}

	return capList(items, maxCannotDo)
}

func dedupeFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
