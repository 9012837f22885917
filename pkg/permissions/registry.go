package permissions

// Product categories in catalog display order
var ProductCategories = []string{
	"Dashboard",
	"Payments",
	"Customers",
	"Checkout & Links",
	"Billing",
	"Balances & Payouts",
	"Reporting",
	"Radar",
	"Connect",
	"Issuing",
	"Treasury",
	"Tax",
	"Terminal",
	"Identity",
	"Developers",
	"Account Settings",
	"Team & Security",
}

// Task categories referenced by the role-detail heuristics
const (
	TaskProcessTransactions = "Process transactions"
	TaskCustomerIssues      = "Handle customer issues"
	TaskManageBilling       = "Manage billing"
	TaskMonitorFinances     = "Monitor finances"
	TaskExportData          = "Export data"
	TaskConfigureSettings   = "Configure settings"
	TaskBuildIntegrations   = "Build integrations"
	TaskManageTeamAccess    = "Manage team access"
	TaskMoveFunds           = "Move funds"
)

// staticPermissions is the hardcoded permission catalog. Order is significant:
// every view of the catalog preserves it.
var staticPermissions = []Permission{
	{
		APIName:         "dashboard_baseline",
		DisplayName:     "Dashboard baseline",
		Description:     "View the Dashboard home page and basic account information",
		ProductCategory: "Dashboard",
		TaskCategories:  []string{"View dashboards"},
		Actions:         AccessRead,
		OperationType:   OperationReadOnly,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":              AccessRead,
			"iam_admin":                  AccessRead,
			"developer":                  AccessRead,
			"analyst":                    AccessRead,
			"view_only":                  AccessRead,
			"support_specialist":         AccessRead,
			"dispute_analyst":            AccessRead,
			"refund_analyst":             AccessRead,
			"transfer_analyst":           AccessRead,
			"top_up_admin":               AccessRead,
			"connect_onboarding_analyst": AccessRead,
			"sandbox_administrator":      AccessRead,
		},
	},
	{
		APIName:         "charge_operations",
		DisplayName:     "Charges",
		Description:     "View and create charges and capture authorized payments",
		ProductCategory: "Payments",
		TaskCategories:  []string{"Process transactions", "Handle customer issues"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"support_specialist":    AccessReadWrite,
			"dispute_analyst":       AccessRead,
			"refund_analyst":        AccessReadWrite,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "payment_intent_operations",
		DisplayName:     "Payment intents",
		Description:     "Create, confirm, and cancel payment intents",
		ProductCategory: "Payments",
		TaskCategories:  []string{"Process transactions"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"support_specialist":    AccessRead,
			"refund_analyst":        AccessRead,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:          "refund_operations",
		DisplayName:      "Refunds",
		Description:      "Issue full or partial refunds on payments",
		ProductCategory:  "Payments",
		TaskCategories:   []string{"Handle customer issues", "Process transactions"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskElevated,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"support_specialist":    AccessReadWrite,
			"refund_analyst":        AccessReadWrite,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:          "dispute_operations",
		DisplayName:      "Disputes",
		Description:      "Respond to disputes and submit evidence",
		ProductCategory:  "Payments",
		TaskCategories:   []string{"Handle customer issues"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskElevated,
		HasPII:           true,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":      AccessReadWrite,
			"developer":          AccessRead,
			"analyst":            AccessRead,
			"view_only":          AccessRead,
			"support_specialist": AccessReadWrite,
			"dispute_analyst":    AccessReadWrite,
		},
	},
	{
		APIName:         "customer_operations",
		DisplayName:     "Customers",
		Description:     "View and update customer records",
		ProductCategory: "Customers",
		TaskCategories:  []string{"Handle customer issues", "Manage billing"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"support_specialist":    AccessReadWrite,
			"dispute_analyst":       AccessRead,
			"refund_analyst":        AccessRead,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:               "customer_payment_method_operations",
		DisplayName:           "Customer payment methods",
		Description:           "Attach, detach, and update saved customer payment methods",
		ProductCategory:       "Customers",
		TaskCategories:        []string{"Handle customer issues"},
		Actions:               AccessReadWrite,
		OperationType:         OperationReadWrite,
		RiskLevel:             RiskCritical,
		HasPII:                true,
		HasPaymentCredentials: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"support_specialist":    AccessRead,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:               "payment_method_operations",
		DisplayName:           "Payment methods",
		Description:           "Create payment methods and manage payment method configurations",
		ProductCategory:       "Payments",
		TaskCategories:        []string{"Process transactions", "Build integrations"},
		Actions:               AccessReadWrite,
		OperationType:         OperationReadWrite,
		RiskLevel:             RiskElevated,
		HasPaymentCredentials: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "checkout_session_operations",
		DisplayName:     "Checkout sessions",
		Description:     "Create and expire hosted Checkout sessions",
		ProductCategory: "Checkout & Links",
		TaskCategories:  []string{"Process transactions"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "payment_link_operations",
		DisplayName:     "Payment links",
		Description:     "Create and deactivate shareable payment links",
		ProductCategory: "Checkout & Links",
		TaskCategories:  []string{"Process transactions"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"support_specialist":    AccessRead,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "subscription_operations",
		DisplayName:     "Subscriptions",
		Description:     "Create, update, pause, and cancel subscriptions",
		ProductCategory: "Billing",
		TaskCategories:  []string{"Manage billing", "Handle customer issues"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"support_specialist":    AccessReadWrite,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:          "invoice_operations",
		DisplayName:      "Invoices",
		Description:      "Create, finalize, and void invoices",
		ProductCategory:  "Billing",
		TaskCategories:   []string{"Manage billing"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskStandard,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"support_specialist":    AccessReadWrite,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "product_catalog_operations",
		DisplayName:     "Products and prices",
		Description:     "Manage the product catalog and pricing",
		ProductCategory: "Billing",
		TaskCategories:  []string{"Manage billing", "Configure settings"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "coupon_operations",
		DisplayName:     "Coupons and promotion codes",
		Description:     "Create and retire coupons and promotion codes",
		ProductCategory: "Billing",
		TaskCategories:  []string{"Manage billing"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"support_specialist":    AccessRead,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:          "credit_note_operations",
		DisplayName:      "Credit notes",
		Description:      "Issue credit notes against finalized invoices",
		ProductCategory:  "Billing",
		TaskCategories:   []string{"Manage billing", "Handle customer issues"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskElevated,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":      AccessReadWrite,
			"analyst":            AccessRead,
			"support_specialist": AccessReadWrite,
			"refund_analyst":     AccessReadWrite,
		},
	},
	{
		APIName:         "usage_record_operations",
		DisplayName:     "Usage records",
		Description:     "Report metered usage for usage-based billing",
		ProductCategory: "Billing",
		TaskCategories:  []string{"Manage billing"},
		Actions:         AccessWrite,
		OperationType:   OperationWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessWrite,
			"developer":             AccessWrite,
			"sandbox_administrator": AccessWrite,
		},
	},
	{
		APIName:          "balance_operations",
		DisplayName:      "Balance",
		Description:      "View the account balance and balance transactions",
		ProductCategory:  "Balances & Payouts",
		TaskCategories:   []string{"Monitor finances"},
		Actions:          AccessRead,
		OperationType:    OperationReadOnly,
		RiskLevel:        RiskStandard,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessRead,
			"developer":             AccessRead,
			"analyst":               AccessRead,
			"view_only":             AccessRead,
			"transfer_analyst":      AccessRead,
			"top_up_admin":          AccessRead,
			"sandbox_administrator": AccessRead,
		},
	},
	{
		APIName:          "balance_transfer_operations",
		DisplayName:      "Balance transfers",
		Description:      "Move funds between balances and connected accounts",
		ProductCategory:  "Balances & Payouts",
		TaskCategories:   []string{"Move funds"},
		Actions:          AccessWrite,
		OperationType:    OperationWrite,
		RiskLevel:        RiskCritical,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":    AccessWrite,
			"transfer_analyst": AccessWrite,
		},
	},
	{
		APIName:          "payout_operations",
		DisplayName:      "Payouts",
		Description:      "Create payouts and view payout history",
		ProductCategory:  "Balances & Payouts",
		TaskCategories:   []string{"Move funds", "Monitor finances"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskCritical,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":    AccessReadWrite,
			"analyst":          AccessRead,
			"view_only":        AccessRead,
			"transfer_analyst": AccessReadWrite,
		},
	},
	{
		APIName:          "payout_schedule_settings",
		DisplayName:      "Payout schedule",
		Description:      "Change the automatic payout schedule",
		ProductCategory:  "Balances & Payouts",
		TaskCategories:   []string{"Configure settings", "Move funds"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskElevated,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
		},
	},
	{
		APIName:          "top_up_operations",
		DisplayName:      "Top-ups",
		Description:      "Add funds to the balance from a bank account",
		ProductCategory:  "Balances & Payouts",
		TaskCategories:   []string{"Move funds"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskElevated,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":    AccessReadWrite,
			"transfer_analyst": AccessRead,
			"top_up_admin":     AccessReadWrite,
		},
	},
	{
		APIName:          "bank_account_operations",
		DisplayName:      "Bank accounts",
		Description:      "Add and remove external bank accounts for payouts",
		ProductCategory:  "Balances & Payouts",
		TaskCategories:   []string{"Configure settings", "Move funds"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskCritical,
		HasPII:           true,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
		},
	},
	{
		APIName:          "financial_reports",
		DisplayName:      "Financial reports",
		Description:      "View balance, payout, and reconciliation reports",
		ProductCategory:  "Reporting",
		TaskCategories:   []string{"Monitor finances", "Export data"},
		Actions:          AccessRead,
		OperationType:    OperationReadOnly,
		RiskLevel:        RiskStandard,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":    AccessRead,
			"developer":        AccessRead,
			"analyst":          AccessRead,
			"view_only":        AccessRead,
			"transfer_analyst": AccessRead,
			"top_up_admin":     AccessRead,
		},
	},
	{
		APIName:          "report_run_operations",
		DisplayName:      "Report runs",
		Description:      "Run and download scheduled reports",
		ProductCategory:  "Reporting",
		TaskCategories:   []string{"Export data"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskStandard,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"developer":     AccessReadWrite,
			"analyst":       AccessReadWrite,
		},
	},
	{
		APIName:          "data_export_operations",
		DisplayName:      "Data exports",
		Description:      "Export payments, customers, and other records in bulk",
		ProductCategory:  "Reporting",
		TaskCategories:   []string{"Export data"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskElevated,
		HasPII:           true,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"analyst":       AccessReadWrite,
		},
	},
	{
		APIName:          "sigma_queries",
		DisplayName:      "Sigma queries",
		Description:      "Write and run SQL queries against account data",
		ProductCategory:  "Reporting",
		TaskCategories:   []string{"Export data", "Monitor finances"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskStandard,
		HasPII:           true,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"developer":     AccessReadWrite,
			"analyst":       AccessReadWrite,
			"view_only":     AccessRead,
		},
	},
	{
		APIName:         "radar_rule_operations",
		DisplayName:     "Radar rules",
		Description:     "Create and edit fraud screening rules",
		ProductCategory: "Radar",
		TaskCategories:  []string{"Prevent fraud", "Configure settings"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskElevated,
		RoleAccess: map[string]AccessLevel{
			"administrator":   AccessReadWrite,
			"developer":       AccessRead,
			"analyst":         AccessRead,
			"dispute_analyst": AccessReadWrite,
		},
	},
	{
		APIName:         "radar_review_operations",
		DisplayName:     "Radar reviews",
		Description:     "Approve or refund payments placed in review",
		ProductCategory: "Radar",
		TaskCategories:  []string{"Prevent fraud", "Handle customer issues"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator":      AccessReadWrite,
			"analyst":            AccessRead,
			"support_specialist": AccessReadWrite,
			"dispute_analyst":    AccessReadWrite,
		},
	},
	{
		APIName:         "early_fraud_warning_operations",
		DisplayName:     "Early fraud warnings",
		Description:     "View early fraud warnings from card issuers",
		ProductCategory: "Radar",
		TaskCategories:  []string{"Prevent fraud"},
		Actions:         AccessRead,
		OperationType:   OperationReadOnly,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":      AccessRead,
			"developer":          AccessRead,
			"analyst":            AccessRead,
			"view_only":          AccessRead,
			"support_specialist": AccessRead,
			"dispute_analyst":    AccessRead,
		},
	},
	{
		APIName:          "connected_account_operations",
		DisplayName:      "Connected accounts",
		Description:      "View and update connected accounts",
		ProductCategory:  "Connect",
		TaskCategories:   []string{"Manage connected accounts"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskElevated,
		HasPII:           true,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":              AccessReadWrite,
			"developer":                  AccessReadWrite,
			"analyst":                    AccessRead,
			"connect_onboarding_analyst": AccessRead,
		},
	},
	{
		APIName:         "account_admin_management_operations",
		DisplayName:     "Connected account administrators",
		Description:     "Manage the administrators of connected accounts",
		ProductCategory: "Connect",
		TaskCategories:  []string{"Manage connected accounts", "Manage team access"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskCritical,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator":              AccessReadWrite,
			"connect_onboarding_analyst": AccessRead,
		},
	},
	{
		APIName:         "connect_onboarding_operations",
		DisplayName:     "Connect onboarding",
		Description:     "Review onboarding requirements and verification for connected accounts",
		ProductCategory: "Connect",
		TaskCategories:  []string{"Manage connected accounts"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator":              AccessReadWrite,
			"developer":                  AccessRead,
			"connect_onboarding_analyst": AccessReadWrite,
		},
	},
	{
		APIName:          "application_fee_operations",
		DisplayName:      "Application fees",
		Description:      "View and refund platform application fees",
		ProductCategory:  "Connect",
		TaskCategories:   []string{"Monitor finances"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskStandard,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":              AccessReadWrite,
			"developer":                  AccessReadWrite,
			"analyst":                    AccessRead,
			"connect_onboarding_analyst": AccessRead,
		},
	},
	{
		APIName:               "issuing_card_operations",
		DisplayName:           "Issued cards",
		Description:           "Create cards and view full card numbers",
		ProductCategory:       "Issuing",
		TaskCategories:        []string{"Manage cards"},
		Actions:               AccessReadWrite,
		OperationType:         OperationReadWrite,
		RiskLevel:             RiskCritical,
		HasPII:                true,
		HasPaymentCredentials: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"developer":     AccessReadWrite,
		},
	},
	{
		APIName:         "issuing_cardholder_operations",
		DisplayName:     "Cardholders",
		Description:     "Create and update cardholders",
		ProductCategory: "Issuing",
		TaskCategories:  []string{"Manage cards", "Handle customer issues"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskElevated,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"developer":     AccessRead,
		},
	},
	{
		APIName:          "issuing_authorization_operations",
		DisplayName:      "Issuing authorizations",
		Description:      "Approve or decline card authorizations",
		ProductCategory:  "Issuing",
		TaskCategories:   []string{"Manage cards", "Process transactions"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskElevated,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"developer":     AccessReadWrite,
			"analyst":       AccessRead,
		},
	},
	{
		APIName:          "issuing_dispute_operations",
		DisplayName:      "Issuing disputes",
		Description:      "Open and submit disputes on issued card transactions",
		ProductCategory:  "Issuing",
		TaskCategories:   []string{"Handle customer issues", "Manage cards"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskStandard,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
		},
	},
	{
		APIName:          "treasury_financial_account_operations",
		DisplayName:      "Financial accounts",
		Description:      "View and manage Treasury financial accounts",
		ProductCategory:  "Treasury",
		TaskCategories:   []string{"Move funds", "Monitor finances"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskCritical,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":    AccessReadWrite,
			"transfer_analyst": AccessRead,
		},
	},
	{
		APIName:          "treasury_outbound_payment_operations",
		DisplayName:      "Outbound payments",
		Description:      "Send money from financial accounts to third parties",
		ProductCategory:  "Treasury",
		TaskCategories:   []string{"Move funds"},
		Actions:          AccessReadWrite,
		OperationType:    OperationReadWrite,
		RiskLevel:        RiskCritical,
		HasPII:           true,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "tax_settings",
		DisplayName:     "Tax settings",
		Description:     "Configure tax registrations and calculation settings",
		ProductCategory: "Tax",
		TaskCategories:  []string{"Configure settings", "Manage tax"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"developer":     AccessRead,
		},
	},
	{
		APIName:          "tax_report_operations",
		DisplayName:      "Tax reports",
		Description:      "View and download tax reports",
		ProductCategory:  "Tax",
		TaskCategories:   []string{"Export data", "Manage tax"},
		Actions:          AccessRead,
		OperationType:    OperationReadOnly,
		RiskLevel:        RiskStandard,
		HasFinancialData: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessRead,
			"analyst":       AccessRead,
		},
	},
	{
		APIName:         "terminal_reader_operations",
		DisplayName:     "Terminal readers",
		Description:     "Register and configure in-person card readers",
		ProductCategory: "Terminal",
		TaskCategories:  []string{"Process transactions", "Configure settings"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"developer":     AccessReadWrite,
		},
	},
	{
		APIName:         "identity_verification_operations",
		DisplayName:     "Identity verifications",
		Description:     "Create verification sessions and view their status",
		ProductCategory: "Identity",
		TaskCategories:  []string{"Verify identities"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskElevated,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator":      AccessReadWrite,
			"developer":          AccessReadWrite,
			"support_specialist": AccessRead,
		},
	},
	{
		APIName:         "identity_verification_report_data",
		DisplayName:     "Identity verification data",
		Description:     "View document images and extracted identity data",
		ProductCategory: "Identity",
		TaskCategories:  []string{"Verify identities"},
		Actions:         AccessRead,
		OperationType:   OperationReadOnly,
		RiskLevel:       RiskCritical,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessRead,
		},
	},
	{
		APIName:               "api_key_operations",
		DisplayName:           "API keys",
		Description:           "Create, roll, and revoke secret and restricted API keys",
		ProductCategory:       "Developers",
		TaskCategories:        []string{"Build integrations"},
		Actions:               AccessReadWrite,
		OperationType:         OperationReadWrite,
		RiskLevel:             RiskCritical,
		HasPaymentCredentials: true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:               "embeddable_key_admin",
		DisplayName:           "Embeddable keys",
		Description:           "Create keys that embed platform access in third-party surfaces",
		ProductCategory:       "Developers",
		TaskCategories:        []string{"Build integrations"},
		Actions:               AccessWrite,
		OperationType:         OperationWrite,
		RiskLevel:             RiskCritical,
		HasPaymentCredentials: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessWrite,
			"developer":     AccessWrite,
		},
	},
	{
		APIName:         "webhook_endpoint_operations",
		DisplayName:     "Webhook endpoints",
		Description:     "Create and edit webhook endpoints",
		ProductCategory: "Developers",
		TaskCategories:  []string{"Build integrations", "Configure settings"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskElevated,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "event_log_operations",
		DisplayName:     "Events and logs",
		Description:     "View API request logs and events",
		ProductCategory: "Developers",
		TaskCategories:  []string{"Build integrations", "Export data"},
		Actions:         AccessRead,
		OperationType:   OperationReadOnly,
		RiskLevel:       RiskStandard,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessRead,
			"developer":             AccessRead,
			"sandbox_administrator": AccessRead,
		},
	},
	{
		APIName:         "sandbox_operations",
		DisplayName:     "Sandboxes",
		Description:     "Create, reset, and delete test sandboxes",
		ProductCategory: "Developers",
		TaskCategories:  []string{"Build integrations"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator":         AccessReadWrite,
			"developer":             AccessReadWrite,
			"sandbox_administrator": AccessReadWrite,
		},
	},
	{
		APIName:               "sensitive_resources",
		DisplayName:           "Sensitive resources",
		Description:           "View full bank account numbers and other sensitive resource fields",
		ProductCategory:       "Account Settings",
		TaskCategories:        []string{"Configure settings"},
		Actions:               AccessReadWrite,
		OperationType:         OperationReadWrite,
		RiskLevel:             RiskCritical,
		HasPII:                true,
		HasFinancialData:      true,
		HasPaymentCredentials: true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
		},
	},
	{
		APIName:         "business_settings",
		DisplayName:     "Business settings",
		Description:     "Update public business details and support information",
		ProductCategory: "Account Settings",
		TaskCategories:  []string{"Configure settings"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"iam_admin":     AccessRead,
			"developer":     AccessRead,
			"analyst":       AccessRead,
			"view_only":     AccessRead,
		},
	},
	{
		APIName:         "branding_settings",
		DisplayName:     "Branding",
		Description:     "Change logos, colors, and email branding",
		ProductCategory: "Account Settings",
		TaskCategories:  []string{"Configure settings"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskStandard,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"developer":     AccessReadWrite,
		},
	},
	{
		APIName:         "settings_security",
		DisplayName:     "Security settings",
		Description:     "Change two-step authentication and session policies",
		ProductCategory: "Team & Security",
		TaskCategories:  []string{"Configure settings", "Manage team access"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskCritical,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"iam_admin":     AccessReadWrite,
		},
	},
	{
		APIName:         "team_management",
		DisplayName:     "Team management",
		Description:     "Invite, remove, and change the roles of team members",
		ProductCategory: "Team & Security",
		TaskCategories:  []string{"Manage team access"},
		Actions:         AccessReadWrite,
		OperationType:   OperationReadWrite,
		RiskLevel:       RiskCritical,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessReadWrite,
			"iam_admin":     AccessReadWrite,
		},
	},
	{
		APIName:         "audit_log_operations",
		DisplayName:     "Security history",
		Description:     "View sign-in history and account change logs",
		ProductCategory: "Team & Security",
		TaskCategories:  []string{"Manage team access", "Export data"},
		Actions:         AccessRead,
		OperationType:   OperationReadOnly,
		RiskLevel:       RiskStandard,
		HasPII:          true,
		RoleAccess: map[string]AccessLevel{
			"administrator": AccessRead,
			"iam_admin":     AccessRead,
		},
	},
}
