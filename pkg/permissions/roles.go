package permissions

// Built-in role identifiers
const (
	RoleAdministrator            = "administrator"
	RoleIAMAdmin                 = "iam_admin"
	RoleDeveloper                = "developer"
	RoleAnalyst                  = "analyst"
	RoleViewOnly                 = "view_only"
	RoleSupportSpecialist        = "support_specialist"
	RoleDisputeAnalyst           = "dispute_analyst"
	RoleRefundAnalyst            = "refund_analyst"
	RoleTransferAnalyst          = "transfer_analyst"
	RoleTopUpAdmin               = "top_up_admin"
	RoleConnectOnboardingAnalyst = "connect_onboarding_analyst"
	RoleIssuingSupportAgent      = "issuing_support_agent"
	RoleTaxAnalyst               = "tax_analyst"
	RoleSandboxAdministrator     = "sandbox_administrator"
)

// Static role categories for UI organization
var RoleCategories = []RoleCategory{
	{Name: "Administrative", Description: "Full account control and access management", Order: 1},
	{Name: "Technical", Description: "Integration and development work", Order: 2},
	{Name: "Finance & Reporting", Description: "Money movement, reconciliation and reporting", Order: 3},
	{Name: "Support", Description: "Customer-facing operations", Order: 4},
	{Name: "Specialized", Description: "Narrow roles for a single product area", Order: 5},
}

// staticRoles defines the built-in roles in their declared order
var staticRoles = []Role{
	{
		ID:        RoleAdministrator,
		Name:      "Administrator",
		Category:  "Administrative",
		UserCount: 3,
		Details: &RoleDetails{
			Description: "Full access to the account, including team management, settings and money movement.",
			CanDo: []string{
				"Manage every product and setting on the account",
				"Invite and remove team members and change their roles",
				"Move funds, create payouts and manage bank accounts",
				"Create and roll API keys",
			},
			CannotDo: []string{},
			BestFor:  "Account owners and executives",
		},
	},
	{
		ID:        RoleIAMAdmin,
		Name:      "IAM Admin",
		Category:  "Administrative",
		UserCount: 2,
		Details: &RoleDetails{
			Description: "Manages who has access to the account without access to payments data.",
			CanDo: []string{
				"Invite, remove, and change the roles of team members",
				"Change two-step authentication and session policies",
				"Review sign-in history",
			},
			CannotDo: []string{
				"View payments, customers or balances",
				"Create refunds or payouts",
			},
			BestFor: "Security and IT teams",
		},
	},
	{
		ID:        RoleDeveloper,
		Name:      "Developer",
		Category:  "Technical",
		UserCount: 8,
		Details: &RoleDetails{
			Description: "Builds and maintains the integration, with access to API keys and webhooks.",
			CanDo: []string{
				"Create and roll API keys",
				"Configure webhook endpoints and view logs",
				"Create payments, customers and subscriptions",
			},
			CannotDo: []string{
				"Invite or manage team members",
				"Create payouts or transfer funds",
			},
			BestFor: "Developers and engineering teams",
		},
	},
	{
		ID:        RoleSandboxAdministrator,
		Name:      "Sandbox Administrator",
		Category:  "Technical",
		UserCount: 4,
		Details: &RoleDetails{
			Description: "Full control over test sandboxes without access to live money movement.",
			CanDo: []string{
				"Create, reset, and delete sandboxes",
				"Manage API keys and webhooks for sandboxes",
			},
			CannotDo: []string{
				"Move live funds",
				"Manage team members",
			},
			BestFor: "Engineers testing integrations",
		},
	},
	{
		ID:        RoleAnalyst,
		Name:      "Analyst",
		Category:  "Finance & Reporting",
		UserCount: 6,
		Details: &RoleDetails{
			Description: "Views account data and exports reports, with no ability to move money.",
			CanDo: []string{
				"View payments, customers and balances",
				"Run reports and export data",
				"Write Sigma queries",
			},
			CannotDo: []string{
				"Issue refunds or respond to disputes",
				"Change account settings",
			},
			BestFor: "Finance and analytics teams",
		},
	},
	{
		ID:        RoleViewOnly,
		Name:      "View Only",
		Category:  "Finance & Reporting",
		UserCount: 12,
		Details: &RoleDetails{
			Description: "Read-only access to most of the Dashboard.",
			CanDo: []string{
				"View payments, customers, and balances",
				"View financial reports",
			},
			CannotDo: []string{
				"Make any changes",
				"Export data in bulk",
			},
			BestFor: "Stakeholders who need visibility",
		},
	},
	{
		ID:        RoleTransferAnalyst,
		Name:      "Transfer Analyst",
		Category:  "Finance & Reporting",
		UserCount: 2,
		Details: &RoleDetails{
			Description: "Moves funds between balances and manages payouts.",
			CanDo: []string{
				"Transfer funds between accounts",
				"Create payouts",
				"View balances and financial reports",
			},
			CannotDo: []string{
				"Change bank accounts",
				"Issue refunds",
			},
			BestFor: "Treasury and payment operations teams",
		},
	},
	{
		ID:        RoleTopUpAdmin,
		Name:      "Top-up Admin",
		Category:  "Finance & Reporting",
		UserCount: 1,
		Details: &RoleDetails{
			Description: "Adds funds to the balance from a linked bank account.",
			CanDo: []string{
				"Create top-ups",
				"View the balance",
			},
			CannotDo: []string{
				"Create payouts",
				"Transfer funds between accounts",
			},
			BestFor: "Finance teams funding platform balances",
		},
	},
	{
		ID:        RoleSupportSpecialist,
		Name:      "Support Specialist",
		Category:  "Support",
		UserCount: 15,
		Details: &RoleDetails{
			Description: "Helps customers with payments, refunds, disputes, and subscriptions.",
			CanDo: []string{
				"Issue refunds",
				"Respond to disputes",
				"Update customers and subscriptions",
			},
			CannotDo: []string{
				"View API keys",
				"Create payouts",
			},
			BestFor: "Customer support teams",
		},
	},
	{
		ID:        RoleDisputeAnalyst,
		Name:      "Dispute Analyst",
		Category:  "Support",
		UserCount: 3,
		Details: &RoleDetails{
			Description: "Manages disputes and fraud reviews.",
			CanDo: []string{
				"Respond to disputes and submit evidence",
				"Edit Radar rules and reviews",
			},
			CannotDo: []string{
				"Issue refunds",
				"Move funds",
			},
			BestFor: "Risk and fraud teams",
		},
	},
	{
		ID:        RoleRefundAnalyst,
		Name:      "Refund Analyst",
		Category:  "Support",
		UserCount: 4,
		Details: &RoleDetails{
			Description: "Issues refunds and credit notes.",
			CanDo: []string{
				"Issue full or partial refunds",
				"Create credit notes",
			},
			CannotDo: []string{
				"Respond to disputes",
				"Change account settings",
			},
			BestFor: "Customer support teams handling refunds",
		},
	},
	{
		ID:        RoleIssuingSupportAgent,
		Name:      "Issuing Support Agent",
		Category:  "Support",
		UserCount: 2,
		// Grants are intentionally empty in the catalog even though the description
		// lists capabilities.
		Details: &RoleDetails{
			Description: "Supports cardholders with card and authorization questions.",
			CanDo: []string{
				"View cardholders and issued cards",
				"View authorizations",
			},
			CannotDo: []string{
				"Create cards",
				"View full card numbers",
			},
			BestFor: "Card program support teams",
		},
	},
	{
		ID:        RoleConnectOnboardingAnalyst,
		Name:      "Connect Onboarding Analyst",
		Category:  "Specialized",
		UserCount: 2,
		Details: &RoleDetails{
			Description: "Reviews onboarding and verification for connected accounts.",
			CanDo: []string{
				"Review onboarding requirements",
				"View connected accounts",
			},
			CannotDo: []string{
				"Manage connected account administrators",
				"Move funds",
			},
			BestFor: "Platform operations teams",
		},
	},
	{
		ID:        RoleTaxAnalyst,
		Name:      "Tax Analyst",
		Category:  "Specialized",
		UserCount: 1,
		Details: &RoleDetails{
			Description: "Reviews tax settings and downloads tax reports.",
			CanDo: []string{
				"View tax registrations",
				"Download tax reports",
			},
			CannotDo: []string{
				"Change tax settings",
			},
			BestFor: "Tax and compliance teams",
		},
	},
}
