package insights

import (
	"fmt"
	"math"
	"sort"

	"role-explorer/pkg/permissions"
)

// Level grades both the overall risk and individual factors
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

func (l Level) rank() int {
	switch l {
	case LevelHigh:
		return 0
	case LevelMedium:
		return 1
	}
	return 2
}

// Factor is one contribution to a risk assessment
type Factor struct {
	Name        string `json:"name" yaml:"name"`
	Level       Level  `json:"level" yaml:"level"`
	Description string `json:"description" yaml:"description"`
}

// Assessment is the risk profile of a permission set
type Assessment struct {
	OverallRisk     Level    `json:"overall_risk" yaml:"overall_risk"`
	Score           int      `json:"score" yaml:"score"`
	Factors         []Factor `json:"factors" yaml:"factors"`
	Warnings        []string `json:"warnings" yaml:"warnings"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

const (
	maxScore           = 100
	maxWarnings        = 5
	maxRecommendations = 3

	criticalWeight    = 25
	elevatedWeight    = 15
	credentialsWeight = 20
	financialWeight   = 10
	piiWeight         = 8

	readOnlySensitivityMultiplier = 0.2
	readOnlyDiscount              = 0.3
	writeHeavyThreshold           = 0.7
	writeHeavyPenalty             = 10
	breadthThreshold              = 8
	breadthPenalty                = 10
	reviewThreshold               = 30
	piiWarningThreshold           = 3
)

const (
	emptyRecommendation      = "Add permissions to define role capabilities"
	credentialsWarning       = "Role can access stored payment credentials; PCI DSS scope applies"
	oversightRecommendation  = "Pair critical operations with oversight: keep team management with a separate administrator who reviews changes"
	reviewRecommendation     = "Review this role regularly; it grants more than 30 permissions"
	auditRecommendation      = "Add read-only permissions so holders keep audit visibility over what they change"
	splitRoleRecommendation  = "Split this role into smaller roles focused on specific job functions"
	teamManagementPermission = permissions.APIName("team_management")
)

var highRiskWarnings = []struct {
	apiName permissions.APIName
	warning string
}{
	{"balance_transfer_operations", "Can transfer funds between accounts"},
	{"account_admin_management_operations", "Can manage administrators of connected accounts"},
	{"team_management", "Can invite and remove team members or change their roles"},
	{"settings_security", "Can change account security settings such as 2FA requirements"},
	{"sensitive_resources", "Can view sensitive resources such as full bank account details"},
	{"embeddable_key_admin", "Can create keys that embed platform access in third-party surfaces"},
	{"payout_operations", "Can create payouts and change where funds are sent"},
}

// scoreCard accumulates an assessment. raw is the score before the
// read-only discount.
type scoreCard struct {
	Assessment
	raw int
}

func (s *scoreCard) factor(name string, level Level, format string, args ...any) {
	s.Factors = append(s.Factors, Factor{Name: name, Level: level, Description: fmt.Sprintf(format, args...)})
}

// Assess scores the risk of granting perms
func Assess(perms []permissions.Permission) Assessment {
	return assess(perms).Assessment
}

func assess(perms []permissions.Permission) scoreCard {
	s := scoreCard{Assessment: Assessment{
		Factors:         []Factor{},
		Warnings:        []string{},
		Recommendations: []string{},
	}}

	if len(perms) == 0 {
		s.OverallRisk = LevelLow
		s.Recommendations = append(s.Recommendations, emptyRecommendation)
		return s
	}

	var (
		writeBearing, readOnly      int
		critical, elevated          int
		standard                    bool
		credentials, financial, pii int
	)
	present := make(map[permissions.APIName]bool, len(perms))
	categories := make(map[string]bool)

	for _, p := range perms {
		present[p.APIName] = true
		categories[p.ProductCategory] = true

		if p.IsWriteBearing() {
			writeBearing++
			switch p.RiskLevel {
			case permissions.RiskCritical:
				critical++
			case permissions.RiskElevated:
				elevated++
			}
		}
		if p.IsReadOnly() {
			readOnly++
		}
		if p.RiskLevel == permissions.RiskStandard {
			standard = true
		}
		if p.HasPaymentCredentials {
			credentials++
		}
		if p.HasFinancialData {
			financial++
		}
		if p.HasPII {
			pii++
		}
	}
	allReadOnly := readOnly == len(perms)

	score := 0
	if critical > 0 {
		score += criticalWeight * critical
		s.factor("Critical Operations", LevelHigh, "%d critical write operation(s)", critical)
	}
	if elevated > 0 {
		score += elevatedWeight * elevated
		s.factor("Administrative Access", LevelHigh, "%d elevated write operation(s)", elevated)
	}

	multiplier := 1.0
	if allReadOnly {
		multiplier = readOnlySensitivityMultiplier
	}
	access := "Access to"
	if allReadOnly {
		access = "Read-only view of"
	}

	if credentials > 0 {
		score += weighted(credentialsWeight, credentials, multiplier)
		level := LevelHigh
		if allReadOnly {
			level = LevelMedium
		}
		s.factor("Payment Credentials", level, "%s %d permission(s) exposing payment credentials", access, credentials)
		if !allReadOnly {
			s.Warnings = append(s.Warnings, credentialsWarning)
		}
	}
	if financial > 0 {
		score += weighted(financialWeight, financial, multiplier)
		level := LevelHigh
		if allReadOnly {
			level = LevelLow
		}
		s.factor("Financial Data", level, "%s %d permission(s) with financial data", access, financial)
	}
	if pii > 0 {
		score += weighted(piiWeight, pii, multiplier)
		level := LevelMedium
		if allReadOnly {
			level = LevelLow
		}
		s.factor("Personal Data (PII)", level, "%s %d permission(s) with personal data", access, pii)
		if pii > piiWarningThreshold && !allReadOnly {
			s.Warnings = append(s.Warnings, fmt.Sprintf(
				"Role can access personal data through %d permissions; GDPR and privacy obligations apply", pii))
		}
	}

	s.raw = score
	writeFraction := float64(writeBearing) / float64(len(perms))
	switch {
	case allReadOnly:
		s.factor("Read-Only Access", LevelLow, "All %d permission(s) are read-only", len(perms))
		score = int(float64(score) * readOnlyDiscount)
	case writeFraction > writeHeavyThreshold:
		score += writeHeavyPenalty
		s.factor("Write-Heavy Access", LevelMedium, "%d%% of permissions allow changes", int(math.Round(writeFraction*100)))
	case standard && critical == 0 && elevated == 0:
		s.factor("Standard Operations", LevelLow, "Write access is limited to standard-risk operations")
	}

	for _, hr := range highRiskWarnings {
		if present[hr.apiName] {
			s.Warnings = append(s.Warnings, hr.warning)
		}
	}

	if len(categories) > breadthThreshold {
		score += breadthPenalty
		s.factor("Broad Access", LevelMedium, "Spans %d product categories", len(categories))
		s.Recommendations = append(s.Recommendations, splitRoleRecommendation)
	}

	if critical > 0 && !present[teamManagementPermission] {
		s.Recommendations = append(s.Recommendations, oversightRecommendation)
	}
	if len(perms) > reviewThreshold {
		s.Recommendations = append(s.Recommendations, reviewRecommendation)
	}
	if writeBearing > 0 && readOnly == 0 {
		s.Recommendations = append(s.Recommendations, auditRecommendation)
	}

	if score > maxScore {
		score = maxScore
	}
	s.Score = score
	s.OverallRisk = Classify(score)

	sort.SliceStable(s.Factors, func(i, j int) bool {
		return s.Factors[i].Level.rank() < s.Factors[j].Level.rank()
	})
	s.Warnings = capList(s.Warnings, maxWarnings)
	s.Recommendations = capList(s.Recommendations, maxRecommendations)
	return s
}

// Classify maps a score to an overall risk level. Scores of 70 and above
// share the High tier with scores of 45 and above.
func Classify(score int) Level {
	switch {
	case score >= 70:
		return LevelHigh
	case score >= 45:
		return LevelHigh
	case score >= 20:
		return LevelMedium
	}
	return LevelLow
}

func weighted(weight, count int, multiplier float64) int {
	return int(math.Round(float64(weight*count) * multiplier))
}
