// Package fixtures holds the canned demo dataset the service runs on
// when no database is configured.
package fixtures

import (
	"time"

	"github.com/claims-copilot/backend/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("fixtures: bad date " + s)
	}
	return t
}

func Cases() []models.Case {
	return []models.Case{
		{
			ID:            "case-001",
			CaseNumber:    "CLM-2025-00847",
			Type:          "Flood Insurance Claim",
			Jurisdiction:  "Florida, USA",
			Priority:      models.PriorityHigh,
			MonetaryValue: 284500,
			RiskLevel:     models.RiskHigh,
			Status:        models.StatusInProgress,
			ClaimantName:  "Robert Mitchell",
			DateOpened:    day("2025-05-12"),
			LastUpdated:   day("2025-06-03"),
			Description:   "Residential flood damage claim following Hurricane Elena. Structural damage to ground floor, contents loss, and temporary relocation expenses claimed.",
			AssignedAgent: "Sarah Chen",
		},
		{
			ID:            "case-002",
			CaseNumber:    "CLM-2025-00851",
			Type:          "Auto Insurance Claim",
			Jurisdiction:  "California, USA",
			Priority:      models.PriorityMedium,
			MonetaryValue: 18200,
			RiskLevel:     models.RiskLow,
			Status:        models.StatusOpen,
			ClaimantName:  "Angela Torres",
			DateOpened:    day("2025-05-28"),
			LastUpdated:   day("2025-05-30"),
			Description:   "Multi-vehicle collision on I-405. Claimant not at fault per police report. Vehicle repair estimate and rental coverage requested.",
			AssignedAgent: "Sarah Chen",
		},
		{
			ID:            "case-003",
			CaseNumber:    "CLM-2025-00862",
			Type:          "Health Benefits Appeal",
			Jurisdiction:  "Texas, USA",
			Priority:      models.PriorityCritical,
			MonetaryValue: 96750,
			RiskLevel:     models.RiskHigh,
			Status:        models.StatusEscalated,
			ClaimantName:  "David Okafor",
			DateOpened:    day("2025-04-19"),
			LastUpdated:   day("2025-06-05"),
			Description:   "Appeal of denied coverage for out-of-network specialist treatment. Claimant asserts emergency exception applies under plan terms.",
			AssignedAgent: "Marcus Rodriguez",
		},
		{
			ID:            "case-004",
			CaseNumber:    "CLM-2025-00873",
			Type:          "Workers Compensation",
			Jurisdiction:  "New York, USA",
			Priority:      models.PriorityHigh,
			MonetaryValue: 142000,
			RiskLevel:     models.RiskMedium,
			Status:        models.StatusPendingReview,
			ClaimantName:  "Maria Gonzalez",
			DateOpened:    day("2025-03-07"),
			LastUpdated:   day("2025-06-01"),
			Description:   "Warehouse injury claim with ongoing physical therapy. Employer disputes extent of lost-wage period.",
			AssignedAgent: "Sarah Chen",
		},
		{
			ID:            "case-005",
			CaseNumber:    "CLM-2025-00881",
			Type:          "Compliance Review",
			Jurisdiction:  "Illinois, USA",
			Priority:      models.PriorityLow,
			MonetaryValue: 0,
			RiskLevel:     models.RiskLow,
			Status:        models.StatusOpen,
			ClaimantName:  "Internal Audit",
			DateOpened:    day("2025-06-02"),
			LastUpdated:   day("2025-06-02"),
			Description:   "Quarterly review of claim-handling procedures against updated state regulatory guidance.",
		},
		{
			ID:            "case-006",
			CaseNumber:    "CLM-2025-00829",
			Type:          "Flood Insurance Claim",
			Jurisdiction:  "Texas, USA",
			Priority:      models.PriorityMedium,
			MonetaryValue: 67300,
			RiskLevel:     models.RiskMedium,
			Status:        models.StatusResolved,
			ClaimantName:  "James Whitfield",
			DateOpened:    day("2025-02-14"),
			LastUpdated:   day("2025-05-20"),
			Description:   "Commercial property flood claim, Gulf Coast storm surge. Settled after engineering inspection confirmed covered peril.",
			AssignedAgent: "Marcus Rodriguez",
		},
	}
}

func KnowledgeItems() []models.KnowledgeItem {
	return []models.KnowledgeItem{
		{
			ID:               "ki-001",
			CaseID:           "case-001",
			Type:             "policy",
			Title:            "Flood coverage limits for structural damage",
			Content:          "Standard flood policies cap structural coverage at $250,000 for residential buildings. Amounts claimed above the cap require excess flood endorsement verification before approval.",
			ConfidenceScore:  0.94,
			ComplianceImpact: models.RiskHigh,
			RequiresReview:   true,
			Citations: []models.Citation{
				{
					ID:            "cit-001",
					DocumentName:  "NFIP Standard Flood Insurance Policy",
					PolicyVersion: "v2024.2",
					PageNumber:    14,
					SectionID:     "III.A.2",
					LastUpdated:   day("2024-11-01"),
					Excerpt:       "Building coverage under the Standard Flood Insurance Policy shall not exceed $250,000 for a single-family dwelling.",
				},
			},
		},
		{
			ID:               "ki-002",
			CaseID:           "case-001",
			Type:             "regulation",
			Title:            "Florida prompt-pay requirements",
			Content:          "Florida statute requires insurers to pay or deny flood claims within 90 days of proof-of-loss submission. This claim is at day 52.",
			ConfidenceScore:  0.89,
			ComplianceImpact: models.RiskMedium,
			RequiresReview:   false,
			Citations: []models.Citation{
				{
					ID:            "cit-002",
					DocumentName:  "Florida Insurance Code 627.70131",
					PolicyVersion: "2024 rev.",
					PageNumber:    3,
					SectionID:     "627.70131(7)(a)",
					LastUpdated:   day("2024-07-01"),
					Excerpt:       "Within 90 days after an insurer receives notice of an initial, reopened, or supplemental property insurance claim, the insurer shall pay or deny such claim.",
				},
			},
		},
		{
			ID:               "ki-003",
			CaseID:           "case-001",
			Type:             "sop",
			Title:            "Manual review threshold for high-value claims",
			Content:          "SOP-HC-003 mandates a second-level manual review for any claim above $50,000 before settlement authorization.",
			ConfidenceScore:  0.97,
			ComplianceImpact: models.RiskHigh,
			RequiresReview:   true,
			Citations: []models.Citation{
				{
					ID:            "cit-003",
					DocumentName:  "SOP-HC-003 High-Value Claim Handling",
					PolicyVersion: "v3.1",
					PageNumber:    2,
					SectionID:     "4.2",
					LastUpdated:   day("2025-01-15"),
					Excerpt:       "Claims with an estimated settlement value exceeding $50,000 must receive documented manual review by a senior adjuster prior to authorization.",
				},
			},
		},
		{
			ID:               "ki-004",
			CaseID:           "case-002",
			Type:             "policy",
			Title:            "Rental reimbursement coverage window",
			Content:          "Rental coverage applies for the reasonable repair period, capped at 30 days. Police report confirming no-fault status supports liability waiver.",
			ConfidenceScore:  0.91,
			ComplianceImpact: models.RiskLow,
			RequiresReview:   false,
			Citations: []models.Citation{
				{
					ID:            "cit-004",
					DocumentName:  "Auto Policy Form AP-220",
					PolicyVersion: "v2025.1",
					PageNumber:    22,
					SectionID:     "D.3",
					LastUpdated:   day("2025-02-01"),
					Excerpt:       "Transportation expenses are payable for the period reasonably required to repair or replace the covered auto, not to exceed 30 days.",
				},
			},
		},
		{
			ID:               "ki-005",
			CaseID:           "case-003",
			Type:             "exception",
			Title:            "Emergency out-of-network exception",
			Content:          "Plan terms permit out-of-network reimbursement at in-network rates when treatment qualifies as emergency care. The denial letter did not address the emergency-care assertion.",
			ConfidenceScore:  0.78,
			ComplianceImpact: models.RiskHigh,
			RequiresReview:   true,
			Citations: []models.Citation{
				{
					ID:            "cit-005",
					DocumentName:  "Group Health Plan Document",
					PolicyVersion: "2024 plan year",
					PageNumber:    41,
					SectionID:     "7.4.1",
					LastUpdated:   day("2024-01-01"),
					Excerpt:       "Emergency services rendered by non-participating providers are covered at the participating-provider benefit level.",
				},
			},
		},
	}
}

func PolicyDocuments() []models.PolicyDocument {
	return []models.PolicyDocument{
		{ID: "doc-001", Name: "NFIP Standard Flood Insurance Policy", Type: "policy", Version: "v2024.2", Jurisdiction: "Florida, USA", LastUpdated: day("2024-11-01"), Status: "active", ChunkCount: 182},
		{ID: "doc-002", Name: "Florida Insurance Code 627.70131", Type: "regulation", Version: "2024 rev.", Jurisdiction: "Florida, USA", LastUpdated: day("2024-07-01"), Status: "active", ChunkCount: 47},
		{ID: "doc-003", Name: "SOP-HC-003 High-Value Claim Handling", Type: "sop", Version: "v3.1", Jurisdiction: "All", LastUpdated: day("2025-01-15"), Status: "active", ChunkCount: 12},
		{ID: "doc-004", Name: "Auto Policy Form AP-220", Type: "policy", Version: "v2025.1", Jurisdiction: "California, USA", LastUpdated: day("2025-02-01"), Status: "active", ChunkCount: 96},
		{ID: "doc-005", Name: "California Fair Claims Settlement Practices", Type: "regulation", Version: "2023 rev.", Jurisdiction: "California, USA", LastUpdated: day("2023-09-12"), Status: "active", ChunkCount: 63},
		{ID: "doc-006", Name: "Texas Prompt Payment of Claims Act", Type: "regulation", Version: "2024 rev.", Jurisdiction: "Texas, USA", LastUpdated: day("2024-05-20"), Status: "active", ChunkCount: 38},
		{ID: "doc-007", Name: "SOP-WC-011 Workers Comp Intake", Type: "sop", Version: "v2.4", Jurisdiction: "New York, USA", LastUpdated: day("2024-10-02"), Status: "active", ChunkCount: 18},
		{ID: "doc-008", Name: "Group Health Plan Document", Type: "policy", Version: "2024 plan year", Jurisdiction: "Texas, USA", LastUpdated: day("2024-01-01"), Status: "active", ChunkCount: 201},
		{ID: "doc-009", Name: "Flood Zone Remapping Bulletin 2023-14", Type: "regulation", Version: "v1.0", Jurisdiction: "Florida, USA", LastUpdated: day("2023-12-05"), Status: "archived", ChunkCount: 9},
		{ID: "doc-010", Name: "SOP-GC-001 General Claims Documentation", Type: "sop", Version: "v5.0-draft", Jurisdiction: "All", LastUpdated: day("2025-05-22"), Status: "draft", ChunkCount: 27},
	}
}

func PolicyChanges() []models.PolicyChange {
	return []models.PolicyChange{
		{
			ID:            "chg-001",
			DocumentName:  "NFIP Standard Flood Insurance Policy",
			ChangeType:    "modified",
			OldVersion:    "v2024.1",
			NewVersion:    "v2024.2",
			AffectedCases: 14,
			Severity:      models.RiskHigh,
			ChangedDate:   day("2024-11-01"),
			Summary:       "Proof-of-loss submission window shortened from 240 to 180 days; basement contents exclusions clarified.",
		},
		{
			ID:            "chg-002",
			DocumentName:  "SOP-HC-003 High-Value Claim Handling",
			ChangeType:    "modified",
			OldVersion:    "v3.0",
			NewVersion:    "v3.1",
			AffectedCases: 31,
			Severity:      models.RiskMedium,
			ChangedDate:   day("2025-01-15"),
			Summary:       "Manual-review threshold lowered from $75,000 to $50,000; dual sign-off now required above $200,000.",
		},
		{
			ID:            "chg-003",
			DocumentName:  "Florida Insurance Code 627.70131",
			ChangeType:    "modified",
			OldVersion:    "2023 rev.",
			NewVersion:    "2024 rev.",
			AffectedCases: 9,
			Severity:      models.RiskHigh,
			ChangedDate:   day("2024-07-01"),
			Summary:       "Claim payment deadline reduced from 90 to 60 days for claims filed after July 1, 2024.",
		},
		{
			ID:            "chg-004",
			DocumentName:  "Flood Zone Remapping Bulletin 2023-14",
			ChangeType:    "removed",
			OldVersion:    "v1.0",
			NewVersion:    "",
			AffectedCases: 3,
			Severity:      models.RiskLow,
			ChangedDate:   day("2025-04-10"),
			Summary:       "Bulletin superseded by FEMA map revision; archived and excluded from retrieval.",
		},
		{
			ID:            "chg-005",
			DocumentName:  "SOP-GC-001 General Claims Documentation",
			ChangeType:    "added",
			OldVersion:    "",
			NewVersion:    "v5.0-draft",
			AffectedCases: 0,
			Severity:      models.RiskLow,
			ChangedDate:   day("2025-05-22"),
			Summary:       "Draft consolidation of documentation standards across claim types; pending approval.",
		},
	}
}

func AnalyticsData() models.Analytics {
	return models.Analytics{
		AverageHandlingTime:      4.2,
		ComplianceErrorReduction: 37,
		TotalCasesProcessed:      12847,
		KnowledgeUtilization:     82,
		TopPolicies: []models.PolicyCount{
			{Name: "NFIP Standard Flood Policy", Count: 3420},
			{Name: "Auto Policy Form AP-220", Count: 2810},
			{Name: "SOP-HC-003", Count: 2154},
			{Name: "Group Health Plan", Count: 1688},
			{Name: "Workers Comp Intake", Count: 1032},
		},
		RiskTrends: []models.RiskTrendPoint{
			{Date: "Jan", High: 42, Medium: 118, Low: 340},
			{Date: "Feb", High: 38, Medium: 125, Low: 352},
			{Date: "Mar", High: 45, Medium: 110, Low: 361},
			{Date: "Apr", High: 31, Medium: 98, Low: 375},
			{Date: "May", High: 27, Medium: 92, Low: 388},
			{Date: "Jun", High: 24, Medium: 87, Low: 396},
		},
		CasesOverTime: []models.CaseVolumePoint{
			{Date: "Jan", Resolved: 412, Opened: 445},
			{Date: "Feb", Resolved: 438, Opened: 431},
			{Date: "Mar", Resolved: 455, Opened: 462},
			{Date: "Apr", Resolved: 471, Opened: 448},
			{Date: "May", Resolved: 490, Opened: 455},
			{Date: "Jun", Resolved: 502, Opened: 439},
		},
	}
}
