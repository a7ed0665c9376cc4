// Package simulate implements the what-if compliance checker: a fixed
// decision table over the proposed scenario, wrapped in a runner that
// models the latency and single-flight contract of a future real
// backend call.
package simulate

type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

type Outcome string

const (
	OutcomePass    Outcome = "pass"
	OutcomeWarning Outcome = "warning"
	OutcomeFail    Outcome = "fail"
)

type Input struct {
	CaseType            string  `json:"case_type"`
	Jurisdiction        string  `json:"jurisdiction"`
	MonetaryValue       float64 `json:"monetary_value"`
	Decision            string  `json:"decision"`
	SkipManualReview    bool    `json:"skip_manual_review"`
	ExpeditedProcessing bool    `json:"expedited_processing"`
}

type Finding struct {
	Type        Outcome `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

type Result struct {
	OverallRisk     Risk      `json:"overall_risk"`
	ComplianceScore int       `json:"compliance_score"`
	Findings        []Finding `json:"findings"`
	Recommendation  string    `json:"recommendation"`
}

// highValueThreshold triggers the expedited-processing timeline warning.
const highValueThreshold = 100000

// Evaluate applies the compliance rule table to the scenario. It is
// pure and deterministic: the same input always yields the same result.
func Evaluate(in Input) Result {
	var res Result
	switch {
	case in.SkipManualReview:
		res.OverallRisk = RiskHigh
		res.ComplianceScore = 62
	case in.ExpeditedProcessing:
		res.OverallRisk = RiskMedium
		res.ComplianceScore = 78
	default:
		res.OverallRisk = RiskLow
		res.ComplianceScore = 94
	}

	review := Finding{
		Type:        OutcomePass,
		Title:       "Manual Review Requirement",
		Description: "Manual review process compliant with internal policy",
	}
	if in.SkipManualReview {
		review.Type = OutcomeFail
		review.Description = "Skipping manual review violates SOP-HC-003 for claims above $50,000"
	}

	// NaN or negative input can never exceed the threshold, so a
	// malformed value degrades to the pass outcome rather than failing.
	highValue := in.ExpeditedProcessing && in.MonetaryValue > highValueThreshold
	timeline := Finding{
		Type:        OutcomePass,
		Title:       "Processing Timeline",
		Description: "Processing timeline within acceptable parameters",
	}
	if highValue {
		timeline.Type = OutcomeWarning
		timeline.Description = "Expedited processing for high-value claims requires manager approval"
	}

	// Placeholder: no jurisdiction-specific rules exist yet.
	jurisdiction := Finding{
		Type:        OutcomePass,
		Title:       "Jurisdiction Compliance",
		Description: "Decision aligns with jurisdictional requirements",
	}

	audit := Finding{
		Type:        OutcomePass,
		Title:       "Audit Trail Requirements",
		Description: "Documentation meets audit standards",
	}
	if in.SkipManualReview {
		audit.Type = OutcomeFail
		audit.Description = "Insufficient documentation for regulatory audit requirements"
	}

	res.Findings = []Finding{review, timeline, jurisdiction, audit}

	switch {
	case in.SkipManualReview:
		res.Recommendation = "HIGH RISK: This decision path may expose the organization to regulatory penalties and potential litigation. Manual review is strongly recommended."
	case highValue:
		res.Recommendation = "MODERATE RISK: Consider obtaining manager approval before proceeding with expedited processing for this high-value claim."
	default:
		res.Recommendation = "LOW RISK: This decision path appears compliant with all relevant policies and regulations. Proceed with standard documentation."
	}
	return res
}
