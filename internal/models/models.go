package models

import "time"

type Role string

const (
	RoleAgent   Role = "agent"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleAgent || r == RoleManager
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Session is an in-memory login. Nothing is persisted; a restart
// returns every client to the unauthenticated state.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type CaseStatus string

const (
	StatusOpen          CaseStatus = "Open"
	StatusInProgress    CaseStatus = "In Progress"
	StatusPendingReview CaseStatus = "Pending Review"
	StatusEscalated     CaseStatus = "Escalated"
	StatusResolved      CaseStatus = "Resolved"
)

type Case struct {
	ID            string     `json:"id"`
	CaseNumber    string     `json:"case_number"`
	Type          string     `json:"type"`
	Jurisdiction  string     `json:"jurisdiction"`
	Priority      Priority   `json:"priority"`
	MonetaryValue float64    `json:"monetary_value"`
	RiskLevel     RiskLevel  `json:"risk_level"`
	Status        CaseStatus `json:"status"`
	ClaimantName  string     `json:"claimant_name"`
	DateOpened    time.Time  `json:"date_opened"`
	LastUpdated   time.Time  `json:"last_updated"`
	Description   string     `json:"description"`
	AssignedAgent string     `json:"assigned_agent,omitempty"`
}

type Citation struct {
	ID            string    `json:"id"`
	DocumentName  string    `json:"document_name"`
	PolicyVersion string    `json:"policy_version"`
	PageNumber    int       `json:"page_number"`
	SectionID     string    `json:"section_id"`
	LastUpdated   time.Time `json:"last_updated"`
	Excerpt       string    `json:"excerpt"`
	DocumentURL   string    `json:"document_url,omitempty"`
}

type KnowledgeItem struct {
	ID               string     `json:"id"`
	CaseID           string     `json:"case_id"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	ConfidenceScore  float64    `json:"confidence_score"`
	ComplianceImpact RiskLevel  `json:"compliance_impact"`
	RequiresReview   bool       `json:"requires_review"`
	Citations        []Citation `json:"citations"`
}

type PolicyDocument struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Version      string    `json:"version"`
	Jurisdiction string    `json:"jurisdiction"`
	LastUpdated  time.Time `json:"last_updated"`
	Status       string    `json:"status"`
	ChunkCount   int       `json:"chunk_count"`
}

type PolicyChange struct {
	ID            string    `json:"id"`
	DocumentName  string    `json:"document_name"`
	ChangeType    string    `json:"change_type"`
	OldVersion    string    `json:"old_version"`
	NewVersion    string    `json:"new_version"`
	AffectedCases int       `json:"affected_cases"`
	Severity      RiskLevel `json:"severity"`
	ChangedDate   time.Time `json:"changed_date"`
	Summary       string    `json:"summary"`
}

type PolicyCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RiskTrendPoint struct {
	Date   string `json:"date"`
	High   int    `json:"high"`
	Medium int    `json:"medium"`
	Low    int    `json:"low"`
}

type CaseVolumePoint struct {
	Date     string `json:"date"`
	Resolved int    `json:"resolved"`
	Opened   int    `json:"opened"`
}

type Analytics struct {
	AverageHandlingTime      float64           `json:"average_handling_time"`
	ComplianceErrorReduction float64           `json:"compliance_error_reduction"`
	TotalCasesProcessed      int               `json:"total_cases_processed"`
	KnowledgeUtilization     float64           `json:"knowledge_utilization"`
	TopPolicies              []PolicyCount     `json:"top_policies"`
	RiskTrends               []RiskTrendPoint  `json:"risk_trends"`
	CasesOverTime            []CaseVolumePoint `json:"cases_over_time"`
}
