package entities

import "time"

// IssueType classifies a validation finding.

type IssueType string

const (
	IssueTypeAmbiguity          IssueType = "ambiguity"
	IssueTypeStandardsDeviation IssueType = "standards_deviation"
	IssueTypePricingAnomaly     IssueType = "pricing_anomaly"
)

func (t IssueType) Valid() bool {
	switch t {
	case IssueTypeAmbiguity, IssueTypeStandardsDeviation, IssueTypePricingAnomaly:
		return true
	}
	return false
}

// IssueStatus tracks a validation issue toward resolution. Issues are never
// reopened once resolved.

type IssueStatus string

const (
	IssueStatusOpen          IssueStatus = "open"
	IssueStatusPendingReview IssueStatus = "pending_review"
	IssueStatusResolved      IssueStatus = "resolved"
)

// Unresolved reports whether the issue still blocks its estimate from
// reaching the validated state.
func (s IssueStatus) Unresolved() bool {
	return s == IssueStatusOpen || s == IssueStatusPendingReview
}

// ValidationIssue is a flagged discrepancy attached to an estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id

type ValidationIssue struct {
	ID          string      `json:"id"`
	EstimateID  string      `json:"estimate_id"`
	Type        IssueType   `json:"type"`
	Status      IssueStatus `json:"status"`
	Description string      `json:"description"`
	Resolution  string      `json:"resolution,omitempty"`
	AssignedTo  string      `json:"assigned_to,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
