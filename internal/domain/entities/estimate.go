package entities

import "time"

// EstimateStatus represents the lifecycle of a project estimate.
//
// Domain notes:
//   - Transitions only move forward: draft -> validating -> validated -> submitted.
//   - `validating` is entered by running validation; `validated` is reached
//     only once every validation issue on the estimate has been resolved.
//   - `submitted` is terminal.

type EstimateStatus string

const (
	EstimateStatusDraft      EstimateStatus = "draft"
	EstimateStatusValidating EstimateStatus = "validating"
	EstimateStatusValidated  EstimateStatus = "validated"
	EstimateStatusSubmitted  EstimateStatus = "submitted"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusValidating, EstimateStatusValidated, EstimateStatusSubmitted:
		return true
	}
	return false
}

// ProjectType classifies the construction project being estimated.

type ProjectType string

const (
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeRenovation  ProjectType = "renovation"
)

func (p ProjectType) Valid() bool {
	switch p {
	case ProjectTypeCommercial, ProjectTypeResidential, ProjectTypeRenovation:
		return true
	}
	return false
}

// Estimate is a costed construction proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (account_id-index): account_id
//
// Monetary representation:
//   - TotalCost is in cents. It is fixed at creation and is NOT recomputed
//     when line items change afterwards.
//
// ConfidenceScore is nil until validation has run at least once.

type Estimate struct {
	ID              string         `json:"id"`
	AccountID       string         `json:"account_id"`
	Name            string         `json:"name"`
	ProjectType     ProjectType    `json:"project_type"`
	TotalArea       int            `json:"total_area"`
	TotalCost       int64          `json:"total_cost"`
	Status          EstimateStatus `json:"status"`
	ConfidenceScore *int           `json:"confidence_score,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
