package response

import (
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase"
)

type EstimateResponse struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"account_id"`
	Name            string    `json:"name"`
	ProjectType     string    `json:"project_type"`
	TotalArea       int       `json:"total_area"`
	TotalCost       int64     `json:"total_cost"`
	Status          string    `json:"status"`
	ConfidenceScore *int      `json:"confidence_score,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:              e.ID,
		AccountID:       e.AccountID,
		Name:            e.Name,
		ProjectType:     string(e.ProjectType),
		TotalArea:       e.TotalArea,
		TotalCost:       e.TotalCost,
		Status:          string(e.Status),
		ConfidenceScore: e.ConfidenceScore,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}

// EstimateDetailResponse is the GET /estimates/:id payload: the estimate
// plus its line items and validation issues.
type EstimateDetailResponse struct {
	Estimate EstimateResponse          `json:"estimate"`
	Items    []EstimateItemResponse    `json:"items"`
	Issues   []ValidationIssueResponse `json:"issues"`
}

func FromEstimateDetail(d usecase.EstimateDetail) EstimateDetailResponse {
	return EstimateDetailResponse{
		Estimate: FromEstimate(d.Estimate),
		Items:    FromEstimateItems(d.Items),
		Issues:   FromValidationIssues(d.Issues),
	}
}

// ValidationRunResponse reports a validation run: the drawn confidence score
// and the newly attached issues.
type ValidationRunResponse struct {
	Estimate        EstimateResponse          `json:"estimate"`
	ConfidenceScore int                       `json:"confidence_score"`
	Issues          []ValidationIssueResponse `json:"issues"`
}

func FromValidationResult(r usecase.ValidationResult) ValidationRunResponse {
	return ValidationRunResponse{
		Estimate:        FromEstimate(r.Estimate),
		ConfidenceScore: r.ConfidenceScore,
		Issues:          FromValidationIssues(r.Issues),
	}
}

// DeleteEstimateResponse reports the cascade outcome of an estimate delete.
type DeleteEstimateResponse struct {
	Success       bool     `json:"success"`
	ItemsDeleted  int      `json:"items_deleted"`
	IssuesDeleted int      `json:"issues_deleted"`
	Errors        []string `json:"errors,omitempty"`
}

func FromCascadeResult(r usecase.CascadeResult) DeleteEstimateResponse {
	return DeleteEstimateResponse{
		Success:       len(r.Errors) == 0,
		ItemsDeleted:  r.ItemsDeleted,
		IssuesDeleted: r.IssuesDeleted,
		Errors:        r.Errors,
	}
}
