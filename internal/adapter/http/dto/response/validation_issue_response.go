package response

import (
	"time"

	"buildready/internal/domain/entities"
)

type ValidationIssueResponse struct {
	ID          string    `json:"id"`
	EstimateID  string    `json:"estimate_id"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Resolution  string    `json:"resolution,omitempty"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromValidationIssue(is entities.ValidationIssue) ValidationIssueResponse {
	return ValidationIssueResponse{
		ID:          is.ID,
		EstimateID:  is.EstimateID,
		Type:        string(is.Type),
		Status:      string(is.Status),
		Description: is.Description,
		Resolution:  is.Resolution,
		AssignedTo:  is.AssignedTo,
		CreatedAt:   is.CreatedAt,
		UpdatedAt:   is.UpdatedAt,
	}
}

func FromValidationIssues(issues []entities.ValidationIssue) []ValidationIssueResponse {
	out := make([]ValidationIssueResponse, 0, len(issues))
	for _, is := range issues {
		out = append(out, FromValidationIssue(is))
	}
	return out
}
