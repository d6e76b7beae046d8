package interfaces

import (
	"context"

	"buildready/internal/domain/entities"
)

// IValidationIssueRepository abstracts DynamoDB persistence for
// ValidationIssue.

type IValidationIssueRepository interface {
	CreateBatch(ctx context.Context, issues []entities.ValidationIssue) ([]entities.ValidationIssue, error)
	GetByID(ctx context.Context, id string) (entities.ValidationIssue, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.ValidationIssue, error)
	// ResolveByID marks the issue resolved and records resolution text and
	// optional assignee. Resolution is one-way; there is no reopen.
	ResolveByID(ctx context.Context, id, resolution, assignedTo string) (entities.ValidationIssue, error)
	DeleteByEstimateID(ctx context.Context, estimateID string) (int, error)
}
