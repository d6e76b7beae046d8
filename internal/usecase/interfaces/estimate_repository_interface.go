package interfaces

import (
	"context"

	"buildready/internal/domain/entities"
)

// EstimatePatch carries the optional field updates accepted by
// UpdateDetailsByID. Nil means "leave unchanged". Status is deliberately
// absent: lifecycle transitions go through the dedicated update methods so
// the engine is the only writer of status.
type EstimatePatch struct {
	Name      *string
	Notes     *string
	TotalCost *int64
}

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Read methods report a missing row as a zero-value entity (empty ID), not
// an error; delete methods report it as found=false.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByAccountID(ctx context.Context, accountID string) ([]entities.Estimate, error)
	UpdateDetailsByID(ctx context.Context, id string, patch EstimatePatch) (entities.Estimate, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
	// UpdateValidationByID records a validation run: confidence score plus the
	// status it moves the estimate to.
	UpdateValidationByID(ctx context.Context, id string, score int, status entities.EstimateStatus) (entities.Estimate, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
