package interfaces

import (
	"context"

	"buildready/internal/domain/entities"
)

// EstimateItemPatch carries the optional field updates accepted by
// UpdateByID. Nil means "leave unchanged".
type EstimateItemPatch struct {
	Quantity    *float64
	UnitPrice   *int64
	TotalPrice  *int64
	WasteFactor *float64
	Notes       *string
}

// IEstimateItemRepository abstracts DynamoDB persistence for EstimateItem.

type IEstimateItemRepository interface {
	Create(ctx context.Context, it entities.EstimateItem) (entities.EstimateItem, error)
	// CreateBatch writes the seeded bill of materials at estimate creation.
	CreateBatch(ctx context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error)
	GetByID(ctx context.Context, id string) (entities.EstimateItem, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateItem, error)
	UpdateByID(ctx context.Context, id string, patch EstimateItemPatch) (entities.EstimateItem, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	// DeleteByEstimateID removes all items of an estimate (cascade) and
	// returns how many were deleted.
	DeleteByEstimateID(ctx context.Context, estimateID string) (int, error)
}
