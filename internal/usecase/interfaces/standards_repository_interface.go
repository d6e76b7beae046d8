package interfaces

import (
	"context"

	"buildready/internal/domain/entities"
)

// IStandardsRepository abstracts DynamoDB persistence for CompanyStandards.
// One record per account; Upsert replaces any previous values.

type IStandardsRepository interface {
	Upsert(ctx context.Context, s entities.CompanyStandards) (entities.CompanyStandards, error)
	GetByAccountID(ctx context.Context, accountID string) (entities.CompanyStandards, error)
	DeleteByAccountID(ctx context.Context, accountID string) (bool, error)
}
