package interfaces

import (
	"context"
	"io"

	"buildready/internal/domain/entities"
)

// IPricingDocumentRepository abstracts DynamoDB persistence for uploaded
// pricing-document metadata.

type IPricingDocumentRepository interface {
	Create(ctx context.Context, d entities.PricingDocument) (entities.PricingDocument, error)
	GetByID(ctx context.Context, id string) (entities.PricingDocument, error)
	ListByAccountID(ctx context.Context, accountID string) ([]entities.PricingDocument, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// IDocumentStore abstracts the file storage behind pricing documents.
//
// Remove failures are expected to be tolerated by callers (logged, not
// propagated); the metadata row is the source of truth for listing.

type IDocumentStore interface {
	Save(ctx context.Context, accountID, filename string, r io.Reader) (storedPath string, size int64, err error)
	Remove(ctx context.Context, storedPath string) error
}
