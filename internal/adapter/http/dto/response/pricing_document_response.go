package response

import (
	"time"

	"buildready/internal/domain/entities"
)

type PricingDocumentResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func FromPricingDocument(d entities.PricingDocument) PricingDocumentResponse {
	return PricingDocumentResponse{
		ID:          d.ID,
		AccountID:   d.AccountID,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		UploadedAt:  d.UploadedAt,
	}
}

func FromPricingDocuments(docs []entities.PricingDocument) []PricingDocumentResponse {
	out := make([]PricingDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromPricingDocument(d))
	}
	return out
}
