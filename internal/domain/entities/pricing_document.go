package entities

import "time"

// PricingDocument is the metadata row for an uploaded pricing file. The file
// body lives in the document store; parsing/OCR is out of scope, the record
// exists so the onboarding flow can list and delete uploads.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (account_id-index): account_id

type PricingDocument struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StoredPath  string    `json:"stored_path"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
