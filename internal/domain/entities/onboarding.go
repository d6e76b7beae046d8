package entities

import "time"

// OnboardingProgress is the derived per-account checklist for the guided
// setup flow. Flags only ever flip from false to true; they are reset as a
// whole by the demo-reset housekeeping.
//
// Storage model (DynamoDB):
//   - PK: account_id

type OnboardingProgress struct {
	AccountID         string    `json:"account_id"`
	StandardsSet      bool      `json:"standards_set"`
	DocumentsUploaded bool      `json:"documents_uploaded"`
	EstimateCreated   bool      `json:"estimate_created"`
	EstimateSubmitted bool      `json:"estimate_submitted"`
	UpdatedAt         time.Time `json:"updated_at"`
}
