package response

import (
	"time"

	"buildready/internal/domain/entities"
)

type OnboardingProgressResponse struct {
	AccountID         string    `json:"account_id"`
	StandardsSet      bool      `json:"standards_set"`
	DocumentsUploaded bool      `json:"documents_uploaded"`
	EstimateCreated   bool      `json:"estimate_created"`
	EstimateSubmitted bool      `json:"estimate_submitted"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromOnboardingProgress(p entities.OnboardingProgress) OnboardingProgressResponse {
	return OnboardingProgressResponse{
		AccountID:         p.AccountID,
		StandardsSet:      p.StandardsSet,
		DocumentsUploaded: p.DocumentsUploaded,
		EstimateCreated:   p.EstimateCreated,
		EstimateSubmitted: p.EstimateSubmitted,
		UpdatedAt:         p.UpdatedAt,
	}
}
