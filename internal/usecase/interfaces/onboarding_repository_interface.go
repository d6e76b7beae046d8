package interfaces

import (
	"context"

	"buildready/internal/domain/entities"
)

// IOnboardingProgressRepository abstracts DynamoDB persistence for the
// per-account onboarding checklist.

type IOnboardingProgressRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (entities.OnboardingProgress, error)
	Upsert(ctx context.Context, p entities.OnboardingProgress) (entities.OnboardingProgress, error)
	DeleteByAccountID(ctx context.Context, accountID string) (bool, error)
}

// IProgressTracker receives lifecycle notifications from the other use cases.
// Tracking is best-effort: callers log failures and continue, a progress flag
// must never fail the operation that triggered it.

type IProgressTracker interface {
	EstimateCreated(ctx context.Context, accountID string) error
	EstimateSubmitted(ctx context.Context, accountID string) error
	StandardsSet(ctx context.Context, accountID string) error
	DocumentUploaded(ctx context.Context, accountID string) error
}
