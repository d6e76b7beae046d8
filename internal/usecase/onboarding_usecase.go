package usecase

import (
	"context"
	"strings"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"
)

// IOnboardingUseCase exposes the derived onboarding checklist and receives
// the lifecycle notifications that flip its flags.

type IOnboardingUseCase interface {
	interfaces.IProgressTracker
	GetProgress(ctx context.Context, accountID string) (entities.OnboardingProgress, error)
}

type OnboardingUseCase struct {
	repo interfaces.IOnboardingProgressRepository
}

var _ IOnboardingUseCase = (*OnboardingUseCase)(nil)

func NewOnboardingUseCase(repo interfaces.IOnboardingProgressRepository) *OnboardingUseCase {
	return &OnboardingUseCase{repo: repo}
}

// GetProgress returns the account's checklist, or a zero-value record when
// the account has not triggered any event yet.
func (u *OnboardingUseCase) GetProgress(ctx context.Context, accountID string) (entities.OnboardingProgress, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.OnboardingProgress{}, ErrInvalidAccountID
	}
	p, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return entities.OnboardingProgress{}, err
	}
	if p.AccountID == "" {
		p.AccountID = accountID
	}
	return p, nil
}

func (u *OnboardingUseCase) EstimateCreated(ctx context.Context, accountID string) error {
	return u.flip(ctx, accountID, func(p *entities.OnboardingProgress) { p.EstimateCreated = true })
}

func (u *OnboardingUseCase) EstimateSubmitted(ctx context.Context, accountID string) error {
	return u.flip(ctx, accountID, func(p *entities.OnboardingProgress) { p.EstimateSubmitted = true })
}

func (u *OnboardingUseCase) StandardsSet(ctx context.Context, accountID string) error {
	return u.flip(ctx, accountID, func(p *entities.OnboardingProgress) { p.StandardsSet = true })
}

func (u *OnboardingUseCase) DocumentUploaded(ctx context.Context, accountID string) error {
	return u.flip(ctx, accountID, func(p *entities.OnboardingProgress) { p.DocumentsUploaded = true })
}

func (u *OnboardingUseCase) flip(ctx context.Context, accountID string, set func(*entities.OnboardingProgress)) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return ErrInvalidAccountID
	}
	p, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	p.AccountID = accountID
	set(&p)
	p.UpdatedAt = time.Now().UTC()
	_, err = u.repo.Upsert(ctx, p)
	return err
}
