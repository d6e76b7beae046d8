package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"
)

var (
	ErrIssueNotFound        = errors.New("validation issue not found")
	ErrInvalidIssueID       = errors.New("invalid issue id")
	ErrMissingResolution    = errors.New("resolution text or assignee required")
	ErrIssueAlreadyResolved = errors.New("issue already resolved")
)

// ResolveIssueInput resolves an issue either personally (Resolution set) or
// by delegation (AssignedTo set). At least one must be present.
type ResolveIssueInput struct {
	Resolution string
	AssignedTo string
}

// IValidationIssueUseCase owns issue resolution and the recount that moves
// an estimate to validated. Resolving the last open/pending_review issue of
// an estimate is the only path to the validated status.

type IValidationIssueUseCase interface {
	Resolve(ctx context.Context, id string, in ResolveIssueInput) (entities.ValidationIssue, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.ValidationIssue, error)
}

type ValidationIssueUseCase struct {
	repo         interfaces.IValidationIssueRepository
	estimateRepo interfaces.IEstimateRepository
}

var _ IValidationIssueUseCase = (*ValidationIssueUseCase)(nil)

func NewValidationIssueUseCase(repo interfaces.IValidationIssueRepository, estimateRepo interfaces.IEstimateRepository) *ValidationIssueUseCase {
	return &ValidationIssueUseCase{repo: repo, estimateRepo: estimateRepo}
}

func (u *ValidationIssueUseCase) Resolve(ctx context.Context, id string, in ResolveIssueInput) (entities.ValidationIssue, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ValidationIssue{}, ErrInvalidIssueID
	}
	resolution := strings.TrimSpace(in.Resolution)
	assignedTo := strings.TrimSpace(in.AssignedTo)
	if resolution == "" && assignedTo == "" {
		return entities.ValidationIssue{}, ErrMissingResolution
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ValidationIssue{}, err
	}
	if existing.ID == "" {
		return entities.ValidationIssue{}, ErrIssueNotFound
	}
	if existing.Status == entities.IssueStatusResolved {
		return entities.ValidationIssue{}, ErrIssueAlreadyResolved
	}

	resolved, err := u.repo.ResolveByID(ctx, id, resolution, assignedTo)
	if err != nil {
		return entities.ValidationIssue{}, err
	}
	if resolved.ID == "" {
		return entities.ValidationIssue{}, ErrIssueNotFound
	}

	if err := u.maybeMarkValidated(ctx, resolved.EstimateID); err != nil {
		// The issue itself is resolved; a failed recount should not undo that
		// from the caller's point of view.
		log.Printf("[issue][usecase] validated recount failed estimate_id=%s err=%v", resolved.EstimateID, err)
	}
	return resolved, nil
}

func (u *ValidationIssueUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.ValidationIssue, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

// maybeMarkValidated recounts the estimate's unresolved issues and moves it
// to validated when none remain. Submitted estimates are left alone; status
// never moves backward.
func (u *ValidationIssueUseCase) maybeMarkValidated(ctx context.Context, estimateID string) error {
	issues, err := u.repo.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return err
	}
	for _, is := range issues {
		if is.Status.Unresolved() {
			return nil
		}
	}

	e, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return ErrEstimateNotFound
	}
	switch e.Status {
	case entities.EstimateStatusValidated, entities.EstimateStatusSubmitted:
		return nil
	}

	_, err = u.estimateRepo.UpdateStatusByID(ctx, estimateID, entities.EstimateStatusValidated)
	if err == nil {
		log.Printf("[issue][usecase] all issues resolved, estimate validated estimate_id=%s", estimateID)
	}
	return err
}
