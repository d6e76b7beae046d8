package usecase

import (
	"context"
	"log"
	"strings"

	"buildready/internal/usecase/interfaces"
)

// ResetResult reports the demo-reset housekeeping: what was removed and
// which steps failed. Failures are collected rather than aborting so a
// partially broken account can still be cleaned up.
type ResetResult struct {
	EstimatesDeleted int      `json:"estimates_deleted"`
	ItemsDeleted     int      `json:"items_deleted"`
	IssuesDeleted    int      `json:"issues_deleted"`
	DocumentsDeleted int      `json:"documents_deleted"`
	StandardsDeleted bool     `json:"standards_deleted"`
	ProgressReset    bool     `json:"progress_reset"`
	Errors           []string `json:"errors,omitempty"`
}

type IResetUseCase interface {
	ResetAccount(ctx context.Context, accountID string) (ResetResult, error)
}

// ResetUseCase wipes an account back to a fresh onboarding state.
type ResetUseCase struct {
	estimateRepo  interfaces.IEstimateRepository
	itemRepo      interfaces.IEstimateItemRepository
	issueRepo     interfaces.IValidationIssueRepository
	standardsRepo interfaces.IStandardsRepository
	progressRepo  interfaces.IOnboardingProgressRepository
	documentRepo  interfaces.IPricingDocumentRepository
	documentStore interfaces.IDocumentStore
}

var _ IResetUseCase = (*ResetUseCase)(nil)

func NewResetUseCase(
	estimateRepo interfaces.IEstimateRepository,
	itemRepo interfaces.IEstimateItemRepository,
	issueRepo interfaces.IValidationIssueRepository,
	standardsRepo interfaces.IStandardsRepository,
	progressRepo interfaces.IOnboardingProgressRepository,
	documentRepo interfaces.IPricingDocumentRepository,
	documentStore interfaces.IDocumentStore,
) *ResetUseCase {
	return &ResetUseCase{
		estimateRepo:  estimateRepo,
		itemRepo:      itemRepo,
		issueRepo:     issueRepo,
		standardsRepo: standardsRepo,
		progressRepo:  progressRepo,
		documentRepo:  documentRepo,
		documentStore: documentStore,
	}
}

func (u *ResetUseCase) ResetAccount(ctx context.Context, accountID string) (ResetResult, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return ResetResult{}, ErrInvalidAccountID
	}

	var res ResetResult
	fail := func(step string, err error) {
		log.Printf("[reset][usecase] %s failed account_id=%s err=%v", step, accountID, err)
		res.Errors = append(res.Errors, step+": "+err.Error())
	}

	estimates, err := u.estimateRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		fail("list estimates", err)
	}
	for _, e := range estimates {
		if n, err := u.itemRepo.DeleteByEstimateID(ctx, e.ID); err != nil {
			fail("delete items", err)
		} else {
			res.ItemsDeleted += n
		}
		if n, err := u.issueRepo.DeleteByEstimateID(ctx, e.ID); err != nil {
			fail("delete issues", err)
		} else {
			res.IssuesDeleted += n
		}
		if found, err := u.estimateRepo.DeleteByID(ctx, e.ID); err != nil {
			fail("delete estimate", err)
		} else if found {
			res.EstimatesDeleted++
		}
	}

	docs, err := u.documentRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		fail("list documents", err)
	}
	for _, d := range docs {
		if err := u.documentStore.Remove(ctx, d.StoredPath); err != nil {
			// Same contract as document delete: log and keep going.
			log.Printf("[reset][usecase] file removal failed path=%s err=%v (continuing)", d.StoredPath, err)
		}
		if found, err := u.documentRepo.DeleteByID(ctx, d.ID); err != nil {
			fail("delete document", err)
		} else if found {
			res.DocumentsDeleted++
		}
	}

	if found, err := u.standardsRepo.DeleteByAccountID(ctx, accountID); err != nil {
		fail("delete standards", err)
	} else {
		res.StandardsDeleted = found
	}
	if found, err := u.progressRepo.DeleteByAccountID(ctx, accountID); err != nil {
		fail("reset progress", err)
	} else {
		res.ProgressReset = found
	}

	log.Printf("[reset][usecase] account reset account_id=%s estimates=%d items=%d issues=%d documents=%d errors=%d",
		accountID, res.EstimatesDeleted, res.ItemsDeleted, res.IssuesDeleted, res.DocumentsDeleted, len(res.Errors))
	return res, nil
}
