package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidEstimateName  = errors.New("invalid estimate name")
	ErrInvalidProjectType   = errors.New("invalid project type")
	ErrInvalidTotalArea     = errors.New("invalid total area")
	ErrInvalidTotalCost     = errors.New("invalid total cost")
	ErrInvalidStatusFilter  = errors.New("invalid status filter")
	ErrInvalidAccountID     = errors.New("invalid account id")
	ErrStandardsRequired    = errors.New("cannot validate without standards")
	ErrEstimateEmpty        = errors.New("cannot validate empty estimate")
	ErrEstimateFinalized    = errors.New("cannot validate a validated or submitted estimate")
	ErrEstimateNotValidated = errors.New("must be validated before submission")
)

// CreateEstimateInput is the command payload for estimate creation.
// TotalCost, when nil, is derived from the seeded line items.
type CreateEstimateInput struct {
	AccountID   string
	Name        string
	ProjectType entities.ProjectType
	TotalArea   int
	Notes       string
	TotalCost   *int64
}

// EstimateDetail bundles an estimate with its line items and issues.
type EstimateDetail struct {
	Estimate entities.Estimate
	Items    []entities.EstimateItem
	Issues   []entities.ValidationIssue
}

// ValidationResult is what a validation run reports back: the drawn score
// and the issues it attached.
type ValidationResult struct {
	Estimate        entities.Estimate
	ConfidenceScore int
	Issues          []entities.ValidationIssue
}

// CascadeResult reports a best-effort cascade delete. Errors holds the
// step failures that were tolerated rather than aborting the delete.
type CascadeResult struct {
	ItemsDeleted  int
	IssuesDeleted int
	Errors        []string
}

// IEstimateUseCase is the estimate lifecycle engine.
//
// The status machine is draft -> validating -> validated -> submitted, never
// backward. Validate moves to validating; only ResolveIssue (issue use case)
// reaches validated; Submit requires exactly validated.

type IEstimateUseCase interface {
	Create(ctx context.Context, in CreateEstimateInput) (EstimateDetail, error)
	Get(ctx context.Context, id string) (EstimateDetail, error)
	List(ctx context.Context, accountID string, status entities.EstimateStatus) ([]entities.Estimate, error)
	Update(ctx context.Context, id string, patch interfaces.EstimatePatch) (entities.Estimate, error)
	Delete(ctx context.Context, id string) (CascadeResult, error)
	Validate(ctx context.Context, id string) (ValidationResult, error)
	Submit(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo          interfaces.IEstimateRepository
	itemRepo      interfaces.IEstimateItemRepository
	issueRepo     interfaces.IValidationIssueRepository
	standardsRepo interfaces.IStandardsRepository
	tracker       interfaces.IProgressTracker

	// rng backs the placeholder scoring/issue generation. Guarded because
	// gin serves handlers concurrently and rand.Rand is not safe for that.
	rngMu sync.Mutex
	rng   *rand.Rand
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	itemRepo interfaces.IEstimateItemRepository,
	issueRepo interfaces.IValidationIssueRepository,
	standardsRepo interfaces.IStandardsRepository,
	tracker interfaces.IProgressTracker,
	rng *rand.Rand,
) *EstimateUseCase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &EstimateUseCase{
		repo:          repo,
		itemRepo:      itemRepo,
		issueRepo:     issueRepo,
		standardsRepo: standardsRepo,
		tracker:       tracker,
		rng:           rng,
	}
}

func (u *EstimateUseCase) Create(ctx context.Context, in CreateEstimateInput) (EstimateDetail, error) {
	accountID := strings.TrimSpace(in.AccountID)
	if accountID == "" {
		return EstimateDetail{}, ErrInvalidAccountID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return EstimateDetail{}, ErrInvalidEstimateName
	}
	if !in.ProjectType.Valid() {
		return EstimateDetail{}, ErrInvalidProjectType
	}
	if in.TotalArea <= 0 {
		return EstimateDetail{}, ErrInvalidTotalArea
	}
	if in.TotalCost != nil && *in.TotalCost < 0 {
		return EstimateDetail{}, ErrInvalidTotalCost
	}

	now := time.Now().UTC()
	estimateID := uuid.NewString()

	u.rngMu.Lock()
	items := seedItems(u.rng, estimateID, now)
	u.rngMu.Unlock()
	issues := seedIssues(estimateID, now)

	totalCost := int64(0)
	for _, it := range items {
		totalCost += it.TotalPrice
	}
	if in.TotalCost != nil {
		totalCost = *in.TotalCost
	}

	e := entities.Estimate{
		ID:          estimateID,
		AccountID:   accountID,
		Name:        name,
		ProjectType: in.ProjectType,
		TotalArea:   in.TotalArea,
		TotalCost:   totalCost,
		Status:      entities.EstimateStatusDraft,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return EstimateDetail{}, err
	}
	createdItems, err := u.itemRepo.CreateBatch(ctx, items)
	if err != nil {
		return EstimateDetail{}, err
	}
	createdIssues, err := u.issueRepo.CreateBatch(ctx, issues)
	if err != nil {
		return EstimateDetail{}, err
	}

	if u.tracker != nil {
		if err := u.tracker.EstimateCreated(ctx, accountID); err != nil {
			log.Printf("[estimate][usecase] progress tracking failed account_id=%s err=%v", accountID, err)
		}
	}

	return EstimateDetail{Estimate: created, Items: createdItems, Issues: createdIssues}, nil
}

func (u *EstimateUseCase) Get(ctx context.Context, id string) (EstimateDetail, error) {
	e, err := u.getExisting(ctx, id)
	if err != nil {
		return EstimateDetail{}, err
	}
	items, err := u.itemRepo.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return EstimateDetail{}, err
	}
	issues, err := u.issueRepo.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return EstimateDetail{}, err
	}
	return EstimateDetail{Estimate: e, Items: items, Issues: issues}, nil
}

func (u *EstimateUseCase) List(ctx context.Context, accountID string, status entities.EstimateStatus) ([]entities.Estimate, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatusFilter
	}

	all, err := u.repo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(all))
	for _, e := range all {
		if status == "" || e.Status == status {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *EstimateUseCase) Update(ctx context.Context, id string, patch interfaces.EstimatePatch) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Estimate{}, ErrInvalidEstimateName
	}
	if patch.TotalCost != nil && *patch.TotalCost < 0 {
		return entities.Estimate{}, ErrInvalidTotalCost
	}

	updated, err := u.repo.UpdateDetailsByID(ctx, id, patch)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// Delete removes the estimate and cascades to its items and issues.
// Cascade failures are collected, logged and reported, not fatal: the
// estimate row itself is already gone by then.
func (u *EstimateUseCase) Delete(ctx context.Context, id string) (CascadeResult, error) {
	e, err := u.getExisting(ctx, id)
	if err != nil {
		return CascadeResult{}, err
	}

	found, err := u.repo.DeleteByID(ctx, e.ID)
	if err != nil {
		return CascadeResult{}, err
	}
	if !found {
		return CascadeResult{}, ErrEstimateNotFound
	}

	var res CascadeResult
	if n, err := u.itemRepo.DeleteByEstimateID(ctx, e.ID); err != nil {
		log.Printf("[estimate][usecase] item cascade failed estimate_id=%s err=%v", e.ID, err)
		res.Errors = append(res.Errors, "items: "+err.Error())
	} else {
		res.ItemsDeleted = n
	}
	if n, err := u.issueRepo.DeleteByEstimateID(ctx, e.ID); err != nil {
		log.Printf("[estimate][usecase] issue cascade failed estimate_id=%s err=%v", e.ID, err)
		res.Errors = append(res.Errors, "issues: "+err.Error())
	} else {
		res.IssuesDeleted = n
	}
	return res, nil
}

// Validate runs the placeholder standards check: it requires standards on
// record and a non-empty bill of materials, then draws a confidence score,
// moves the estimate to validating and attaches 1-3 fresh issues. Drafts may
// be re-validated while still in validating; once the estimate has reached
// validated or submitted the machine never moves it back.
func (u *EstimateUseCase) Validate(ctx context.Context, id string) (ValidationResult, error) {
	e, err := u.getExisting(ctx, id)
	if err != nil {
		return ValidationResult{}, err
	}
	if e.Status == entities.EstimateStatusValidated || e.Status == entities.EstimateStatusSubmitted {
		return ValidationResult{}, ErrEstimateFinalized
	}

	std, err := u.standardsRepo.GetByAccountID(ctx, e.AccountID)
	if err != nil {
		return ValidationResult{}, err
	}
	if std.AccountID == "" {
		return ValidationResult{}, ErrStandardsRequired
	}

	items, err := u.itemRepo.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return ValidationResult{}, err
	}
	if len(items) == 0 {
		return ValidationResult{}, ErrEstimateEmpty
	}

	now := time.Now().UTC()
	u.rngMu.Lock()
	score := drawConfidenceScore(u.rng)
	issues := generateIssues(u.rng, e.ID, now)
	u.rngMu.Unlock()

	updated, err := u.repo.UpdateValidationByID(ctx, e.ID, score, entities.EstimateStatusValidating)
	if err != nil {
		return ValidationResult{}, err
	}
	if updated.ID == "" {
		return ValidationResult{}, ErrEstimateNotFound
	}

	created, err := u.issueRepo.CreateBatch(ctx, issues)
	if err != nil {
		return ValidationResult{}, err
	}

	log.Printf("[estimate][usecase] validated estimate_id=%s score=%d new_issues=%d", e.ID, score, len(created))
	return ValidationResult{Estimate: updated, ConfidenceScore: score, Issues: created}, nil
}

func (u *EstimateUseCase) Submit(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Status != entities.EstimateStatusValidated {
		return entities.Estimate{}, ErrEstimateNotValidated
	}

	updated, err := u.repo.UpdateStatusByID(ctx, e.ID, entities.EstimateStatusSubmitted)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	if u.tracker != nil {
		if err := u.tracker.EstimateSubmitted(ctx, updated.AccountID); err != nil {
			log.Printf("[estimate][usecase] progress tracking failed account_id=%s err=%v", updated.AccountID, err)
		}
	}
	return updated, nil
}

func (u *EstimateUseCase) getExisting(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
