package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"
)

// In-memory repositories backing the full-lifecycle test below. They follow
// the DynamoDB repositories' convention: a zero-value entity means not found,
// never an error.

type memEstimateRepo struct {
	byID map[string]entities.Estimate
}

func newMemEstimateRepo() *memEstimateRepo {
	return &memEstimateRepo{byID: map[string]entities.Estimate{}}
}

func (m *memEstimateRepo) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	m.byID[e.ID] = e
	return e, nil
}

func (m *memEstimateRepo) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	return m.byID[id], nil
}

func (m *memEstimateRepo) ListByAccountID(_ context.Context, accountID string) ([]entities.Estimate, error) {
	var out []entities.Estimate
	for _, e := range m.byID {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEstimateRepo) UpdateDetailsByID(_ context.Context, id string, patch interfaces.EstimatePatch) (entities.Estimate, error) {
	e, ok := m.byID[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	if patch.TotalCost != nil {
		e.TotalCost = *patch.TotalCost
	}
	e.UpdatedAt = time.Now().UTC()
	m.byID[id] = e
	return e, nil
}

func (m *memEstimateRepo) UpdateStatusByID(_ context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	e, ok := m.byID[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	e.Status = status
	e.UpdatedAt = time.Now().UTC()
	m.byID[id] = e
	return e, nil
}

func (m *memEstimateRepo) UpdateValidationByID(_ context.Context, id string, score int, status entities.EstimateStatus) (entities.Estimate, error) {
	e, ok := m.byID[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	e.ConfidenceScore = &score
	e.Status = status
	e.UpdatedAt = time.Now().UTC()
	m.byID[id] = e
	return e, nil
}

func (m *memEstimateRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

type memItemRepo struct {
	byID map[string]entities.EstimateItem
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{byID: map[string]entities.EstimateItem{}}
}

func (m *memItemRepo) Create(_ context.Context, it entities.EstimateItem) (entities.EstimateItem, error) {
	m.byID[it.ID] = it
	return it, nil
}

func (m *memItemRepo) CreateBatch(ctx context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error) {
	for _, it := range items {
		m.byID[it.ID] = it
	}
	return items, nil
}

func (m *memItemRepo) GetByID(_ context.Context, id string) (entities.EstimateItem, error) {
	return m.byID[id], nil
}

func (m *memItemRepo) ListByEstimateID(_ context.Context, estimateID string) ([]entities.EstimateItem, error) {
	var out []entities.EstimateItem
	for _, it := range m.byID {
		if it.EstimateID == estimateID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memItemRepo) UpdateByID(_ context.Context, id string, patch interfaces.EstimateItemPatch) (entities.EstimateItem, error) {
	it, ok := m.byID[id]
	if !ok {
		return entities.EstimateItem{}, nil
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		it.UnitPrice = *patch.UnitPrice
	}
	if patch.TotalPrice != nil {
		it.TotalPrice = *patch.TotalPrice
	}
	if patch.WasteFactor != nil {
		it.WasteFactor = patch.WasteFactor
	}
	if patch.Notes != nil {
		it.Notes = *patch.Notes
	}
	m.byID[id] = it
	return it, nil
}

func (m *memItemRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

func (m *memItemRepo) DeleteByEstimateID(ctx context.Context, estimateID string) (int, error) {
	n := 0
	for id, it := range m.byID {
		if it.EstimateID == estimateID {
			delete(m.byID, id)
			n++
		}
	}
	return n, nil
}

type memIssueRepo struct {
	byID map[string]entities.ValidationIssue
}

func newMemIssueRepo() *memIssueRepo {
	return &memIssueRepo{byID: map[string]entities.ValidationIssue{}}
}

func (m *memIssueRepo) CreateBatch(_ context.Context, issues []entities.ValidationIssue) ([]entities.ValidationIssue, error) {
	for _, is := range issues {
		m.byID[is.ID] = is
	}
	return issues, nil
}

func (m *memIssueRepo) GetByID(_ context.Context, id string) (entities.ValidationIssue, error) {
	return m.byID[id], nil
}

func (m *memIssueRepo) ListByEstimateID(_ context.Context, estimateID string) ([]entities.ValidationIssue, error) {
	var out []entities.ValidationIssue
	for _, is := range m.byID {
		if is.EstimateID == estimateID {
			out = append(out, is)
		}
	}
	return out, nil
}

func (m *memIssueRepo) ResolveByID(_ context.Context, id, resolution, assignedTo string) (entities.ValidationIssue, error) {
	is, ok := m.byID[id]
	if !ok {
		return entities.ValidationIssue{}, nil
	}
	is.Status = entities.IssueStatusResolved
	is.Resolution = resolution
	is.AssignedTo = assignedTo
	is.UpdatedAt = time.Now().UTC()
	m.byID[id] = is
	return is, nil
}

func (m *memIssueRepo) DeleteByEstimateID(ctx context.Context, estimateID string) (int, error) {
	n := 0
	for id, is := range m.byID {
		if is.EstimateID == estimateID {
			delete(m.byID, id)
			n++
		}
	}
	return n, nil
}

type memStandardsRepo struct {
	byAccount map[string]entities.CompanyStandards
}

func newMemStandardsRepo() *memStandardsRepo {
	return &memStandardsRepo{byAccount: map[string]entities.CompanyStandards{}}
}

func (m *memStandardsRepo) Upsert(_ context.Context, s entities.CompanyStandards) (entities.CompanyStandards, error) {
	m.byAccount[s.AccountID] = s
	return s, nil
}

func (m *memStandardsRepo) GetByAccountID(_ context.Context, accountID string) (entities.CompanyStandards, error) {
	return m.byAccount[accountID], nil
}

func (m *memStandardsRepo) DeleteByAccountID(_ context.Context, accountID string) (bool, error) {
	_, ok := m.byAccount[accountID]
	delete(m.byAccount, accountID)
	return ok, nil
}

type memProgressRepo struct {
	byAccount map[string]entities.OnboardingProgress
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{byAccount: map[string]entities.OnboardingProgress{}}
}

func (m *memProgressRepo) GetByAccountID(_ context.Context, accountID string) (entities.OnboardingProgress, error) {
	return m.byAccount[accountID], nil
}

func (m *memProgressRepo) Upsert(_ context.Context, p entities.OnboardingProgress) (entities.OnboardingProgress, error) {
	m.byAccount[p.AccountID] = p
	return p, nil
}

func (m *memProgressRepo) DeleteByAccountID(_ context.Context, accountID string) (bool, error) {
	_, ok := m.byAccount[accountID]
	delete(m.byAccount, accountID)
	return ok, nil
}

// TestEstimateLifecycle drives an estimate through the entire state machine
// against in-memory repositories: create, set standards, validate, resolve
// every issue, submit, confirm the terminal state cannot be left, and
// finally delete with the full cascade.
func TestEstimateLifecycle(t *testing.T) {
	ctx := context.Background()
	estimateRepo := newMemEstimateRepo()
	itemRepo := newMemItemRepo()
	issueRepo := newMemIssueRepo()
	standardsRepo := newMemStandardsRepo()
	progressRepo := newMemProgressRepo()

	onboarding := NewOnboardingUseCase(progressRepo)
	estimates := NewEstimateUseCase(estimateRepo, itemRepo, issueRepo, standardsRepo, onboarding, rand.New(rand.NewSource(7)))
	issues := NewValidationIssueUseCase(issueRepo, estimateRepo)
	standards := NewStandardsUseCase(standardsRepo, onboarding)

	detail, err := estimates.Create(ctx, CreateEstimateInput{
		AccountID:   "acct-1",
		Name:        "Office Buildout",
		ProjectType: entities.ProjectTypeCommercial,
		TotalArea:   2400,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	estimateID := detail.Estimate.ID
	if detail.Estimate.Status != entities.EstimateStatusDraft {
		t.Fatalf("expected draft after create, got %s", detail.Estimate.Status)
	}
	if len(detail.Items) != len(seedCatalog) || len(detail.Issues) != 3 {
		t.Fatalf("unexpected seed counts: %d items, %d issues", len(detail.Items), len(detail.Issues))
	}

	// Validation must refuse until standards exist.
	if _, err := estimates.Validate(ctx, estimateID); !errors.Is(err, ErrStandardsRequired) {
		t.Fatalf("expected ErrStandardsRequired, got %v", err)
	}

	if _, err := standards.Upsert(ctx, "acct-1", validStandardsInput()); err != nil {
		t.Fatalf("standards upsert: %v", err)
	}

	// Submission must refuse before validation.
	if _, err := estimates.Submit(ctx, estimateID); !errors.Is(err, ErrEstimateNotValidated) {
		t.Fatalf("expected ErrEstimateNotValidated, got %v", err)
	}

	res, err := estimates.Validate(ctx, estimateID)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if res.Estimate.Status != entities.EstimateStatusValidating {
		t.Fatalf("expected validating, got %s", res.Estimate.Status)
	}
	if res.ConfidenceScore < minConfidenceScore || res.ConfidenceScore > maxConfidenceScore {
		t.Fatalf("score %d out of range", res.ConfidenceScore)
	}

	// Still not submittable while issues remain.
	if _, err := estimates.Submit(ctx, estimateID); !errors.Is(err, ErrEstimateNotValidated) {
		t.Fatalf("expected ErrEstimateNotValidated while validating, got %v", err)
	}

	open, err := issues.ListByEstimateID(ctx, estimateID)
	if err != nil {
		t.Fatalf("list issues: %v", err)
	}
	for _, is := range open {
		if !is.Status.Unresolved() {
			continue
		}
		if _, err := issues.Resolve(ctx, is.ID, ResolveIssueInput{Resolution: "reviewed"}); err != nil {
			t.Fatalf("resolve %s: %v", is.ID, err)
		}
	}

	got, err := estimates.Get(ctx, estimateID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Estimate.Status != entities.EstimateStatusValidated {
		t.Fatalf("expected validated after resolving all issues, got %s", got.Estimate.Status)
	}

	submitted, err := estimates.Submit(ctx, estimateID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submitted.Status != entities.EstimateStatusSubmitted {
		t.Fatalf("expected submitted, got %s", submitted.Status)
	}

	// The machine only moves forward: a second submission is refused.
	if _, err := estimates.Submit(ctx, estimateID); !errors.Is(err, ErrEstimateNotValidated) {
		t.Fatalf("expected ErrEstimateNotValidated on resubmit, got %v", err)
	}

	// Nor can a submitted estimate be pulled back through validation.
	if _, err := estimates.Validate(ctx, estimateID); !errors.Is(err, ErrEstimateFinalized) {
		t.Fatalf("expected ErrEstimateFinalized on re-validate, got %v", err)
	}
	after, err := estimates.Get(ctx, estimateID)
	if err != nil {
		t.Fatalf("get after re-validate: %v", err)
	}
	if after.Estimate.Status != entities.EstimateStatusSubmitted {
		t.Fatalf("expected submitted to stay terminal, got %s", after.Estimate.Status)
	}

	progress, err := onboarding.GetProgress(ctx, "acct-1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if !progress.EstimateCreated || !progress.StandardsSet || !progress.EstimateSubmitted {
		t.Fatalf("expected checklist flags set: %+v", progress)
	}

	// Deleting the estimate cascades to its items and issues, and a
	// subsequent lookup reports not found.
	cascade, err := estimates.Delete(ctx, estimateID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cascade.ItemsDeleted == 0 || cascade.IssuesDeleted == 0 || len(cascade.Errors) != 0 {
		t.Fatalf("unexpected cascade result: %+v", cascade)
	}
	if _, err := estimates.Get(ctx, estimateID); !errors.Is(err, ErrEstimateNotFound) {
		t.Fatalf("expected ErrEstimateNotFound after delete, got %v", err)
	}
}
