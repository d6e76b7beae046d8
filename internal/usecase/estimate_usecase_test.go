package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"buildready/internal/domain/entities"
	mock_interfaces "buildready/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestEstimateUseCase(ctrl *gomock.Controller, seed int64) (
	*EstimateUseCase,
	*mock_interfaces.MockIEstimateRepository,
	*mock_interfaces.MockIEstimateItemRepository,
	*mock_interfaces.MockIValidationIssueRepository,
	*mock_interfaces.MockIStandardsRepository,
	*mock_interfaces.MockIProgressTracker,
) {
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
	issueRepo := mock_interfaces.NewMockIValidationIssueRepository(ctrl)
	standardsRepo := mock_interfaces.NewMockIStandardsRepository(ctrl)
	tracker := mock_interfaces.NewMockIProgressTracker(ctrl)
	uc := NewEstimateUseCase(repo, itemRepo, issueRepo, standardsRepo, tracker, rand.New(rand.NewSource(seed)))
	return uc, repo, itemRepo, issueRepo, standardsRepo, tracker
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("invalid account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		_, err := uc.Create(context.Background(), CreateEstimateInput{AccountID: "   ", Name: "Kitchen", ProjectType: entities.ProjectTypeResidential, TotalArea: 900})
		if !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("expected ErrInvalidAccountID, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		_, err := uc.Create(context.Background(), CreateEstimateInput{AccountID: "acct-1", Name: "  ", ProjectType: entities.ProjectTypeResidential, TotalArea: 900})
		if !errors.Is(err, ErrInvalidEstimateName) {
			t.Fatalf("expected ErrInvalidEstimateName, got %v", err)
		}
	})

	t.Run("invalid project type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		_, err := uc.Create(context.Background(), CreateEstimateInput{AccountID: "acct-1", Name: "Kitchen", ProjectType: "industrial", TotalArea: 900})
		if !errors.Is(err, ErrInvalidProjectType) {
			t.Fatalf("expected ErrInvalidProjectType, got %v", err)
		}
	})

	t.Run("invalid total area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		_, err := uc.Create(context.Background(), CreateEstimateInput{AccountID: "acct-1", Name: "Kitchen", ProjectType: entities.ProjectTypeResidential, TotalArea: 0})
		if !errors.Is(err, ErrInvalidTotalArea) {
			t.Fatalf("expected ErrInvalidTotalArea, got %v", err)
		}
	})

	t.Run("negative total cost override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		cost := int64(-1)
		_, err := uc.Create(context.Background(), CreateEstimateInput{AccountID: "acct-1", Name: "Kitchen", ProjectType: entities.ProjectTypeResidential, TotalArea: 900, TotalCost: &cost})
		if !errors.Is(err, ErrInvalidTotalCost) {
			t.Fatalf("expected ErrInvalidTotalCost, got %v", err)
		}
	})

	t.Run("success seeds items and issues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, itemRepo, issueRepo, _, tracker := newTestEstimateUseCase(ctrl, 42)

		var itemTotal int64
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.AccountID != "acct-1" || e.Name != "Kitchen Remodel" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Status != entities.EstimateStatusDraft {
					t.Fatalf("expected draft status, got %s", e.Status)
				}
				if e.ConfidenceScore != nil {
					t.Fatalf("expected no confidence score before validation")
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)
		itemRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error) {
				if len(items) != len(seedCatalog) {
					t.Fatalf("expected %d seeded items, got %d", len(seedCatalog), len(items))
				}
				for _, it := range items {
					if it.TotalPrice != int64(it.Quantity*float64(it.UnitPrice)) {
						t.Fatalf("total price mismatch on %s", it.MaterialName)
					}
					if it.WasteFactor == nil || *it.WasteFactor < seedMinWastePct || *it.WasteFactor > seedMaxWastePct {
						t.Fatalf("waste factor out of bounds on %s", it.MaterialName)
					}
					itemTotal += it.TotalPrice
				}
				return items, nil
			},
		)
		issueRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, issues []entities.ValidationIssue) ([]entities.ValidationIssue, error) {
				if len(issues) != 3 {
					t.Fatalf("expected 3 seeded issues, got %d", len(issues))
				}
				seen := map[entities.IssueType]bool{}
				for _, is := range issues {
					if is.Status != entities.IssueStatusOpen {
						t.Fatalf("expected open issue, got %s", is.Status)
					}
					seen[is.Type] = true
				}
				if len(seen) != 3 {
					t.Fatalf("expected one issue per type, got %v", seen)
				}
				return issues, nil
			},
		)
		tracker.EXPECT().EstimateCreated(gomock.Any(), "acct-1").Return(nil)

		res, err := uc.Create(context.Background(), CreateEstimateInput{AccountID: " acct-1 ", Name: " Kitchen Remodel ", ProjectType: entities.ProjectTypeResidential, TotalArea: 1200})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estimate.TotalCost != itemTotal {
			t.Fatalf("expected total cost %d from items, got %d", itemTotal, res.Estimate.TotalCost)
		}
		if len(res.Items) != len(seedCatalog) || len(res.Issues) != 3 {
			t.Fatalf("unexpected detail counts: %d items, %d issues", len(res.Items), len(res.Issues))
		}
	})

	t.Run("explicit total cost wins over items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, itemRepo, issueRepo, _, tracker := newTestEstimateUseCase(ctrl, 7)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.TotalCost != 990000 {
					t.Fatalf("expected overridden total cost, got %d", e.TotalCost)
				}
				return e, nil
			},
		)
		itemRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error) { return items, nil },
		)
		issueRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, issues []entities.ValidationIssue) ([]entities.ValidationIssue, error) { return issues, nil },
		)
		tracker.EXPECT().EstimateCreated(gomock.Any(), "acct-1").Return(nil)

		cost := int64(990000)
		_, err := uc.Create(context.Background(), CreateEstimateInput{AccountID: "acct-1", Name: "Warehouse", ProjectType: entities.ProjectTypeCommercial, TotalArea: 5000, TotalCost: &cost})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("tracker failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, itemRepo, issueRepo, _, tracker := newTestEstimateUseCase(ctrl, 7)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		itemRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error) { return items, nil },
		)
		issueRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, issues []entities.ValidationIssue) ([]entities.ValidationIssue, error) { return issues, nil },
		)
		tracker.EXPECT().EstimateCreated(gomock.Any(), "acct-1").Return(errors.New("ddb down"))

		_, err := uc.Create(context.Background(), CreateEstimateInput{AccountID: "acct-1", Name: "Addition", ProjectType: entities.ProjectTypeRenovation, TotalArea: 300})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_List(t *testing.T) {
	t.Run("invalid account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		_, err := uc.List(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("expected ErrInvalidAccountID, got %v", err)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		_, err := uc.List(context.Background(), "acct-1", "archived")
		if !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})

	t.Run("filters by status and sorts newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		now := time.Now().UTC()
		repo.EXPECT().ListByAccountID(gomock.Any(), "acct-1").Return([]entities.Estimate{
			{ID: "e-old", Status: entities.EstimateStatusDraft, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: "e-submitted", Status: entities.EstimateStatusSubmitted, CreatedAt: now.Add(-1 * time.Hour)},
			{ID: "e-new", Status: entities.EstimateStatusDraft, CreatedAt: now},
		}, nil)

		out, err := uc.List(context.Background(), "acct-1", entities.EstimateStatusDraft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 || out[0].ID != "e-new" || out[1].ID != "e-old" {
			t.Fatalf("unexpected listing: %+v", out)
		}
	})
}

func TestEstimateUseCase_Validate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, nil)

		_, err := uc.Validate(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("no standards on record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, standardsRepo, _ := newTestEstimateUseCase(ctrl, 1)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1", Status: entities.EstimateStatusDraft}, nil)
		standardsRepo.EXPECT().GetByAccountID(gomock.Any(), "acct-1").Return(entities.CompanyStandards{}, nil)

		_, err := uc.Validate(context.Background(), "e-1")
		if !errors.Is(err, ErrStandardsRequired) {
			t.Fatalf("expected ErrStandardsRequired, got %v", err)
		}
	})

	t.Run("empty estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, itemRepo, _, standardsRepo, _ := newTestEstimateUseCase(ctrl, 1)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1", Status: entities.EstimateStatusDraft}, nil)
		standardsRepo.EXPECT().GetByAccountID(gomock.Any(), "acct-1").Return(entities.CompanyStandards{AccountID: "acct-1"}, nil)
		itemRepo.EXPECT().ListByEstimateID(gomock.Any(), "e-1").Return(nil, nil)

		_, err := uc.Validate(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateEmpty) {
			t.Fatalf("expected ErrEstimateEmpty, got %v", err)
		}
	})

	t.Run("finalized estimates are not moved backward", func(t *testing.T) {
		score := 91
		for _, status := range []entities.EstimateStatus{entities.EstimateStatusValidated, entities.EstimateStatusSubmitted} {
			ctrl := gomock.NewController(t)
			uc, repo, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

			repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1", Status: status, ConfidenceScore: &score}, nil)

			_, err := uc.Validate(context.Background(), "e-1")
			if !errors.Is(err, ErrEstimateFinalized) {
				t.Fatalf("status %s: expected ErrEstimateFinalized, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("draws score and attaches issues", func(t *testing.T) {
		for seed := int64(0); seed < 5; seed++ {
			ctrl := gomock.NewController(t)
			uc, repo, itemRepo, issueRepo, standardsRepo, _ := newTestEstimateUseCase(ctrl, seed)

			repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1", Status: entities.EstimateStatusDraft}, nil)
			standardsRepo.EXPECT().GetByAccountID(gomock.Any(), "acct-1").Return(entities.CompanyStandards{AccountID: "acct-1"}, nil)
			itemRepo.EXPECT().ListByEstimateID(gomock.Any(), "e-1").Return([]entities.EstimateItem{{ID: "it-1"}}, nil)
			repo.EXPECT().UpdateValidationByID(gomock.Any(), "e-1", gomock.Any(), entities.EstimateStatusValidating).DoAndReturn(
				func(_ context.Context, id string, score int, status entities.EstimateStatus) (entities.Estimate, error) {
					if score < minConfidenceScore || score > maxConfidenceScore {
						t.Fatalf("seed %d: score %d out of range", seed, score)
					}
					s := score
					return entities.Estimate{ID: id, AccountID: "acct-1", Status: status, ConfidenceScore: &s}, nil
				},
			)
			issueRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, issues []entities.ValidationIssue) ([]entities.ValidationIssue, error) {
					if len(issues) < minGeneratedIssues || len(issues) > maxGeneratedIssues {
						t.Fatalf("seed %d: %d issues out of range", seed, len(issues))
					}
					for _, is := range issues {
						if !is.Type.Valid() {
							t.Fatalf("seed %d: invalid issue type %s", seed, is.Type)
						}
						if is.Status != entities.IssueStatusOpen && is.Status != entities.IssueStatusPendingReview {
							t.Fatalf("seed %d: unexpected issue status %s", seed, is.Status)
						}
						if is.EstimateID != "e-1" {
							t.Fatalf("seed %d: issue bound to wrong estimate %s", seed, is.EstimateID)
						}
					}
					return issues, nil
				},
			)

			res, err := uc.Validate(context.Background(), "e-1")
			if err != nil {
				t.Fatalf("seed %d: unexpected error: %v", seed, err)
			}
			if res.Estimate.Status != entities.EstimateStatusValidating {
				t.Fatalf("seed %d: expected validating status, got %s", seed, res.Estimate.Status)
			}
			ctrl.Finish()
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		run := func() (int, int) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, repo, itemRepo, issueRepo, standardsRepo, _ := newTestEstimateUseCase(ctrl, 99)

			repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1", Status: entities.EstimateStatusDraft}, nil)
			standardsRepo.EXPECT().GetByAccountID(gomock.Any(), "acct-1").Return(entities.CompanyStandards{AccountID: "acct-1"}, nil)
			itemRepo.EXPECT().ListByEstimateID(gomock.Any(), "e-1").Return([]entities.EstimateItem{{ID: "it-1"}}, nil)
			repo.EXPECT().UpdateValidationByID(gomock.Any(), "e-1", gomock.Any(), entities.EstimateStatusValidating).DoAndReturn(
				func(_ context.Context, id string, score int, status entities.EstimateStatus) (entities.Estimate, error) {
					return entities.Estimate{ID: id, Status: status}, nil
				},
			)
			issueRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, issues []entities.ValidationIssue) ([]entities.ValidationIssue, error) { return issues, nil },
			)

			res, err := uc.Validate(context.Background(), "e-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return res.ConfidenceScore, len(res.Issues)
		}

		s1, n1 := run()
		s2, n2 := run()
		if s1 != s2 || n1 != n2 {
			t.Fatalf("same seed diverged: score %d vs %d, issues %d vs %d", s1, s2, n1, n2)
		}
	})
}

func TestEstimateUseCase_Submit(t *testing.T) {
	t.Run("rejects anything but validated", func(t *testing.T) {
		for _, status := range []entities.EstimateStatus{
			entities.EstimateStatusDraft,
			entities.EstimateStatusValidating,
			entities.EstimateStatusSubmitted,
		} {
			ctrl := gomock.NewController(t)
			uc, repo, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

			repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1", Status: status}, nil)

			_, err := uc.Submit(context.Background(), "e-1")
			if !errors.Is(err, ErrEstimateNotValidated) {
				t.Fatalf("status %s: expected ErrEstimateNotValidated, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _, tracker := newTestEstimateUseCase(ctrl, 1)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1", Status: entities.EstimateStatusValidated}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "e-1", entities.EstimateStatusSubmitted).Return(
			entities.Estimate{ID: "e-1", AccountID: "acct-1", Status: entities.EstimateStatusSubmitted}, nil)
		tracker.EXPECT().EstimateSubmitted(gomock.Any(), "acct-1").Return(nil)

		out, err := uc.Submit(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.EstimateStatusSubmitted {
			t.Fatalf("expected submitted status, got %s", out.Status)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _, _ := newTestEstimateUseCase(ctrl, 1)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, nil)

		_, err := uc.Delete(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("cascade counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, itemRepo, issueRepo, _, _ := newTestEstimateUseCase(ctrl, 1)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1"}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "e-1").Return(true, nil)
		itemRepo.EXPECT().DeleteByEstimateID(gomock.Any(), "e-1").Return(12, nil)
		issueRepo.EXPECT().DeleteByEstimateID(gomock.Any(), "e-1").Return(3, nil)

		res, err := uc.Delete(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ItemsDeleted != 12 || res.IssuesDeleted != 3 || len(res.Errors) != 0 {
			t.Fatalf("unexpected cascade result: %+v", res)
		}
	})

	t.Run("cascade failure is collected, not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, itemRepo, issueRepo, _, _ := newTestEstimateUseCase(ctrl, 1)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", AccountID: "acct-1"}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "e-1").Return(true, nil)
		itemRepo.EXPECT().DeleteByEstimateID(gomock.Any(), "e-1").Return(0, errors.New("throttled"))
		issueRepo.EXPECT().DeleteByEstimateID(gomock.Any(), "e-1").Return(3, nil)

		res, err := uc.Delete(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Errors) != 1 || res.IssuesDeleted != 3 {
			t.Fatalf("unexpected cascade result: %+v", res)
		}
	})
}
