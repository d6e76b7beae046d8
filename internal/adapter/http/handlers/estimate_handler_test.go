package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buildready/internal/adapter/http/handlers/mocks"
	"buildready/internal/domain/entities"
	"buildready/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"name":"Kitchen"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("account header is threaded through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateEstimateInput) (usecase.EstimateDetail, error) {
				if in.AccountID != "acct-42" {
					t.Fatalf("expected header account id, got %q", in.AccountID)
				}
				return usecase.EstimateDetail{Estimate: entities.Estimate{ID: "e-1", AccountID: in.AccountID}}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"name":"Kitchen","project_type":"residential","total_area":900}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(AccountHeader, "acct-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("missing header falls back to the demo account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateEstimateInput) (usecase.EstimateDetail, error) {
				if in.AccountID != "demo-account" {
					t.Fatalf("expected demo account, got %q", in.AccountID)
				}
				return usecase.EstimateDetail{Estimate: entities.Estimate{ID: "e-1"}}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"name":"Kitchen","project_type":"residential","total_area":900}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		uc.EXPECT().Get(gomock.Any(), "e-404").Return(usecase.EstimateDetail{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/e-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		now := time.Now().UTC()
		uc.EXPECT().Get(gomock.Any(), "e-1").Return(usecase.EstimateDetail{
			Estimate: entities.Estimate{ID: "e-1", AccountID: "demo-account", Name: "Kitchen", Status: entities.EstimateStatusDraft, CreatedAt: now, UpdatedAt: now},
			Items:    []entities.EstimateItem{{ID: "it-1", EstimateID: "e-1"}},
			Issues:   []entities.ValidationIssue{{ID: "is-1", EstimateID: "e-1", Status: entities.IssueStatusOpen}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/e-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		estimate, ok := body["estimate"].(map[string]any)
		if !ok || estimate["id"] != "e-1" {
			t.Fatalf("unexpected body: %v", body)
		}
		if items, ok := body["items"].([]any); !ok || len(items) != 1 {
			t.Fatalf("expected one item in body: %v", body)
		}
	})
}

func TestEstimateHandler_ValidateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no standards is a precondition failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/validate", h.ValidateEstimate)

		uc.EXPECT().Validate(gomock.Any(), "e-1").Return(usecase.ValidationResult{}, usecase.ErrStandardsRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/e-1/validate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["message"] != "cannot validate without standards" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})

	t.Run("empty estimate is a precondition failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/validate", h.ValidateEstimate)

		uc.EXPECT().Validate(gomock.Any(), "e-1").Return(usecase.ValidationResult{}, usecase.ErrEstimateEmpty)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/e-1/validate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("finalized estimate is a precondition failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/validate", h.ValidateEstimate)

		uc.EXPECT().Validate(gomock.Any(), "e-1").Return(usecase.ValidationResult{}, usecase.ErrEstimateFinalized)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/e-1/validate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success reports score and issues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/validate", h.ValidateEstimate)

		score := 87
		uc.EXPECT().Validate(gomock.Any(), "e-1").Return(usecase.ValidationResult{
			Estimate:        entities.Estimate{ID: "e-1", Status: entities.EstimateStatusValidating, ConfidenceScore: &score},
			ConfidenceScore: score,
			Issues:          []entities.ValidationIssue{{ID: "is-1", EstimateID: "e-1", Type: entities.IssueTypeAmbiguity, Status: entities.IssueStatusOpen}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/e-1/validate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["confidence_score"] != float64(87) {
			t.Fatalf("unexpected score: %v", body["confidence_score"])
		}
	})
}

func TestEstimateHandler_SubmitEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not validated yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/submit", h.SubmitEstimate)

		uc.EXPECT().Submit(gomock.Any(), "e-1").Return(entities.Estimate{}, usecase.ErrEstimateNotValidated)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/e-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/submit", h.SubmitEstimate)

		uc.EXPECT().Submit(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Status: entities.EstimateStatusSubmitted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/e-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reports cascade result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

		uc.EXPECT().Delete(gomock.Any(), "e-1").Return(usecase.CascadeResult{ItemsDeleted: 12, IssuesDeleted: 3, Errors: []string{"items: throttled"}}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/e-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["issues_deleted"] != float64(3) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

		uc.EXPECT().Delete(gomock.Any(), "e-1").Return(usecase.CascadeResult{}, errors.New("ddb down"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/e-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
