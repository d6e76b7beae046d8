package handlers

import (
	"errors"
	"net/http"

	request "buildready/internal/adapter/http/dto/request"
	response "buildready/internal/adapter/http/dto/response"
	"buildready/internal/domain/entities"
	"buildready/internal/usecase"
	"buildready/internal/usecase/interfaces"
	"buildready/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler exposes the estimate lifecycle over HTTP: creation with
// the seeded bill of materials, validation, submission and CRUD.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	detail, err := h.usecase.Create(c.Request.Context(), usecase.CreateEstimateInput{
		AccountID:   accountID(c),
		Name:        payload.Name,
		ProjectType: entities.ProjectType(payload.ProjectType),
		TotalArea:   payload.TotalArea,
		Notes:       payload.Notes,
		TotalCost:   payload.TotalCost,
	})
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	detail, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDetail(detail))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	status := entities.EstimateStatus(c.Query("status"))
	estimates, err := h.usecase.List(c.Request.Context(), accountID(c), status)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), interfaces.EstimatePatch{
		Name:      payload.Name,
		Notes:     payload.Notes,
		TotalCost: payload.TotalCost,
	})
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	res, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCascadeResult(res))
}

func (h *EstimateHandler) ValidateEstimate(c *gin.Context) {
	res, err := h.usecase.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromValidationResult(res))
}

func (h *EstimateHandler) SubmitEstimate(c *gin.Context) {
	updated, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateName),
		errors.Is(err, usecase.ErrInvalidProjectType),
		errors.Is(err, usecase.ErrInvalidTotalArea),
		errors.Is(err, usecase.ErrInvalidTotalCost),
		errors.Is(err, usecase.ErrInvalidStatusFilter),
		errors.Is(err, usecase.ErrInvalidAccountID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStandardsRequired),
		errors.Is(err, usecase.ErrEstimateEmpty),
		errors.Is(err, usecase.ErrEstimateFinalized),
		errors.Is(err, usecase.ErrEstimateNotValidated):
		return pkg.NewDomainError("PRECONDITION_FAILED", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
