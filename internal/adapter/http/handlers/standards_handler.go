package handlers

import (
	"errors"
	"net/http"

	request "buildready/internal/adapter/http/dto/request"
	response "buildready/internal/adapter/http/dto/response"
	"buildready/internal/usecase"
	"buildready/pkg"

	"github.com/gin-gonic/gin"
)

type StandardsHandler struct {
	usecase usecase.IStandardsUseCase
}

func NewStandardsHandler(uc usecase.IStandardsUseCase) *StandardsHandler {
	return &StandardsHandler{usecase: uc}
}

func (h *StandardsHandler) UpsertStandards(c *gin.Context) {
	var payload request.UpsertStandardsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	saved, err := h.usecase.Upsert(c.Request.Context(), accountID(c), usecase.UpsertStandardsInput{
		DrywallWastePct:      *payload.DrywallWastePct,
		FlooringWastePct:     *payload.FlooringWastePct,
		CeilingHeightInches:  *payload.CeilingHeightInches,
		FlooringInstallation: payload.FlooringInstallation,
		PreferredHVACBrand:   payload.PreferredHVACBrand,
		Advanced:             payload.Advanced,
	})
	if err != nil {
		writeError(c, mapStandardsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStandards(saved))
}

func (h *StandardsHandler) GetStandards(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), accountID(c))
	if err != nil {
		writeError(c, mapStandardsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStandards(s))
}

func mapStandardsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccountID),
		errors.Is(err, usecase.ErrInvalidWastePct),
		errors.Is(err, usecase.ErrInvalidCeilingHeight),
		errors.Is(err, usecase.ErrInvalidFlooringMethod),
		errors.Is(err, usecase.ErrInvalidHVACBrand):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStandardsNotFound):
		return pkg.NewDomainErrorSimple("STANDARDS_NOT_FOUND", "Standards not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
