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

type ValidationIssueHandler struct {
	usecase usecase.IValidationIssueUseCase
}

func NewValidationIssueHandler(uc usecase.IValidationIssueUseCase) *ValidationIssueHandler {
	return &ValidationIssueHandler{usecase: uc}
}

func (h *ValidationIssueHandler) ResolveIssue(c *gin.Context) {
	var payload request.ResolveIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	resolved, err := h.usecase.Resolve(c.Request.Context(), c.Param("id"), usecase.ResolveIssueInput{
		Resolution: payload.Resolution,
		AssignedTo: payload.AssignedTo,
	})
	if err != nil {
		writeError(c, mapIssueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromValidationIssue(resolved))
}

func (h *ValidationIssueHandler) ListIssues(c *gin.Context) {
	issues, err := h.usecase.ListByEstimateID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapIssueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromValidationIssues(issues))
}

func mapIssueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIssueID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrMissingResolution):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIssueNotFound):
		return pkg.NewDomainErrorSimple("ISSUE_NOT_FOUND", "Validation issue not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIssueAlreadyResolved):
		return pkg.NewDomainError("PRECONDITION_FAILED", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
