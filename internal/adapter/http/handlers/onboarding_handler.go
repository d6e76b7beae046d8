package handlers

import (
	"errors"
	"net/http"

	response "buildready/internal/adapter/http/dto/response"
	"buildready/internal/usecase"
	"buildready/pkg"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	usecase usecase.IOnboardingUseCase
}

func NewOnboardingHandler(uc usecase.IOnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{usecase: uc}
}

func (h *OnboardingHandler) GetProgress(c *gin.Context) {
	p, err := h.usecase.GetProgress(c.Request.Context(), accountID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAccountID) {
			writeError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
			return
		}
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromOnboardingProgress(p))
}
