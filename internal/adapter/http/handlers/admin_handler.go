package handlers

import (
	"errors"
	"net/http"

	"buildready/internal/usecase"
	"buildready/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler hosts the demo-reset housekeeping endpoint.

type AdminHandler struct {
	usecase usecase.IResetUseCase
}

func NewAdminHandler(uc usecase.IResetUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) ResetAccount(c *gin.Context) {
	res, err := h.usecase.ResetAccount(c.Request.Context(), accountID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAccountID) {
			writeError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
			return
		}
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, res)
}
