package handlers

import (
	"errors"
	"net/http"

	request "buildready/internal/adapter/http/dto/request"
	response "buildready/internal/adapter/http/dto/response"
	"buildready/internal/usecase"
	"buildready/internal/usecase/interfaces"
	"buildready/pkg"

	"github.com/gin-gonic/gin"
)

type EstimateItemHandler struct {
	usecase usecase.IEstimateItemUseCase
}

func NewEstimateItemHandler(uc usecase.IEstimateItemUseCase) *EstimateItemHandler {
	return &EstimateItemHandler{usecase: uc}
}

func (h *EstimateItemHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	it, err := h.usecase.Add(c.Request.Context(), c.Param("id"), usecase.AddItemInput{
		MaterialID:   payload.MaterialID,
		MaterialName: payload.MaterialName,
		Category:     payload.Category,
		Quantity:     payload.Quantity,
		Unit:         payload.Unit,
		UnitPrice:    payload.UnitPrice,
		WasteFactor:  payload.WasteFactor,
		Description:  payload.Description,
		PriceSource:  payload.PriceSource,
		Notes:        payload.Notes,
	})
	if err != nil {
		writeError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateItem(it))
}

func (h *EstimateItemHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	it, err := h.usecase.Update(c.Request.Context(), c.Param("id"), interfaces.EstimateItemPatch{
		Quantity:    payload.Quantity,
		UnitPrice:   payload.UnitPrice,
		TotalPrice:  payload.TotalPrice,
		WasteFactor: payload.WasteFactor,
		Notes:       payload.Notes,
	})
	if err != nil {
		writeError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateItem(it))
}

func (h *EstimateItemHandler) DeleteItem(c *gin.Context) {
	ok, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func mapItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidMaterialName),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidUnitPrice):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Estimate item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
