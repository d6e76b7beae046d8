package response

import (
	"time"

	"buildready/internal/domain/entities"
)

type EstimateItemResponse struct {
	ID           string    `json:"id"`
	EstimateID   string    `json:"estimate_id"`
	MaterialID   string    `json:"material_id,omitempty"`
	MaterialName string    `json:"material_name"`
	Category     string    `json:"category,omitempty"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit,omitempty"`
	UnitPrice    int64     `json:"unit_price"`
	TotalPrice   int64     `json:"total_price"`
	WasteFactor  *float64  `json:"waste_factor,omitempty"`
	Description  string    `json:"description,omitempty"`
	PriceSource  string    `json:"price_source,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromEstimateItem(it entities.EstimateItem) EstimateItemResponse {
	return EstimateItemResponse{
		ID:           it.ID,
		EstimateID:   it.EstimateID,
		MaterialID:   it.MaterialID,
		MaterialName: it.MaterialName,
		Category:     it.Category,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		UnitPrice:    it.UnitPrice,
		TotalPrice:   it.TotalPrice,
		WasteFactor:  it.WasteFactor,
		Description:  it.Description,
		PriceSource:  it.PriceSource,
		Notes:        it.Notes,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

func FromEstimateItems(items []entities.EstimateItem) []EstimateItemResponse {
	out := make([]EstimateItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromEstimateItem(it))
	}
	return out
}
