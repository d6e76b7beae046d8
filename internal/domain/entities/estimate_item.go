package entities

import "time"

// EstimateItem is a single line of an estimate's bill of materials.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// TotalPrice is quantity x unit price at the time the line was written; the
// engine does not recompute it (or the parent estimate's total) on update.

type EstimateItem struct {
	ID           string    `json:"id"`
	EstimateID   string    `json:"estimate_id"`
	MaterialID   string    `json:"material_id"`
	MaterialName string    `json:"material_name"`
	Category     string    `json:"category"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	UnitPrice    int64     `json:"unit_price"`
	TotalPrice   int64     `json:"total_price"`
	WasteFactor  *float64  `json:"waste_factor,omitempty"`
	Description  string    `json:"description,omitempty"`
	PriceSource  string    `json:"price_source,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
