package request

type AddItemRequest struct {
	MaterialID   string   `json:"material_id"`
	MaterialName string   `json:"material_name" binding:"required"`
	Category     string   `json:"category"`
	Quantity     float64  `json:"quantity" binding:"required"`
	Unit         string   `json:"unit"`
	UnitPrice    int64    `json:"unit_price"`
	WasteFactor  *float64 `json:"waste_factor"`
	Description  string   `json:"description"`
	PriceSource  string   `json:"price_source"`
	Notes        string   `json:"notes"`
}

type UpdateItemRequest struct {
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *int64   `json:"unit_price"`
	TotalPrice  *int64   `json:"total_price"`
	WasteFactor *float64 `json:"waste_factor"`
	Notes       *string  `json:"notes"`
}
