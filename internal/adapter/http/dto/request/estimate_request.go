package request

// CreateEstimateRequest is the estimate-creation payload. TotalCost is an
// optional override; when absent the seeded bill of materials is summed.
type CreateEstimateRequest struct {
	Name        string `json:"name" binding:"required"`
	ProjectType string `json:"project_type" binding:"required"`
	TotalArea   int    `json:"total_area" binding:"required"`
	Notes       string `json:"notes"`
	TotalCost   *int64 `json:"total_cost"`
}

// UpdateEstimateRequest is a partial update; absent fields are untouched.
// Status is never updatable through this payload.
type UpdateEstimateRequest struct {
	Name      *string `json:"name"`
	Notes     *string `json:"notes"`
	TotalCost *int64  `json:"total_cost"`
}
