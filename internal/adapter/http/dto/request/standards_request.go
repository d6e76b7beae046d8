package request

// UpsertStandardsRequest is the standards-wizard payload. Required fields
// bind as pointers so that a legitimate zero (0% waste) survives the
// required check.
type UpsertStandardsRequest struct {
	DrywallWastePct      *float64          `json:"drywall_waste_pct" binding:"required"`
	FlooringWastePct     *float64          `json:"flooring_waste_pct" binding:"required"`
	CeilingHeightInches  *int              `json:"ceiling_height_inches" binding:"required"`
	FlooringInstallation string            `json:"flooring_installation" binding:"required"`
	PreferredHVACBrand   string            `json:"preferred_hvac_brand" binding:"required"`
	Advanced             map[string]string `json:"advanced"`
}
