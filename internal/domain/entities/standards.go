package entities

import "time"

// Flooring installation methods and HVAC brands accepted by the standards
// wizard. Free-form values are rejected so that downstream validation can
// rely on the enumeration.

var FlooringMethods = []string{"glue_down", "floating", "nail_down", "click_lock"}

var HVACBrands = []string{"carrier", "trane", "lennox", "goodman", "rheem"}

// Ceiling height bounds, in inches (7ft to 30ft).
const (
	MinCeilingHeightInches = 84
	MaxCeilingHeightInches = 360
)

// CompanyStandards holds an account's default estimation assumptions. One
// record per account; updates replace the previous values (no versioning).
//
// Storage model (DynamoDB):
//   - PK: account_id
//
// Advanced carries the optional category-specific fields (finish levels,
// preferred brands, framing type, ...) as an open string map.

type CompanyStandards struct {
	AccountID            string            `json:"account_id"`
	DrywallWastePct      float64           `json:"drywall_waste_pct"`
	FlooringWastePct     float64           `json:"flooring_waste_pct"`
	CeilingHeightInches  int               `json:"ceiling_height_inches"`
	FlooringInstallation string            `json:"flooring_installation"`
	PreferredHVACBrand   string            `json:"preferred_hvac_brand"`
	Advanced             map[string]string `json:"advanced,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}
