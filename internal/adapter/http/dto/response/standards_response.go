package response

import (
	"time"

	"buildready/internal/domain/entities"
)

type StandardsResponse struct {
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

func FromStandards(s entities.CompanyStandards) StandardsResponse {
	return StandardsResponse{
		AccountID:            s.AccountID,
		DrywallWastePct:      s.DrywallWastePct,
		FlooringWastePct:     s.FlooringWastePct,
		CeilingHeightInches:  s.CeilingHeightInches,
		FlooringInstallation: s.FlooringInstallation,
		PreferredHVACBrand:   s.PreferredHVACBrand,
		Advanced:             s.Advanced,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
