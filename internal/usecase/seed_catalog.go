package usecase

import (
	"math/rand"
	"time"

	"buildready/internal/domain/entities"

	"github.com/google/uuid"
)

// The demo bill of materials: six categories, two sample materials each.
// Quantities, unit prices and waste factors are randomized per estimate
// within the bounds below; this is placeholder data for the onboarding flow,
// not a real takeoff.

type catalogEntry struct {
	materialID  string
	name        string
	category    string
	unit        string
	minQty      float64
	maxQty      float64
	minPrice    int64 // cents
	maxPrice    int64 // cents
	priceSource string
}

var seedCatalog = []catalogEntry{
	{materialID: "mat-drywall-58", name: "5/8\" Type X Drywall", category: "drywall", unit: "sheet", minQty: 40, maxQty: 120, minPrice: 1200, maxPrice: 1800, priceSource: "catalog"},
	{materialID: "mat-joint-compound", name: "Joint Compound (4.5 gal)", category: "drywall", unit: "bucket", minQty: 4, maxQty: 12, minPrice: 1500, maxPrice: 2200, priceSource: "catalog"},
	{materialID: "mat-lvp-plank", name: "Luxury Vinyl Plank", category: "flooring", unit: "sqft", minQty: 400, maxQty: 1200, minPrice: 250, maxPrice: 550, priceSource: "catalog"},
	{materialID: "mat-underlayment", name: "Flooring Underlayment", category: "flooring", unit: "roll", minQty: 4, maxQty: 10, minPrice: 3500, maxPrice: 5200, priceSource: "catalog"},
	{materialID: "mat-stud-2x4", name: "2x4x8 Stud", category: "framing", unit: "piece", minQty: 80, maxQty: 300, minPrice: 350, maxPrice: 650, priceSource: "catalog"},
	{materialID: "mat-osb-sheathing", name: "7/16\" OSB Sheathing", category: "framing", unit: "sheet", minQty: 30, maxQty: 90, minPrice: 1400, maxPrice: 2400, priceSource: "catalog"},
	{materialID: "mat-romex-12-2", name: "12/2 Romex Wire (250ft)", category: "electrical", unit: "roll", minQty: 2, maxQty: 8, minPrice: 8500, maxPrice: 12500, priceSource: "catalog"},
	{materialID: "mat-duplex-outlet", name: "Duplex Outlet", category: "electrical", unit: "piece", minQty: 20, maxQty: 60, minPrice: 180, maxPrice: 420, priceSource: "catalog"},
	{materialID: "mat-pex-pipe", name: "3/4\" PEX Pipe (100ft)", category: "plumbing", unit: "roll", minQty: 2, maxQty: 6, minPrice: 4500, maxPrice: 7800, priceSource: "catalog"},
	{materialID: "mat-ball-valve", name: "3/4\" Ball Valve", category: "plumbing", unit: "piece", minQty: 4, maxQty: 16, minPrice: 900, maxPrice: 1600, priceSource: "catalog"},
	{materialID: "mat-hvac-duct", name: "Flexible HVAC Duct (25ft)", category: "hvac", unit: "box", minQty: 3, maxQty: 10, minPrice: 3800, maxPrice: 6200, priceSource: "catalog"},
	{materialID: "mat-supply-register", name: "Supply Air Register", category: "hvac", unit: "piece", minQty: 6, maxQty: 20, minPrice: 1100, maxPrice: 2500, priceSource: "catalog"},
}

// Waste factor bounds applied to every seeded line, in percent.
const (
	seedMinWastePct = 5.0
	seedMaxWastePct = 15.0
)

func seedItems(r *rand.Rand, estimateID string, now time.Time) []entities.EstimateItem {
	items := make([]entities.EstimateItem, 0, len(seedCatalog))
	for _, c := range seedCatalog {
		qty := c.minQty + r.Float64()*(c.maxQty-c.minQty)
		// Whole units for piece-counted materials reads better in the demo UI.
		qty = float64(int(qty))
		if qty < c.minQty {
			qty = c.minQty
		}
		price := c.minPrice + r.Int63n(c.maxPrice-c.minPrice+1)
		waste := seedMinWastePct + r.Float64()*(seedMaxWastePct-seedMinWastePct)

		items = append(items, entities.EstimateItem{
			ID:           uuid.NewString(),
			EstimateID:   estimateID,
			MaterialID:   c.materialID,
			MaterialName: c.name,
			Category:     c.category,
			Quantity:     qty,
			Unit:         c.unit,
			UnitPrice:    price,
			TotalPrice:   int64(qty * float64(price)),
			WasteFactor:  &waste,
			PriceSource:  c.priceSource,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return items
}

// seedIssues returns the three issues attached to every new estimate: one of
// each type, all open.
func seedIssues(estimateID string, now time.Time) []entities.ValidationIssue {
	mk := func(t entities.IssueType, desc string) entities.ValidationIssue {
		return entities.ValidationIssue{
			ID:          uuid.NewString(),
			EstimateID:  estimateID,
			Type:        t,
			Status:      entities.IssueStatusOpen,
			Description: desc,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []entities.ValidationIssue{
		mk(entities.IssueTypeAmbiguity, "Ceiling height not specified for all rooms; assumed the company standard."),
		mk(entities.IssueTypeStandardsDeviation, "Drywall waste factor on this estimate differs from the company standard."),
		mk(entities.IssueTypePricingAnomaly, "Flooring unit price is outside the range of recent uploads."),
	}
}
