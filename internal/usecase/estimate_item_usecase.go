package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound        = errors.New("estimate item not found")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrInvalidMaterialName = errors.New("invalid material name")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidUnitPrice    = errors.New("invalid unit price")
)

// AddItemInput is the command payload for adding a line item to an estimate.
type AddItemInput struct {
	MaterialID   string
	MaterialName string
	Category     string
	Quantity     float64
	Unit         string
	UnitPrice    int64
	WasteFactor  *float64
	Description  string
	PriceSource  string
	Notes        string
}

// IEstimateItemUseCase owns line-item mutation. Deliberately, item changes do
// not touch the parent estimate's total cost, and nothing here blocks edits
// on submitted estimates; both match the onboarding demo's contract.

type IEstimateItemUseCase interface {
	Add(ctx context.Context, estimateID string, in AddItemInput) (entities.EstimateItem, error)
	Update(ctx context.Context, id string, patch interfaces.EstimateItemPatch) (entities.EstimateItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type EstimateItemUseCase struct {
	repo         interfaces.IEstimateItemRepository
	estimateRepo interfaces.IEstimateRepository
}

var _ IEstimateItemUseCase = (*EstimateItemUseCase)(nil)

func NewEstimateItemUseCase(repo interfaces.IEstimateItemRepository, estimateRepo interfaces.IEstimateRepository) *EstimateItemUseCase {
	return &EstimateItemUseCase{repo: repo, estimateRepo: estimateRepo}
}

func (u *EstimateItemUseCase) Add(ctx context.Context, estimateID string, in AddItemInput) (entities.EstimateItem, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.EstimateItem{}, ErrInvalidEstimateID
	}
	name := strings.TrimSpace(in.MaterialName)
	if name == "" {
		return entities.EstimateItem{}, ErrInvalidMaterialName
	}
	if in.Quantity <= 0 {
		return entities.EstimateItem{}, ErrInvalidQuantity
	}
	if in.UnitPrice < 0 {
		return entities.EstimateItem{}, ErrInvalidUnitPrice
	}

	e, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if e.ID == "" {
		return entities.EstimateItem{}, ErrEstimateNotFound
	}

	now := time.Now().UTC()
	it := entities.EstimateItem{
		ID:           uuid.NewString(),
		EstimateID:   estimateID,
		MaterialID:   strings.TrimSpace(in.MaterialID),
		MaterialName: name,
		Category:     strings.TrimSpace(in.Category),
		Quantity:     in.Quantity,
		Unit:         strings.TrimSpace(in.Unit),
		UnitPrice:    in.UnitPrice,
		TotalPrice:   int64(in.Quantity * float64(in.UnitPrice)),
		WasteFactor:  in.WasteFactor,
		Description:  strings.TrimSpace(in.Description),
		PriceSource:  strings.TrimSpace(in.PriceSource),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, it)
}

func (u *EstimateItemUseCase) Update(ctx context.Context, id string, patch interfaces.EstimateItemPatch) (entities.EstimateItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateItem{}, ErrInvalidItemID
	}
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return entities.EstimateItem{}, ErrInvalidQuantity
	}
	if patch.UnitPrice != nil && *patch.UnitPrice < 0 {
		return entities.EstimateItem{}, ErrInvalidUnitPrice
	}

	// When quantity or price changes and the caller did not pin a total,
	// keep the line's own total consistent.
	if patch.TotalPrice == nil && (patch.Quantity != nil || patch.UnitPrice != nil) {
		existing, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.EstimateItem{}, err
		}
		if existing.ID == "" {
			return entities.EstimateItem{}, ErrItemNotFound
		}
		qty := existing.Quantity
		if patch.Quantity != nil {
			qty = *patch.Quantity
		}
		price := existing.UnitPrice
		if patch.UnitPrice != nil {
			price = *patch.UnitPrice
		}
		total := int64(qty * float64(price))
		patch.TotalPrice = &total
	}

	updated, err := u.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if updated.ID == "" {
		return entities.EstimateItem{}, ErrItemNotFound
	}
	return updated, nil
}

func (u *EstimateItemUseCase) Delete(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidItemID
	}
	found, err := u.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrItemNotFound
	}
	return true, nil
}
