package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"
)

var (
	ErrStandardsNotFound     = errors.New("standards not found")
	ErrInvalidWastePct       = errors.New("waste factor must be between 0 and 100")
	ErrInvalidCeilingHeight  = errors.New("ceiling height must be between 7ft and 30ft")
	ErrInvalidFlooringMethod = errors.New("invalid flooring installation method")
	ErrInvalidHVACBrand      = errors.New("invalid hvac brand")
)

// UpsertStandardsInput is the standards-wizard payload. Required fields must
// all be present and in range; Advanced is the open set of optional
// category-specific settings.
type UpsertStandardsInput struct {
	DrywallWastePct      float64
	FlooringWastePct     float64
	CeilingHeightInches  int
	FlooringInstallation string
	PreferredHVACBrand   string
	Advanced             map[string]string
}

type IStandardsUseCase interface {
	Upsert(ctx context.Context, accountID string, in UpsertStandardsInput) (entities.CompanyStandards, error)
	Get(ctx context.Context, accountID string) (entities.CompanyStandards, error)
}

type StandardsUseCase struct {
	repo    interfaces.IStandardsRepository
	tracker interfaces.IProgressTracker
}

var _ IStandardsUseCase = (*StandardsUseCase)(nil)

func NewStandardsUseCase(repo interfaces.IStandardsRepository, tracker interfaces.IProgressTracker) *StandardsUseCase {
	return &StandardsUseCase{repo: repo, tracker: tracker}
}

func (u *StandardsUseCase) Upsert(ctx context.Context, accountID string, in UpsertStandardsInput) (entities.CompanyStandards, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.CompanyStandards{}, ErrInvalidAccountID
	}
	if in.DrywallWastePct < 0 || in.DrywallWastePct > 100 {
		return entities.CompanyStandards{}, ErrInvalidWastePct
	}
	if in.FlooringWastePct < 0 || in.FlooringWastePct > 100 {
		return entities.CompanyStandards{}, ErrInvalidWastePct
	}
	if in.CeilingHeightInches < entities.MinCeilingHeightInches || in.CeilingHeightInches > entities.MaxCeilingHeightInches {
		return entities.CompanyStandards{}, ErrInvalidCeilingHeight
	}
	method := strings.ToLower(strings.TrimSpace(in.FlooringInstallation))
	if !containsString(entities.FlooringMethods, method) {
		return entities.CompanyStandards{}, ErrInvalidFlooringMethod
	}
	brand := strings.ToLower(strings.TrimSpace(in.PreferredHVACBrand))
	if !containsString(entities.HVACBrands, brand) {
		return entities.CompanyStandards{}, ErrInvalidHVACBrand
	}

	now := time.Now().UTC()
	s := entities.CompanyStandards{
		AccountID:            accountID,
		DrywallWastePct:      in.DrywallWastePct,
		FlooringWastePct:     in.FlooringWastePct,
		CeilingHeightInches:  in.CeilingHeightInches,
		FlooringInstallation: method,
		PreferredHVACBrand:   brand,
		Advanced:             in.Advanced,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// Upsert preserves the original creation timestamp when a record exists.
	if existing, err := u.repo.GetByAccountID(ctx, accountID); err != nil {
		return entities.CompanyStandards{}, err
	} else if existing.AccountID != "" {
		s.CreatedAt = existing.CreatedAt
	}

	saved, err := u.repo.Upsert(ctx, s)
	if err != nil {
		return entities.CompanyStandards{}, err
	}

	if u.tracker != nil {
		if err := u.tracker.StandardsSet(ctx, accountID); err != nil {
			log.Printf("[standards][usecase] progress tracking failed account_id=%s err=%v", accountID, err)
		}
	}
	return saved, nil
}

func (u *StandardsUseCase) Get(ctx context.Context, accountID string) (entities.CompanyStandards, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.CompanyStandards{}, ErrInvalidAccountID
	}
	s, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return entities.CompanyStandards{}, err
	}
	if s.AccountID == "" {
		return entities.CompanyStandards{}, ErrStandardsNotFound
	}
	return s, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
