package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound    = errors.New("pricing document not found")
	ErrInvalidDocumentID   = errors.New("invalid document id")
	ErrInvalidFilename     = errors.New("invalid filename")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Extensions the upload endpoint accepts. Parsing never happens; the
// allow-list just keeps the demo storage from collecting arbitrary binaries.
var allowedDocumentExtensions = map[string]bool{
	".pdf":  true,
	".csv":  true,
	".xlsx": true,
	".xls":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type IPricingDocumentUseCase interface {
	Upload(ctx context.Context, accountID, filename, contentType string, r io.Reader) (entities.PricingDocument, error)
	List(ctx context.Context, accountID string) ([]entities.PricingDocument, error)
	// Delete removes the metadata row; a failed file removal is logged and
	// tolerated so the listing stays consistent.
	Delete(ctx context.Context, id string) (bool, error)
}

type PricingDocumentUseCase struct {
	repo    interfaces.IPricingDocumentRepository
	store   interfaces.IDocumentStore
	tracker interfaces.IProgressTracker
}

var _ IPricingDocumentUseCase = (*PricingDocumentUseCase)(nil)

func NewPricingDocumentUseCase(repo interfaces.IPricingDocumentRepository, store interfaces.IDocumentStore, tracker interfaces.IProgressTracker) *PricingDocumentUseCase {
	return &PricingDocumentUseCase{repo: repo, store: store, tracker: tracker}
}

func (u *PricingDocumentUseCase) Upload(ctx context.Context, accountID, filename, contentType string, r io.Reader) (entities.PricingDocument, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.PricingDocument{}, ErrInvalidAccountID
	}
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return entities.PricingDocument{}, ErrInvalidFilename
	}
	if !allowedDocumentExtensions[strings.ToLower(filepath.Ext(filename))] {
		return entities.PricingDocument{}, ErrUnsupportedFileType
	}

	storedPath, size, err := u.store.Save(ctx, accountID, filename, r)
	if err != nil {
		return entities.PricingDocument{}, err
	}

	d := entities.PricingDocument{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Filename:    filename,
		ContentType: strings.TrimSpace(contentType),
		SizeBytes:   size,
		StoredPath:  storedPath,
		UploadedAt:  time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		// Metadata write failed; try not to leave the file behind.
		if rmErr := u.store.Remove(ctx, storedPath); rmErr != nil {
			log.Printf("[document][usecase] orphan file cleanup failed path=%s err=%v", storedPath, rmErr)
		}
		return entities.PricingDocument{}, err
	}

	if u.tracker != nil {
		if err := u.tracker.DocumentUploaded(ctx, accountID); err != nil {
			log.Printf("[document][usecase] progress tracking failed account_id=%s err=%v", accountID, err)
		}
	}
	return created, nil
}

func (u *PricingDocumentUseCase) List(ctx context.Context, accountID string) ([]entities.PricingDocument, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}
	docs, err := u.repo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].UploadedAt.After(docs[j].UploadedAt) })
	return docs, nil
}

func (u *PricingDocumentUseCase) Delete(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidDocumentID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if d.ID == "" {
		return false, ErrDocumentNotFound
	}

	if err := u.store.Remove(ctx, d.StoredPath); err != nil {
		log.Printf("[document][usecase] file removal failed path=%s err=%v (continuing)", d.StoredPath, err)
	}

	found, err := u.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrDocumentNotFound
	}
	return true, nil
}
