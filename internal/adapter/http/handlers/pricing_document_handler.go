package handlers

import (
	"errors"
	"net/http"

	response "buildready/internal/adapter/http/dto/response"
	"buildready/internal/usecase"
	"buildready/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingFile = pkg.NewDomainErrorSimple("MISSING_FILE", "Multipart field 'file' is required", http.StatusBadRequest)

type PricingDocumentHandler struct {
	usecase usecase.IPricingDocumentUseCase
}

func NewPricingDocumentHandler(uc usecase.IPricingDocumentUseCase) *PricingDocumentHandler {
	return &PricingDocumentHandler{usecase: uc}
}

// UploadDocument accepts a multipart form with a single "file" field.
func (h *PricingDocumentHandler) UploadDocument(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, errMissingFile)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "Failed to read upload", err, http.StatusInternalServerError))
		return
	}
	defer f.Close()

	doc, err := h.usecase.Upload(c.Request.Context(), accountID(c), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPricingDocument(doc))
}

func (h *PricingDocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.usecase.List(c.Request.Context(), accountID(c))
	if err != nil {
		writeError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPricingDocuments(docs))
}

func (h *PricingDocumentHandler) DeleteDocument(c *gin.Context) {
	ok, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccountID),
		errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrInvalidFilename),
		errors.Is(err, usecase.ErrUnsupportedFileType):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Pricing document not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
