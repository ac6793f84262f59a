package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/services"
)

// UploadHandler handles purchase confirmation uploads.
type UploadHandler struct {
	documentService services.DocumentServicer
	auditService    services.AuditServicer
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(documentService services.DocumentServicer, auditService services.AuditServicer) *UploadHandler {
	return &UploadHandler{documentService: documentService, auditService: auditService}
}

// Upload handles a scanned or photographed purchase confirmation.
// @Summary     Upload purchase document
// @Description Recognize the document text, extract the purchase fields and create a portfolio entry when the result is trusted
// @Tags        portfolio
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Image or PDF (png, jpg, jpeg, gif, bmp, tiff, pdf)"
// @Success     200 {object} services.UploadResult "Extraction result"
// @Failure     400 {object} ErrorResponse "No file or unsupported file type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     413 {object} ErrorResponse "File too large"
// @Failure     422 {object} ErrorResponse "Recognition failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil || header.Filename == "" {
		respondWithError(c, apperrors.ErrNoFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer file.Close()

	result, err := h.documentService.ProcessUpload(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if result.AutoCreated && result.AutoCreatedEntry != nil {
		h.auditService.Log(actorOf(c), "AUTO_CREATE_ENTRY", "portfolio_entry", result.AutoCreatedEntry.ID, c.ClientIP(),
			map[string]interface{}{
				"symbol":     result.AutoCreatedEntry.Symbol,
				"confidence": result.Result.Confidence,
				"filename":   header.Filename,
			})
	}

	c.JSON(http.StatusOK, result)
}
