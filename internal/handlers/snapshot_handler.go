package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/models"
	"depotlens/internal/pagination"
	"depotlens/internal/services"
)

// SnapshotHandler handles portfolio value snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// RecordSnapshotRequest represents the request payload for recording a snapshot.
type RecordSnapshotRequest struct {
	RecordedAt *time.Time `json:"recorded_at"`
}

// SnapshotResponse wraps a single snapshot.
type SnapshotResponse struct {
	Snapshot *models.PortfolioSnapshot `json:"snapshot"`
}

// RecordSnapshot handles recording the current portfolio value.
// @Summary     Record portfolio snapshot
// @Description Record invested and current portfolio value (pipeline endpoint). Defaults to now.
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       X-API-Key header   string                true  "Pipeline API key"
// @Param       request   body     RecordSnapshotRequest false "Snapshot parameters"
// @Success     200       {object} SnapshotResponse      "Snapshot recorded"
// @Failure     400       {object} ErrorResponse         "Invalid input"
// @Failure     401       {object} ErrorResponse         "Invalid API key"
// @Failure     503       {object} ErrorResponse         "Pipeline not configured"
// @Router      /pipeline/snapshots [post]
func (h *SnapshotHandler) RecordSnapshot(c *gin.Context) {
	var req RecordSnapshotRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	recordedAt := time.Now().UTC()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	snapshot, err := h.snapshotService.RecordSnapshot(recordedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SnapshotResponse{Snapshot: snapshot})
}

// GetSnapshots handles retrieving recorded portfolio snapshots.
// @Summary     Get portfolio snapshots
// @Description Get paginated portfolio snapshots for a date range, newest first. Defaults to the last 30 days.
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PortfolioSnapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolio/snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
	from, to, err := parseDateRange(c, 30*24*time.Hour)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.snapshotService.GetSnapshots(from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
