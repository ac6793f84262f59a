package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/models"
	"depotlens/internal/pagination"
	"depotlens/internal/services"
)

// PortfolioHandler handles portfolio entry requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	auditService     services.AuditServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer, auditService services.AuditServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, auditService: auditService}
}

// CreateEntryRequest represents the request payload for a manual portfolio entry.
type CreateEntryRequest struct {
	Symbol        string           `json:"symbol" binding:"required,ticker"`
	CompanyName   string           `json:"company_name" binding:"max=200"`
	PurchaseDate  string           `json:"purchase_date" binding:"required,date_only,not_future_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" binding:"required" swaggertype:"number"`
	Quantity      *decimal.Decimal `json:"quantity" binding:"required" swaggertype:"number"`
	Currency      string           `json:"currency" binding:"omitempty,iso4217"`
}

// EntryResponse wraps a single portfolio entry.
type EntryResponse struct {
	Entry *models.PortfolioEntry `json:"entry"`
}

// ClearResponse reports how many entries were removed.
type ClearResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// ListEntries handles listing portfolio entries.
// @Summary     List portfolio entries
// @Description Get a paginated list of purchase lots, newest purchase first
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PortfolioEntry] "Paginated entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) ListEntries(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.portfolioService.ListEntries(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateEntry handles adding a purchase lot by hand.
// @Summary     Create portfolio entry
// @Description Record a purchase lot. The total value is price times quantity.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateEntryRequest true "Entry details"
// @Success     201 {object} EntryResponse "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [post]
func (h *PortfolioHandler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	purchaseDate, err := time.Parse(time.DateOnly, req.PurchaseDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase_date must be YYYY-MM-DD"))
		return
	}

	entry, err := h.portfolioService.CreateEntry(services.EntryInput{
		Symbol:        req.Symbol,
		CompanyName:   req.CompanyName,
		PurchaseDate:  purchaseDate,
		PurchasePrice: *req.PurchasePrice,
		Quantity:      *req.Quantity,
		Currency:      req.Currency,
		Source:        models.EntrySourceManual,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorOf(c), "CREATE_ENTRY", "portfolio_entry", entry.ID, c.ClientIP(),
		map[string]interface{}{"symbol": entry.Symbol, "quantity": entry.Quantity, "purchase_price": entry.PurchasePrice})

	c.JSON(http.StatusCreated, EntryResponse{Entry: entry})
}

// GetEntry handles retrieving a single portfolio entry.
// @Summary     Get portfolio entry
// @Description Get a purchase lot by ID
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} EntryResponse "Entry details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{id} [get]
func (h *PortfolioHandler) GetEntry(c *gin.Context) {
	entry, err := h.portfolioService.GetEntry(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, EntryResponse{Entry: entry})
}

// DeleteEntry handles removing a single portfolio entry.
// @Summary     Delete portfolio entry
// @Description Delete a purchase lot by ID
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} MessageResponse "Entry deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{id} [delete]
func (h *PortfolioHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if err := h.portfolioService.DeleteEntry(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorOf(c), "DELETE_ENTRY", "portfolio_entry", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Portfolio entry deleted"})
}

// ClearEntries handles removing every portfolio entry.
// @Summary     Clear portfolio
// @Description Delete all purchase lots
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ClearResponse "Entries deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [delete]
func (h *PortfolioHandler) ClearEntries(c *gin.Context) {
	n, err := h.portfolioService.ClearEntries()
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorOf(c), "CLEAR_PORTFOLIO", "portfolio_entry", "", c.ClientIP(),
		map[string]interface{}{"deleted_count": n})

	c.JSON(http.StatusOK, ClearResponse{Message: "Portfolio cleared", DeletedCount: n})
}

// GetStats handles the portfolio summary.
// @Summary     Portfolio statistics
// @Description Invested amount, current value and profit or loss over all entries
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioStats "Portfolio statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/stats [get]
func (h *PortfolioHandler) GetStats(c *gin.Context) {
	stats, err := h.portfolioService.GetStats()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
