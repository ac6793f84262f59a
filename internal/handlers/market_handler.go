package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/marketdata"
	"depotlens/internal/pagination"
	"depotlens/internal/services"
)

// DefaultHistoryDays is the history length when days is not given.
const DefaultHistoryDays = 365

// MarketHandler handles market data requests.
type MarketHandler struct {
	marketService services.MarketServicer
	auditService  services.AuditServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService services.MarketServicer, auditService services.AuditServicer) *MarketHandler {
	return &MarketHandler{marketService: marketService, auditService: auditService}
}

// CompareRequest represents the request payload for an ETF comparison.
type CompareRequest struct {
	ETFSymbol string `json:"etf_symbol" binding:"omitempty,ticker"`
	StartDate string `json:"start_date" binding:"required,date_only,not_future_date"`
}

// SearchResponse wraps symbol search results.
type SearchResponse struct {
	Query   string                    `json:"query"`
	Results []marketdata.SearchResult `json:"results"`
}

// HistoryResponse wraps daily candles of one symbol.
type HistoryResponse struct {
	Symbol string              `json:"symbol"`
	Days   int                 `json:"days"`
	Data   []marketdata.Candle `json:"data"`
}

// ETFListResponse wraps the popular ETF catalogue.
type ETFListResponse struct {
	ETFs []marketdata.Listing `json:"etfs"`
}

// GetQuote handles a real-time quote lookup.
// @Summary     Get quote
// @Description Current price and daily change of a symbol
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} marketdata.Quote "Quote"
// @Failure     400 {object} ErrorResponse "Invalid symbol"
// @Failure     404 {object} ErrorResponse "Symbol not found"
// @Failure     502 {object} ErrorResponse "Market data provider unavailable"
// @Router      /market/quote/{symbol} [get]
func (h *MarketHandler) GetQuote(c *gin.Context) {
	quote, err := h.marketService.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Search handles a symbol search.
// @Summary     Search symbols
// @Description Search tickers by name or symbol (at most 10 results)
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Param       q query string true "Search text"
// @Success     200 {object} SearchResponse "Matching symbols"
// @Failure     400 {object} ErrorResponse "Missing query"
// @Failure     502 {object} ErrorResponse "Market data provider unavailable"
// @Router      /market/search [get]
func (h *MarketHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "q is required"))
		return
	}

	results, err := h.marketService.Search(c.Request.Context(), query)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if results == nil {
		results = []marketdata.SearchResult{}
	}

	c.JSON(http.StatusOK, SearchResponse{Query: query, Results: results})
}

// GetProfile handles a company profile lookup.
// @Summary     Get company profile
// @Description Company name, exchange, industry and related data of a symbol
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} marketdata.Profile "Company profile"
// @Failure     404 {object} ErrorResponse "Symbol not found"
// @Failure     502 {object} ErrorResponse "Market data provider unavailable"
// @Router      /market/profile/{symbol} [get]
func (h *MarketHandler) GetProfile(c *gin.Context) {
	profile, err := h.marketService.GetProfile(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetHistorical handles daily price history.
// @Summary     Get price history
// @Description Daily candles of a symbol
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Param       symbol path  string true  "Ticker symbol"
// @Param       days   query int    false "Number of days (default 365)"
// @Success     200 {object} HistoryResponse "Daily candles"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Symbol not found"
// @Failure     502 {object} ErrorResponse "Market data provider unavailable"
// @Router      /market/historical/{symbol} [get]
func (h *MarketHandler) GetHistorical(c *gin.Context) {
	days, err := queryInt(c, "days", DefaultHistoryDays, 1, services.MaxHistoryDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	symbol := strings.ToUpper(c.Param("symbol"))
	candles, err := h.marketService.GetHistory(c.Request.Context(), symbol, days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Symbol: symbol, Days: days, Data: candles})
}

// PopularETFs handles the ETF catalogue.
// @Summary     Popular ETFs
// @Description ETFs offered for comparison
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ETFListResponse "ETF catalogue"
// @Router      /market/etfs [get]
func (h *MarketHandler) PopularETFs(c *gin.Context) {
	c.JSON(http.StatusOK, ETFListResponse{ETFs: h.marketService.PopularETFs()})
}

// UpdatePrices handles refreshing the current price of every portfolio entry.
// @Summary     Update portfolio prices
// @Description Fetch current quotes for all portfolio symbols and store them
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PriceUpdateResult "Update summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /market/portfolio/update [post]
func (h *MarketHandler) UpdatePrices(c *gin.Context) {
	result, err := h.marketService.UpdatePrices(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorOf(c), "UPDATE_PRICES", "portfolio_entry", "", c.ClientIP(),
		map[string]interface{}{"updated_count": result.UpdatedCount, "total_entries": result.TotalEntries})

	c.JSON(http.StatusOK, result)
}

// RefreshPrices is the pipeline variant of UpdatePrices.
// @Summary     Refresh portfolio prices
// @Description Fetch current quotes for all portfolio symbols (pipeline endpoint)
// @Tags        pipeline
// @Produce     json
// @Param       X-API-Key header   string                    true "Pipeline API key"
// @Success     200       {object} services.PriceUpdateResult     "Update summary"
// @Failure     401       {object} ErrorResponse                  "Invalid API key"
// @Failure     503       {object} ErrorResponse                  "Pipeline not configured"
// @Router      /pipeline/prices/refresh [post]
func (h *MarketHandler) RefreshPrices(c *gin.Context) {
	h.UpdatePrices(c)
}

// Compare handles comparing the portfolio with an ETF.
// @Summary     Compare with ETF
// @Description Compare the portfolio's performance with the same amount invested in an ETF on start_date
// @Tags        market
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CompareRequest true "Comparison parameters (etf_symbol defaults to SPY)"
// @Success     200 {object} services.ETFComparison "Comparison"
// @Failure     400 {object} ErrorResponse "Invalid input or prices not updated"
// @Failure     404 {object} ErrorResponse "No portfolio entries or ETF not found"
// @Failure     502 {object} ErrorResponse "Market data provider unavailable"
// @Router      /market/compare [post]
func (h *MarketHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date must be YYYY-MM-DD"))
		return
	}

	etf := req.ETFSymbol
	if etf == "" {
		etf = services.DefaultCompareETF
	}

	comparison, err := h.marketService.CompareWithETF(c.Request.Context(), etf, startDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// GetPriceRecords handles the stored price history of a symbol.
// @Summary     Stored prices
// @Description Prices recorded by portfolio refreshes, newest first. Defaults to the last 90 days.
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Param       symbol    path  string true  "Ticker symbol"
// @Param       from_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PriceRecord] "Paginated price records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /market/prices/{symbol} [get]
func (h *MarketHandler) GetPriceRecords(c *gin.Context) {
	from, to, err := parseDateRange(c, 90*24*time.Hour)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.marketService.GetPriceRecords(c.Param("symbol"), from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
