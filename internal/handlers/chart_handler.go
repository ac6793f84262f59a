package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"depotlens/internal/services"
)

// ChartHandler serves chart data for the dashboard.
type ChartHandler struct {
	chartService services.ChartServicer
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(chartService services.ChartServicer) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// ProfitLossResponse wraps the profit and loss bars.
type ProfitLossResponse struct {
	Data []services.ProfitLossBar `json:"data"`
}

// TrendingResponse wraps the trending board.
type TrendingResponse struct {
	Data []services.TrendingStock `json:"data"`
}

// Allocation handles the allocation pie chart.
// @Summary     Portfolio allocation
// @Description Share of each position in the portfolio value, largest first
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.AllocationChart "Allocation"
// @Failure     404 {object} ErrorResponse "No portfolio entries"
// @Router      /charts/portfolio/allocation [get]
func (h *ChartHandler) Allocation(c *gin.Context) {
	chart, err := h.chartService.Allocation()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// Performance handles the portfolio value line chart.
// @Summary     Portfolio performance
// @Description Daily portfolio and invested value over the last 180 days
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PerformanceChart "Performance series"
// @Failure     404 {object} ErrorResponse "No portfolio entries"
// @Router      /charts/portfolio/performance [get]
func (h *ChartHandler) Performance(c *gin.Context) {
	chart, err := h.chartService.Performance(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// VersusETF handles the portfolio versus ETF chart.
// @Summary     Portfolio versus ETF
// @Description Portfolio and ETF performance, both starting at 100
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Param       symbol path  string true  "ETF symbol"
// @Param       days   query int    false "Number of days (default 180)"
// @Success     200 {object} services.ETFComparisonChart "Comparison series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "No portfolio entries or ETF not found"
// @Failure     502 {object} ErrorResponse "Market data provider unavailable"
// @Router      /charts/portfolio/vs-etf/{symbol} [get]
func (h *ChartHandler) VersusETF(c *gin.Context) {
	days, err := queryInt(c, "days", services.PerformanceWindowDays, 1, services.MaxHistoryDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	chart, err := h.chartService.VersusETF(c.Request.Context(), c.Param("symbol"), days)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// ProfitLoss handles the profit and loss bar chart.
// @Summary     Profit and loss per position
// @Description Result of every priced position, best first
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ProfitLossResponse "Profit and loss bars"
// @Failure     404 {object} ErrorResponse "No portfolio entries"
// @Router      /charts/portfolio/profit-loss [get]
func (h *ChartHandler) ProfitLoss(c *gin.Context) {
	bars, err := h.chartService.ProfitLoss()
	if err != nil {
		respondWithError(c, err)
		return
	}
	if bars == nil {
		bars = []services.ProfitLossBar{}
	}
	c.JSON(http.StatusOK, ProfitLossResponse{Data: bars})
}

// Trending handles the trending board.
// @Summary     Trending stocks
// @Description Daily change of a fixed list of popular stocks
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} TrendingResponse "Trending stocks"
// @Router      /charts/market/trending [get]
func (h *ChartHandler) Trending(c *gin.Context) {
	c.JSON(http.StatusOK, TrendingResponse{Data: h.chartService.Trending(c.Request.Context())})
}
