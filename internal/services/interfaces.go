package services

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"depotlens/internal/extraction"
	"depotlens/internal/marketdata"
	"depotlens/internal/models"
	"depotlens/internal/pagination"
)

// EntryInput holds the fields of a new portfolio entry.
type EntryInput struct {
	Symbol        string
	CompanyName   string
	PurchaseDate  time.Time
	PurchasePrice decimal.Decimal
	Quantity      decimal.Decimal
	Currency      string
	Source        models.EntrySource
	Confidence    *int
}

// PortfolioStats summarizes all portfolio entries. Amounts are rounded to two decimals.
type PortfolioStats struct {
	TotalEntries           int             `json:"total_entries"`
	TotalInvested          decimal.Decimal `json:"total_invested"`
	CurrentValue           decimal.Decimal `json:"current_value"`
	TotalProfitLoss        decimal.Decimal `json:"total_profit_loss"`
	TotalProfitLossPercent decimal.Decimal `json:"total_profit_loss_percent"`
}

// PortfolioServicer defines the contract for portfolio entry business logic.
type PortfolioServicer interface {
	ListEntries(page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioEntry], error)
	AllEntries() ([]models.PortfolioEntry, error)
	GetEntry(id string) (*models.PortfolioEntry, error)
	CreateEntry(in EntryInput) (*models.PortfolioEntry, error)
	DeleteEntry(id string) error
	ClearEntries() (int64, error)
	GetStats() (*PortfolioStats, error)
	ApplyPrices(prices map[string]decimal.Decimal, at time.Time) (int, error)
}

// SnapshotServicer defines the contract for portfolio value snapshots.
type SnapshotServicer interface {
	RecordSnapshot(recordedAt time.Time) (*models.PortfolioSnapshot, error)
	GetSnapshots(from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error)
}

// PriceUpdateResult reports the outcome of a portfolio price refresh.
type PriceUpdateResult struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
	TotalEntries int    `json:"total_entries"`
}

// PortfolioPerformance is the invested versus current value of the whole portfolio.
type PortfolioPerformance struct {
	InitialValue      decimal.Decimal `json:"initial_value"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	ProfitLossPercent float64         `json:"profit_loss_percent"`
}

// ETFPerformance is the performance of the same amount invested in an ETF.
type ETFPerformance struct {
	Symbol      string                  `json:"symbol"`
	Performance *marketdata.Performance `json:"performance"`
}

// ComparisonSummary tells whether the portfolio beat the ETF.
type ComparisonSummary struct {
	PortfolioOutperforms bool    `json:"portfolio_outperforms"`
	DifferencePercent    float64 `json:"difference_percent"`
}

// ETFComparison compares the portfolio with an ETF bought on the same start date.
type ETFComparison struct {
	Portfolio  PortfolioPerformance `json:"portfolio"`
	ETF        ETFPerformance       `json:"etf"`
	Comparison ComparisonSummary    `json:"comparison"`
}

// MarketServicer defines the contract for market data lookups and price refreshes.
type MarketServicer interface {
	GetQuote(ctx context.Context, symbol string) (*marketdata.Quote, error)
	Search(ctx context.Context, query string) ([]marketdata.SearchResult, error)
	GetProfile(ctx context.Context, symbol string) (*marketdata.Profile, error)
	GetHistory(ctx context.Context, symbol string, days int) ([]marketdata.Candle, error)
	PopularETFs() []marketdata.Listing
	UpdatePrices(ctx context.Context) (*PriceUpdateResult, error)
	CompareWithETF(ctx context.Context, etfSymbol string, startDate time.Time) (*ETFComparison, error)
	GetPriceRecords(symbol string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.PriceRecord], error)
}

// AllocationSlice is one position's share of the portfolio value.
type AllocationSlice struct {
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"company_name"`
	Value       decimal.Decimal `json:"value"`
	Quantity    decimal.Decimal `json:"quantity"`
	Percentage  float64         `json:"percentage"`
}

// AllocationChart is the pie chart of portfolio allocation.
type AllocationChart struct {
	Data       []AllocationSlice `json:"data"`
	TotalValue decimal.Decimal   `json:"total_value"`
}

// PerformancePoint is the portfolio value on one day.
type PerformancePoint struct {
	Date              string          `json:"date"`
	PortfolioValue    decimal.Decimal `json:"portfolio_value"`
	InvestedValue     decimal.Decimal `json:"invested_value"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	ProfitLossPercent float64         `json:"profit_loss_percent"`
}

// PerformanceChart is the daily portfolio value series.
type PerformanceChart struct {
	Data      []PerformancePoint `json:"data"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
}

// ETFComparisonPoint compares portfolio and ETF on one trading day, both normalized to 100.
type ETFComparisonPoint struct {
	Date                 string          `json:"date"`
	PortfolioPerformance float64         `json:"portfolio_performance"`
	ETFPerformance       float64         `json:"etf_performance"`
	PortfolioValue       decimal.Decimal `json:"portfolio_value"`
	ETFValue             decimal.Decimal `json:"etf_value"`
}

// ETFComparisonChart is the portfolio versus ETF line chart.
type ETFComparisonChart struct {
	Data          []ETFComparisonPoint `json:"data"`
	ETFSymbol     string               `json:"etf_symbol"`
	TotalInvested decimal.Decimal      `json:"total_invested"`
}

// ProfitLossBar is the result of one priced position.
type ProfitLossBar struct {
	Symbol            string          `json:"symbol"`
	CompanyName       string          `json:"company_name"`
	Invested          decimal.Decimal `json:"invested"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	ProfitLossPercent float64         `json:"profit_loss_percent"`
	Quantity          decimal.Decimal `json:"quantity"`
}

// TrendingStock is one row of the trending board. ChangePercent is nil when no quote was available.
type TrendingStock struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	ChangePercent *float64 `json:"change_percent"`
}

// ChartServicer defines the contract for chart data.
type ChartServicer interface {
	Allocation() (*AllocationChart, error)
	Performance(ctx context.Context) (*PerformanceChart, error)
	VersusETF(ctx context.Context, etfSymbol string, days int) (*ETFComparisonChart, error)
	ProfitLoss() ([]ProfitLossBar, error)
	Trending(ctx context.Context) []TrendingStock
}

// UploadResult is the response to a processed document upload.
type UploadResult struct {
	extraction.Outcome
	AutoCreated       bool                   `json:"auto_created"`
	AutoCreatedEntry  *models.PortfolioEntry `json:"auto_created_entry,omitempty"`
	AutoCreationError string                 `json:"auto_creation_error,omitempty"`
}

// DocumentServicer defines the contract for document uploads.
type DocumentServicer interface {
	ProcessUpload(ctx context.Context, filename string, content io.Reader) (*UploadResult, error)
}

// AuthServicer defines the contract for single-owner authentication.
type AuthServicer interface {
	Enabled() bool
	VerifyPassword(password string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(actor, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
