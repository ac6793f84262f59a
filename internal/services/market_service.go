package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/logger"
	"depotlens/internal/marketdata"
	"depotlens/internal/models"
	"depotlens/internal/pagination"
)

// DefaultCompareETF is the ETF used when a comparison names none.
const DefaultCompareETF = "SPY"

// MaxHistoryDays bounds history requests.
const MaxHistoryDays = 3650

// marketService handles market data lookups and portfolio price refreshes.
type marketService struct {
	db        *gorm.DB
	provider  marketdata.Provider
	portfolio PortfolioServicer
	snapshots SnapshotServicer
	now       func() time.Time
}

// NewMarketService creates a new MarketServicer.
func NewMarketService(db *gorm.DB, provider marketdata.Provider, portfolio PortfolioServicer, snapshots SnapshotServicer) MarketServicer {
	return &marketService{
		db:        db,
		provider:  provider,
		portfolio: portfolio,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// marketError maps a provider failure to an AppError.
func marketError(err error, symbol string) error {
	if errors.Is(err, marketdata.ErrNotFound) || errors.Is(err, marketdata.ErrUnsupported) {
		return apperrors.WithMessage(apperrors.ErrQuoteUnavailable, fmt.Sprintf("Market data not found for symbol %s", symbol))
	}
	return apperrors.Wrap(apperrors.ErrMarketDataUnavailable, err)
}

func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	return symbol, nil
}

// GetQuote returns the latest quote for symbol.
func (s *marketService) GetQuote(ctx context.Context, symbol string) (*marketdata.Quote, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	q, err := s.provider.Quote(ctx, symbol)
	if err != nil {
		return nil, marketError(err, symbol)
	}
	return q, nil
}

// Search looks up symbols matching query.
func (s *marketService) Search(ctx context.Context, query string) ([]marketdata.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Search query is required")
	}
	results, err := s.provider.Search(ctx, query)
	if err != nil {
		if errors.Is(err, marketdata.ErrNotFound) {
			return []marketdata.SearchResult{}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrMarketDataUnavailable, err)
	}
	if results == nil {
		results = []marketdata.SearchResult{}
	}
	return results, nil
}

// GetProfile returns the company profile of symbol.
func (s *marketService) GetProfile(ctx context.Context, symbol string) (*marketdata.Profile, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	p, err := s.provider.Profile(ctx, symbol)
	if err != nil {
		return nil, marketError(err, symbol)
	}
	return p, nil
}

// GetHistory returns daily candles of symbol for the last days days.
func (s *marketService) GetHistory(ctx context.Context, symbol string, days int) ([]marketdata.Candle, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if days < 1 || days > MaxHistoryDays {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("days must be between 1 and %d", MaxHistoryDays))
	}
	history, err := s.provider.History(ctx, symbol, days)
	if err != nil {
		return nil, marketError(err, symbol)
	}
	if len(history) == 0 {
		return nil, marketError(marketdata.ErrNotFound, symbol)
	}
	return history, nil
}

// PopularETFs returns the ETFs offered for comparison.
func (s *marketService) PopularETFs() []marketdata.Listing {
	return marketdata.PopularETFs()
}

// UpdatePrices fetches a quote for every portfolio symbol, stores the new
// current prices, records the observed quotes and takes a snapshot.
// Symbols without a quote are skipped.
func (s *marketService) UpdatePrices(ctx context.Context) (*PriceUpdateResult, error) {
	entries, err := s.portfolio.AllEntries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return &PriceUpdateResult{Message: "No portfolio entries to update"}, nil
	}

	seen := map[string]bool{}
	var symbols []string
	for i := range entries {
		sym := strings.ToUpper(entries[i].Symbol)
		if !seen[sym] {
			seen[sym] = true
			symbols = append(symbols, sym)
		}
	}
	sort.Strings(symbols)

	quotes := marketdata.Quotes(ctx, s.provider, symbols)
	if len(quotes) == 0 && ctx.Err() != nil {
		return nil, apperrors.Wrap(apperrors.ErrMarketDataUnavailable, ctx.Err())
	}

	now := s.now().UTC()
	prices := make(map[string]decimal.Decimal, len(quotes))
	for sym, q := range quotes {
		prices[sym] = q.Price
	}

	updated, err := s.portfolio.ApplyPrices(prices, now)
	if err != nil {
		return nil, err
	}

	s.recordPrices(quotes, now)
	if updated > 0 {
		if _, err := s.snapshots.RecordSnapshot(now); err != nil {
			logger.Get().Warnw("failed to record portfolio snapshot", "error", err)
		}
	}

	logger.Get().Infow("portfolio prices updated",
		"provider", s.provider.Name(),
		"symbols", len(symbols),
		"quoted", len(quotes),
		"updated", updated,
		"total", len(entries),
	)

	return &PriceUpdateResult{
		Message:      fmt.Sprintf("%d of %d entries updated", updated, len(entries)),
		UpdatedCount: updated,
		TotalEntries: len(entries),
	}, nil
}

// recordPrices stores the observed quotes, skipping ones already recorded.
func (s *marketService) recordPrices(quotes map[string]marketdata.Quote, now time.Time) {
	for sym, q := range quotes {
		recordedAt := q.AsOf
		if recordedAt.IsZero() {
			recordedAt = now
		}
		record := models.PriceRecord{
			Symbol:     sym,
			Price:      q.Price,
			Currency:   q.Currency,
			Provider:   s.provider.Name(),
			RecordedAt: recordedAt.UTC(),
		}
		if err := s.db.Where("symbol = ? AND recorded_at = ?", record.Symbol, record.RecordedAt).
			FirstOrCreate(&record).Error; err != nil {
			logger.Get().Warnw("failed to record price", "symbol", sym, "error", err)
		}
	}
}

// CompareWithETF compares the portfolio's profit/loss with investing the same
// amount into etfSymbol on startDate.
func (s *marketService) CompareWithETF(ctx context.Context, etfSymbol string, startDate time.Time) (*ETFComparison, error) {
	if startDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Start date is required")
	}
	etfSymbol = strings.ToUpper(strings.TrimSpace(etfSymbol))
	if etfSymbol == "" {
		etfSymbol = DefaultCompareETF
	}

	entries, err := s.portfolio.AllEntries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNoEntries
	}

	invested, current := decimal.Zero, decimal.Zero
	for i := range entries {
		invested = invested.Add(entries[i].TotalValue)
		if entries[i].CurrentValue.Valid {
			current = current.Add(entries[i].CurrentValue.Decimal)
		}
	}
	if current.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrPricesNotUpdated, "Portfolio prices must be updated first")
	}

	portfolio := PortfolioPerformance{
		InitialValue: invested,
		CurrentValue: current,
		ProfitLoss:   current.Sub(invested),
	}
	if invested.IsPositive() {
		portfolio.ProfitLossPercent = current.Sub(invested).Div(invested).Mul(hundred).InexactFloat64()
	}

	history, err := s.GetHistory(ctx, etfSymbol, 365)
	if err != nil {
		return nil, err
	}
	perf, err := marketdata.CalculatePerformance(history, startDate, invested.InexactFloat64())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &ETFComparison{
		Portfolio: portfolio,
		ETF:       ETFPerformance{Symbol: etfSymbol, Performance: perf},
		Comparison: ComparisonSummary{
			PortfolioOutperforms: portfolio.ProfitLossPercent > perf.ProfitLossPercent,
			DifferencePercent:    portfolio.ProfitLossPercent - perf.ProfitLossPercent,
		},
	}, nil
}

// GetPriceRecords returns paginated recorded prices of symbol within a date range, newest first.
func (s *marketService) GetPriceRecords(symbol string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.PriceRecord], error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.PriceRecord{}).
		Where("symbol = ? AND recorded_at >= ? AND recorded_at <= ?", symbol, from, to)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.PriceRecord
	if err := base.Order("recorded_at DESC").Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}
