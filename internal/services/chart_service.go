package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/logger"
	"depotlens/internal/marketdata"
	"depotlens/internal/models"
)

// PerformanceWindowDays limits how far back the performance chart reaches.
const PerformanceWindowDays = 180

// chartService builds chart data from portfolio entries and price history.
type chartService struct {
	portfolio PortfolioServicer
	provider  marketdata.Provider
	now       func() time.Time
}

// NewChartService creates a new ChartServicer.
func NewChartService(portfolio PortfolioServicer, provider marketdata.Provider) ChartServicer {
	return &chartService{portfolio: portfolio, provider: provider, now: time.Now}
}

func (s *chartService) entries() ([]models.PortfolioEntry, error) {
	entries, err := s.portfolio.AllEntries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNoEntries
	}
	return entries, nil
}

// closes loads daily closes per symbol keyed by YYYY-MM-DD. Symbols without
// history are left out.
func (s *chartService) closes(ctx context.Context, entries []models.PortfolioEntry, days int) map[string]map[string]decimal.Decimal {
	out := map[string]map[string]decimal.Decimal{}
	for i := range entries {
		sym := strings.ToUpper(entries[i].Symbol)
		if _, done := out[sym]; done {
			continue
		}
		history, err := s.provider.History(ctx, sym, days)
		if err != nil {
			logger.Get().Debugw("no history for chart", "symbol", sym, "error", err)
			out[sym] = nil
			continue
		}
		byDate := make(map[string]decimal.Decimal, len(history))
		for _, c := range history {
			byDate[c.Date.Format(time.DateOnly)] = decimal.NewFromFloat(c.Close)
		}
		out[sym] = byDate
	}
	return out
}

// valueOn values entry with its close on date, or at its invested total when
// no close is known for that day.
func valueOn(e *models.PortfolioEntry, closes map[string]map[string]decimal.Decimal, date string) decimal.Decimal {
	if c, ok := closes[strings.ToUpper(e.Symbol)][date]; ok {
		return e.Quantity.Mul(c)
	}
	return e.TotalValue
}

func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// Allocation returns each entry's share of the portfolio value, largest first.
func (s *chartService) Allocation() (*AllocationChart, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	slices := make([]AllocationSlice, 0, len(entries))
	for i := range entries {
		value := entries[i].MarketValue()
		total = total.Add(value)
		slices = append(slices, AllocationSlice{
			Symbol:      entries[i].Symbol,
			CompanyName: entries[i].CompanyName,
			Value:       value,
			Quantity:    entries[i].Quantity,
		})
	}
	for i := range slices {
		slices[i].Percentage = percentOf(slices[i].Value, total)
	}
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})

	return &AllocationChart{Data: slices, TotalValue: total}, nil
}

// Performance returns the daily portfolio value since the oldest purchase,
// limited to the last PerformanceWindowDays days.
func (s *chartService) Performance(ctx context.Context) (*PerformanceChart, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	today := dateOf(s.now())
	start := today.AddDate(0, 0, -PerformanceWindowDays)
	oldest := dateOf(entries[0].PurchaseDate)
	for i := range entries {
		if d := dateOf(entries[i].PurchaseDate); d.Before(oldest) {
			oldest = d
		}
	}
	if oldest.After(start) {
		start = oldest
	}

	closes := s.closes(ctx, entries, PerformanceWindowDays)

	points := []PerformancePoint{}
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		date := day.Format(time.DateOnly)
		value, invested := decimal.Zero, decimal.Zero
		for i := range entries {
			if dateOf(entries[i].PurchaseDate).After(day) {
				continue
			}
			invested = invested.Add(entries[i].TotalValue)
			value = value.Add(valueOn(&entries[i], closes, date))
		}
		if !invested.IsPositive() {
			continue
		}
		points = append(points, PerformancePoint{
			Date:              date,
			PortfolioValue:    value,
			InvestedValue:     invested,
			ProfitLoss:        value.Sub(invested),
			ProfitLossPercent: percentOf(value.Sub(invested), invested),
		})
	}

	return &PerformanceChart{
		Data:      points,
		StartDate: start.Format(time.DateOnly),
		EndDate:   today.Format(time.DateOnly),
	}, nil
}

// VersusETF compares the portfolio with etfSymbol on every ETF trading day of
// the last days days. Both series start at 100.
func (s *chartService) VersusETF(ctx context.Context, etfSymbol string, days int) (*ETFComparisonChart, error) {
	etfSymbol = strings.ToUpper(strings.TrimSpace(etfSymbol))
	if etfSymbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "ETF symbol is required")
	}
	if days < 1 || days > MaxHistoryDays {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "days out of range")
	}

	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	etfHistory, err := s.provider.History(ctx, etfSymbol, days)
	if err != nil {
		return nil, marketError(err, etfSymbol)
	}
	if len(etfHistory) == 0 || etfHistory[0].Close <= 0 {
		return nil, marketError(marketdata.ErrNotFound, etfSymbol)
	}

	closes := s.closes(ctx, entries, days)
	invested := decimal.Zero
	for i := range entries {
		invested = invested.Add(entries[i].TotalValue)
	}

	etfStart := decimal.NewFromFloat(etfHistory[0].Close)
	points := make([]ETFComparisonPoint, 0, len(etfHistory))
	for _, c := range etfHistory {
		date := c.Date.Format(time.DateOnly)
		ratio := decimal.NewFromFloat(c.Close).Div(etfStart)

		value := decimal.Zero
		for i := range entries {
			value = value.Add(valueOn(&entries[i], closes, date))
		}
		portfolioPerf := 100.0
		if invested.IsPositive() {
			portfolioPerf = value.Div(invested).Mul(hundred).InexactFloat64()
		}

		points = append(points, ETFComparisonPoint{
			Date:                 date,
			PortfolioPerformance: portfolioPerf,
			ETFPerformance:       ratio.Mul(hundred).InexactFloat64(),
			PortfolioValue:       value,
			ETFValue:             ratio.Mul(invested),
		})
	}

	return &ETFComparisonChart{Data: points, ETFSymbol: etfSymbol, TotalInvested: invested}, nil
}

// ProfitLoss returns the result of every priced entry, best first.
func (s *chartService) ProfitLoss() ([]ProfitLossBar, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	bars := []ProfitLossBar{}
	for i := range entries {
		if !entries[i].CurrentValue.Valid {
			continue
		}
		bars = append(bars, ProfitLossBar{
			Symbol:            entries[i].Symbol,
			CompanyName:       entries[i].CompanyName,
			Invested:          entries[i].TotalValue,
			CurrentValue:      entries[i].CurrentValue.Decimal,
			ProfitLoss:        entries[i].ProfitLoss(),
			ProfitLossPercent: entries[i].ProfitLossPercent().InexactFloat64(),
			Quantity:          entries[i].Quantity,
		})
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].ProfitLoss.GreaterThan(bars[j].ProfitLoss)
	})
	return bars, nil
}

// Trending returns the trending board with the day's change from live quotes.
func (s *chartService) Trending(ctx context.Context) []TrendingStock {
	listings := marketdata.Trending()
	symbols := make([]string, len(listings))
	for i, l := range listings {
		symbols[i] = l.Symbol
	}
	quotes := marketdata.Quotes(ctx, s.provider, symbols)

	out := make([]TrendingStock, len(listings))
	for i, l := range listings {
		out[i] = TrendingStock{Symbol: l.Symbol, Name: l.Name}
		if q, ok := quotes[l.Symbol]; ok {
			change := q.ChangePercent
			out[i].ChangePercent = &change
		}
	}
	return out
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
