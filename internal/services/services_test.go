package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"depotlens/internal/marketdata"
)

// fakeProvider serves canned quotes and histories keyed by symbol.
type fakeProvider struct {
	quotes    map[string]decimal.Decimal
	history   map[string][]marketdata.Candle
	search    []marketdata.SearchResult
	err       error
	quoteCall int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Quote(_ context.Context, symbol string) (*marketdata.Quote, error) {
	f.quoteCall++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.quotes[strings.ToUpper(symbol)]
	if !ok {
		return nil, marketdata.ErrNotFound
	}
	return &marketdata.Quote{Symbol: symbol, Price: p, ChangePercent: 1.5, Currency: "USD"}, nil
}

func (f *fakeProvider) History(_ context.Context, symbol string, _ int) ([]marketdata.Candle, error) {
	if f.err != nil {
		return nil, f.err
	}
	h, ok := f.history[strings.ToUpper(symbol)]
	if !ok {
		return nil, marketdata.ErrNotFound
	}
	return h, nil
}

func (f *fakeProvider) Search(context.Context, string) ([]marketdata.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}

func (f *fakeProvider) Profile(_ context.Context, symbol string) (*marketdata.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.quotes[symbol]; !ok {
		return nil, marketdata.ErrNotFound
	}
	return &marketdata.Profile{Symbol: symbol, Name: symbol + " Corp"}, nil
}

// candles builds a daily series of closes ending at end.
func candles(end time.Time, closes ...float64) []marketdata.Candle {
	out := make([]marketdata.Candle, len(closes))
	start := end.AddDate(0, 0, -(len(closes) - 1))
	for i, c := range closes {
		out[i] = marketdata.Candle{Date: start.AddDate(0, 0, i), Close: c}
	}
	return out
}
