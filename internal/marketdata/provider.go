// Package marketdata fetches quotes, price history, symbol search results and
// company profiles from external market data APIs.
package marketdata

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound means the provider has no data for the symbol.
	ErrNotFound = errors.New("market data not found")
	// ErrUnsupported means the provider does not offer the operation.
	ErrUnsupported = errors.New("operation not supported by provider")
)

// MaxSearchResults caps the number of results returned by Search.
const MaxSearchResults = 10

// Quote is the latest price of a symbol.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	PreviousClose decimal.Decimal `json:"previous_close"`
	ChangePercent float64         `json:"change_percent"`
	Currency      string          `json:"currency,omitempty"`
	AsOf          time.Time       `json:"as_of"`
}

// Candle is one daily bar of a price history.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// SearchResult is a symbol matching a search query.
type SearchResult struct {
	Symbol        string `json:"symbol"`
	DisplaySymbol string `json:"display_symbol"`
	Description   string `json:"description"`
	Type          string `json:"type"`
}

// Profile describes the company or fund behind a symbol.
type Profile struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Exchange  string  `json:"exchange,omitempty"`
	Industry  string  `json:"industry,omitempty"`
	IPO       string  `json:"ipo,omitempty"`
	MarketCap float64 `json:"market_cap,omitempty"`
	Logo      string  `json:"logo,omitempty"`
	WebURL    string  `json:"web_url,omitempty"`
}

// Provider is a source of market data.
type Provider interface {
	// Name returns the provider's display name (e.g., "Finnhub", "Yahoo Finance").
	Name() string

	Quote(ctx context.Context, symbol string) (*Quote, error)

	// History returns daily candles for the last days days, oldest first.
	History(ctx context.Context, symbol string, days int) ([]Candle, error)

	Search(ctx context.Context, query string) ([]SearchResult, error)

	Profile(ctx context.Context, symbol string) (*Profile, error)
}

// Quotes fetches quotes for several symbols. Symbols that fail are left out.
func Quotes(ctx context.Context, p Provider, symbols []string) map[string]Quote {
	quotes := make(map[string]Quote, len(symbols))
	for _, s := range symbols {
		if ctx.Err() != nil {
			break
		}
		q, err := p.Quote(ctx, s)
		if err != nil {
			continue
		}
		quotes[s] = *q
	}
	return quotes
}

func changePercent(price, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (price - previous) / previous * 100
}
