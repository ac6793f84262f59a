package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	finnhubBaseURL = "https://finnhub.io/api/v1"
	// DefaultFinnhubInterval keeps a free account below 60 requests per minute.
	DefaultFinnhubInterval = 1100 * time.Millisecond
)

// FinnhubProvider reads market data from the Finnhub REST API. Requests are
// spaced by a token-bucket limiter shared by all operations.
type FinnhubProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	apiKey     string
	limiter    *rate.Limiter
}

// NewFinnhubProvider creates a Finnhub provider. minInterval is the minimum
// spacing between two requests; zero disables spacing.
func NewFinnhubProvider(httpClient *http.Client, apiKey string, minInterval time.Duration) *FinnhubProvider {
	if apiKey == "" {
		apiKey = "demo"
	}
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &FinnhubProvider{
		httpClient: httpClient,
		baseURL:    finnhubBaseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Name returns the provider's display name.
func (p *FinnhubProvider) Name() string { return "Finnhub" }

type finnhubQuote struct {
	Current       float64 `json:"c"`
	PreviousClose float64 `json:"pc"`
	ChangePercent float64 `json:"dp"`
	Timestamp     int64   `json:"t"`
}

// Quote returns the current price. Finnhub answers unknown symbols with a zero price.
func (p *FinnhubProvider) Quote(ctx context.Context, symbol string) (*Quote, error) {
	var q finnhubQuote
	if err := p.get(ctx, "/quote", url.Values{"symbol": {symbol}}, &q); err != nil {
		return nil, err
	}
	if q.Current == 0 {
		return nil, fmt.Errorf("%w: quote for %s", ErrNotFound, symbol)
	}

	asOf := time.Now().UTC()
	if q.Timestamp > 0 {
		asOf = time.Unix(q.Timestamp, 0).UTC()
	}
	dp := q.ChangePercent
	if dp == 0 {
		dp = changePercent(q.Current, q.PreviousClose)
	}
	return &Quote{
		Symbol:        symbol,
		Price:         decimal.NewFromFloat(q.Current),
		PreviousClose: decimal.NewFromFloat(q.PreviousClose),
		ChangePercent: dp,
		AsOf:          asOf,
	}, nil
}

type finnhubCandles struct {
	Status string    `json:"s"`
	Time   []int64   `json:"t"`
	Open   []float64 `json:"o"`
	High   []float64 `json:"h"`
	Low    []float64 `json:"l"`
	Close  []float64 `json:"c"`
	Volume []float64 `json:"v"`
}

// History returns daily candles from the stock/candle endpoint.
func (p *FinnhubProvider) History(ctx context.Context, symbol string, days int) ([]Candle, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)

	params := url.Values{
		"symbol":     {symbol},
		"resolution": {"D"},
		"from":       {strconv.FormatInt(from.Unix(), 10)},
		"to":         {strconv.FormatInt(to.Unix(), 10)},
	}
	var c finnhubCandles
	if err := p.get(ctx, "/stock/candle", params, &c); err != nil {
		return nil, err
	}
	if c.Status != "ok" {
		return nil, fmt.Errorf("%w: history for %s (status %q)", ErrNotFound, symbol, c.Status)
	}

	n := len(c.Time)
	if len(c.Open) != n || len(c.High) != n || len(c.Low) != n || len(c.Close) != n {
		return nil, fmt.Errorf("finnhub: inconsistent candle arrays for %s", symbol)
	}

	candles := make([]Candle, n)
	for i := range c.Time {
		candles[i] = Candle{
			Date:  dayOf(time.Unix(c.Time[i], 0)),
			Open:  c.Open[i],
			High:  c.High[i],
			Low:   c.Low[i],
			Close: c.Close[i],
		}
		if i < len(c.Volume) {
			candles[i].Volume = int64(c.Volume[i])
		}
	}
	return candles, nil
}

type finnhubSearch struct {
	Count  int `json:"count"`
	Result []struct {
		Description   string `json:"description"`
		DisplaySymbol string `json:"displaySymbol"`
		Symbol        string `json:"symbol"`
		Type          string `json:"type"`
	} `json:"result"`
}

// Search looks up symbols matching query, at most MaxSearchResults of them.
func (p *FinnhubProvider) Search(ctx context.Context, query string) ([]SearchResult, error) {
	var s finnhubSearch
	if err := p.get(ctx, "/search", url.Values{"q": {query}}, &s); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, min(len(s.Result), MaxSearchResults))
	for _, r := range s.Result {
		if len(results) == MaxSearchResults {
			break
		}
		results = append(results, SearchResult{
			Symbol:        r.Symbol,
			DisplaySymbol: r.DisplaySymbol,
			Description:   r.Description,
			Type:          r.Type,
		})
	}
	return results, nil
}

type finnhubProfile struct {
	Country   string  `json:"country"`
	Currency  string  `json:"currency"`
	Exchange  string  `json:"exchange"`
	Industry  string  `json:"finnhubIndustry"`
	IPO       string  `json:"ipo"`
	Logo      string  `json:"logo"`
	MarketCap float64 `json:"marketCapitalization"`
	Name      string  `json:"name"`
	Ticker    string  `json:"ticker"`
	WebURL    string  `json:"weburl"`
}

// Profile returns company information from the stock/profile2 endpoint.
func (p *FinnhubProvider) Profile(ctx context.Context, symbol string) (*Profile, error) {
	var fp finnhubProfile
	if err := p.get(ctx, "/stock/profile2", url.Values{"symbol": {symbol}}, &fp); err != nil {
		return nil, err
	}
	if fp.Name == "" && fp.Ticker == "" {
		return nil, fmt.Errorf("%w: profile for %s", ErrNotFound, symbol)
	}
	return &Profile{
		Symbol:    symbol,
		Name:      fp.Name,
		Country:   fp.Country,
		Currency:  fp.Currency,
		Exchange:  fp.Exchange,
		Industry:  fp.Industry,
		IPO:       fp.IPO,
		MarketCap: fp.MarketCap,
		Logo:      fp.Logo,
		WebURL:    fp.WebURL,
	}, nil
}

// get waits for the limiter, performs the request and decodes the JSON body into out.
func (p *FinnhubProvider) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("finnhub: waiting for rate limiter: %w", err)
	}

	params.Set("token", p.apiKey)
	reqURL := strings.TrimRight(p.baseURL, "/") + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("finnhub: building request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("finnhub: http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("finnhub: unexpected status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("finnhub: decoding response: %w", err)
	}
	return nil
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
