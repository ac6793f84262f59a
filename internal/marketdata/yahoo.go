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
)

const (
	yahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	yahooUA      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// yahooChartResponse is the v8 chart API response.
type yahooChartResponse struct {
	Chart struct {
		Result []yahooChartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type yahooChartResult struct {
	Meta struct {
		Symbol             string  `json:"symbol"`
		Currency           string  `json:"currency"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
		RegularMarketTime  int64   `json:"regularMarketTime"`
		ChartPreviousClose float64 `json:"chartPreviousClose"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

// YahooProvider reads quotes and history from the Yahoo Finance chart API.
// It has no search or profile endpoint.
type YahooProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewYahooProvider creates a new Yahoo Finance provider.
func NewYahooProvider(httpClient *http.Client) *YahooProvider {
	return &YahooProvider{httpClient: httpClient, baseURL: yahooBaseURL}
}

// Name returns the provider's display name.
func (p *YahooProvider) Name() string { return "Yahoo Finance" }

// Quote returns the regular market price of the symbol.
func (p *YahooProvider) Quote(ctx context.Context, symbol string) (*Quote, error) {
	res, err := p.chart(ctx, symbol, url.Values{"range": {"1d"}, "interval": {"1d"}})
	if err != nil {
		return nil, err
	}
	if res.Meta.RegularMarketPrice == 0 {
		return nil, fmt.Errorf("%w: zero price for %s", ErrNotFound, symbol)
	}

	asOf := time.Now().UTC()
	if res.Meta.RegularMarketTime > 0 {
		asOf = time.Unix(res.Meta.RegularMarketTime, 0).UTC()
	}
	return &Quote{
		Symbol:        symbol,
		Price:         decimal.NewFromFloat(res.Meta.RegularMarketPrice),
		PreviousClose: decimal.NewFromFloat(res.Meta.ChartPreviousClose),
		ChangePercent: changePercent(res.Meta.RegularMarketPrice, res.Meta.ChartPreviousClose),
		Currency:      strings.ToUpper(res.Meta.Currency),
		AsOf:          asOf,
	}, nil
}

// History returns daily candles. Bars with a missing close are skipped.
func (p *YahooProvider) History(ctx context.Context, symbol string, days int) ([]Candle, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)
	res, err := p.chart(ctx, symbol, url.Values{
		"period1":  {strconv.FormatInt(from.Unix(), 10)},
		"period2":  {strconv.FormatInt(to.Unix(), 10)},
		"interval": {"1d"},
	})
	if err != nil {
		return nil, err
	}
	if len(res.Indicators.Quote) == 0 || len(res.Timestamp) == 0 {
		return nil, fmt.Errorf("%w: history for %s", ErrNotFound, symbol)
	}

	q := res.Indicators.Quote[0]
	candles := make([]Candle, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		closePrice := at(q.Close, i)
		if closePrice == nil {
			continue
		}
		c := Candle{Date: dayOf(time.Unix(ts, 0)), Close: *closePrice}
		if v := at(q.Open, i); v != nil {
			c.Open = *v
		}
		if v := at(q.High, i); v != nil {
			c.High = *v
		}
		if v := at(q.Low, i); v != nil {
			c.Low = *v
		}
		if v := at(q.Volume, i); v != nil {
			c.Volume = *v
		}
		candles = append(candles, c)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w: history for %s", ErrNotFound, symbol)
	}
	return candles, nil
}

// Search is not offered by the chart API.
func (p *YahooProvider) Search(context.Context, string) ([]SearchResult, error) {
	return nil, ErrUnsupported
}

// Profile is not offered by the chart API.
func (p *YahooProvider) Profile(context.Context, string) (*Profile, error) {
	return nil, ErrUnsupported
}

func (p *YahooProvider) chart(ctx context.Context, symbol string, params url.Values) (*yahooChartResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(symbol) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo: building request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUA)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo: http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: unexpected status %d", resp.StatusCode)
	}

	var chartResp yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chartResp); err != nil {
		return nil, fmt.Errorf("yahoo: decoding response: %w", err)
	}
	if chartResp.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrNotFound, symbol, chartResp.Chart.Error.Description)
	}
	if len(chartResp.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	return &chartResp.Chart.Result[0], nil
}

func at[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}
