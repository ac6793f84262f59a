package marketdata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newChartMockServer serves v8 chart bodies keyed by ticker. Unknown tickers get a chart error.
func newChartMockServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ticker := strings.TrimPrefix(r.URL.Path, "/")
		w.Header().Set("Content-Type", "application/json")
		body, ok := bodies[ticker]
		if !ok {
			_, _ = fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
			return
		}
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestYahoo(baseURL string) *YahooProvider {
	p := NewYahooProvider(http.DefaultClient)
	p.baseURL = baseURL
	return p
}

const sapChart = `{"chart":{"result":[{
	"meta":{"symbol":"SAP.DE","currency":"EUR","regularMarketPrice":180.2,"regularMarketTime":1710460800,"chartPreviousClose":178.0},
	"timestamp":[1709251200,1709510400,1709596800],
	"indicators":{"quote":[{"open":[170,171,null],"high":[172,173,null],"low":[169,170,null],"close":[171.5,172.5,null],"volume":[100,200,null]}]}
}],"error":null}}`

func TestYahooProvider_Quote(t *testing.T) {
	srv := newChartMockServer(t, map[string]string{"SAP.DE": sapChart})
	p := newTestYahoo(srv.URL)

	q, err := p.Quote(context.Background(), "SAP.DE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Price.String() != "180.2" {
		t.Errorf("expected price 180.2, got %s", q.Price)
	}
	if q.Currency != "EUR" {
		t.Errorf("expected currency EUR, got %s", q.Currency)
	}
	if q.ChangePercent <= 1.2 || q.ChangePercent >= 1.3 {
		t.Errorf("expected change around 1.24%%, got %f", q.ChangePercent)
	}
}

func TestYahooProvider_QuoteNotFound(t *testing.T) {
	srv := newChartMockServer(t, map[string]string{})

	_, err := newTestYahoo(srv.URL).Quote(context.Background(), "DELISTED")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestYahooProvider_History(t *testing.T) {
	srv := newChartMockServer(t, map[string]string{"SAP.DE": sapChart})

	candles, err := newTestYahoo(srv.URL).History(context.Background(), "SAP.DE", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("expected null bar to be skipped, got %d candles", len(candles))
	}
	if candles[1].Close != 172.5 || candles[1].Volume != 200 {
		t.Errorf("unexpected candle %+v", candles[1])
	}
}

func TestYahooProvider_Unsupported(t *testing.T) {
	p := NewYahooProvider(http.DefaultClient)

	if _, err := p.Search(context.Background(), "sap"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported from Search, got %v", err)
	}
	if _, err := p.Profile(context.Background(), "SAP"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported from Profile, got %v", err)
	}
}

func TestYahooProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestYahoo(srv.URL).Quote(context.Background(), "AAPL")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected non-not-found error, got %v", err)
	}
}
