package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"depotlens/internal/config"
	"depotlens/internal/extraction"
	"depotlens/internal/logger"
	"depotlens/internal/marketdata"
	"depotlens/internal/testutil"
	"depotlens/internal/validator"
)

const testPipelineKey = "pipeline-key"

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// flatProvider quotes a fixed price per symbol and a flat daily history.
type flatProvider struct {
	prices map[string]float64
}

func (p *flatProvider) Name() string { return "flat" }

func (p *flatProvider) Quote(_ context.Context, symbol string) (*marketdata.Quote, error) {
	price, ok := p.prices[strings.ToUpper(symbol)]
	if !ok {
		return nil, marketdata.ErrNotFound
	}
	return &marketdata.Quote{
		Symbol:        symbol,
		Price:         decimal.NewFromFloat(price),
		PreviousClose: decimal.NewFromFloat(price),
		Currency:      "USD",
		AsOf:          time.Now().UTC(),
	}, nil
}

func (p *flatProvider) History(_ context.Context, symbol string, days int) ([]marketdata.Candle, error) {
	price, ok := p.prices[strings.ToUpper(symbol)]
	if !ok {
		return nil, marketdata.ErrNotFound
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	out := make([]marketdata.Candle, 0, days)
	for i := days - 1; i >= 0; i-- {
		out = append(out, marketdata.Candle{Date: today.AddDate(0, 0, -i), Close: price})
	}
	return out, nil
}

func (p *flatProvider) Search(context.Context, string) ([]marketdata.SearchResult, error) {
	return []marketdata.SearchResult{{Symbol: "AAPL", DisplaySymbol: "AAPL", Description: "APPLE INC", Type: "Common Stock"}}, nil
}

func (p *flatProvider) Profile(_ context.Context, symbol string) (*marketdata.Profile, error) {
	return &marketdata.Profile{Symbol: symbol, Name: symbol + " Inc"}, nil
}

// textRecognizer returns the same text for every document.
type textRecognizer struct {
	text string
}

func (r *textRecognizer) Recognize(context.Context, string) (string, error) {
	return r.text, nil
}

// testApp holds the full application stack backed by an isolated in-memory SQLite.
type testApp struct {
	DB         *gorm.DB
	Router     *gin.Engine
	provider   *flatProvider
	recognizer *textRecognizer
}

func setupApp(t *testing.T, configure ...func(*config.Config)) *testApp {
	t.Helper()

	cfg := &config.Config{
		Env:                 "test",
		RequestTimeout:      5 * time.Second,
		JWTSecret:           "integration-secret",
		JWTExpirationDur:    time.Hour,
		PipelineAPIKey:      testPipelineKey,
		MarketCacheTTL:      time.Minute,
		AutoCreateThreshold: 60,
		UploadDir:           t.TempDir(),
		MaxUploadMB:         1,
	}
	for _, fn := range configure {
		fn(cfg)
	}

	db := testutil.SetupTestDB(t)
	provider := &flatProvider{prices: map[string]float64{"AAPL": 180, "MSFT": 400, "SPY": 500}}
	recognizer := &textRecognizer{}

	svc := NewServices(db, cfg, provider, extraction.NewProcessor(recognizer))
	return &testApp{
		DB:         db,
		Router:     NewRouter(cfg, svc),
		provider:   provider,
		recognizer: recognizer,
	}
}

func withOwnerPassword(t *testing.T) func(*config.Config) {
	hash := testutil.OwnerPasswordHash(t)
	return func(cfg *config.Config) {
		cfg.OwnerPasswordHash = hash
	}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) pipelineRequest(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) upload(t *testing.T, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	_, _ = part.Write(content)
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) createEntry(t *testing.T, symbol, date string, price, quantity float64) string {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{
		"symbol":         symbol,
		"purchase_date":  date,
		"purchase_price": price,
		"quantity":       quantity,
	})
	rec := app.request(http.MethodPost, "/api/v1/portfolio", string(body), "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create entry failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["entry"].(map[string]interface{})["id"].(string)
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, _ := parseJSON(t, rec)["error"].(map[string]interface{})
	code, _ := errObj["code"].(string)
	return code
}

func daysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format(time.DateOnly)
}
