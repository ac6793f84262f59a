package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/services"
)

type mockChartService struct {
	allocationFn  func() (*services.AllocationChart, error)
	performanceFn func(ctx context.Context) (*services.PerformanceChart, error)
	versusETFFn   func(ctx context.Context, etfSymbol string, days int) (*services.ETFComparisonChart, error)
	profitLossFn  func() ([]services.ProfitLossBar, error)
	trendingFn    func(ctx context.Context) []services.TrendingStock
}

func (m *mockChartService) Allocation() (*services.AllocationChart, error) {
	if m.allocationFn != nil {
		return m.allocationFn()
	}
	return &services.AllocationChart{}, nil
}

func (m *mockChartService) Performance(ctx context.Context) (*services.PerformanceChart, error) {
	if m.performanceFn != nil {
		return m.performanceFn(ctx)
	}
	return &services.PerformanceChart{}, nil
}

func (m *mockChartService) VersusETF(ctx context.Context, etfSymbol string, days int) (*services.ETFComparisonChart, error) {
	if m.versusETFFn != nil {
		return m.versusETFFn(ctx, etfSymbol, days)
	}
	return &services.ETFComparisonChart{}, nil
}

func (m *mockChartService) ProfitLoss() ([]services.ProfitLossBar, error) {
	if m.profitLossFn != nil {
		return m.profitLossFn()
	}
	return nil, nil
}

func (m *mockChartService) Trending(ctx context.Context) []services.TrendingStock {
	if m.trendingFn != nil {
		return m.trendingFn(ctx)
	}
	return []services.TrendingStock{}
}

var _ services.ChartServicer = (*mockChartService)(nil)

func setupChartRouter(handler *ChartHandler) *gin.Engine {
	r := gin.New()
	charts := r.Group("/charts")
	charts.GET("/portfolio/allocation", handler.Allocation)
	charts.GET("/portfolio/performance", handler.Performance)
	charts.GET("/portfolio/vs-etf/:symbol", handler.VersusETF)
	charts.GET("/portfolio/profit-loss", handler.ProfitLoss)
	charts.GET("/market/trending", handler.Trending)
	return r
}

func TestChartHandler_NoEntries(t *testing.T) {
	svc := &mockChartService{
		allocationFn:  func() (*services.AllocationChart, error) { return nil, apperrors.ErrNoEntries },
		performanceFn: func(context.Context) (*services.PerformanceChart, error) { return nil, apperrors.ErrNoEntries },
		versusETFFn: func(context.Context, string, int) (*services.ETFComparisonChart, error) {
			return nil, apperrors.ErrNoEntries
		},
		profitLossFn: func() ([]services.ProfitLossBar, error) { return nil, apperrors.ErrNoEntries },
	}
	r := setupChartRouter(NewChartHandler(svc))

	for _, path := range []string{
		"/charts/portfolio/allocation",
		"/charts/portfolio/performance",
		"/charts/portfolio/vs-etf/SPY",
		"/charts/portfolio/profit-loss",
	} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(r, http.MethodGet, path, "")
			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "NO_ENTRIES")
		})
	}
}

func TestChartHandler_Allocation(t *testing.T) {
	svc := &mockChartService{
		allocationFn: func() (*services.AllocationChart, error) {
			return &services.AllocationChart{
				Data:       []services.AllocationSlice{{Symbol: "AAPL", Value: decimal.NewFromInt(750), Percentage: 75}},
				TotalValue: decimal.NewFromInt(1000),
			}, nil
		},
	}
	r := setupChartRouter(NewChartHandler(svc))

	rec := doRequest(r, http.MethodGet, "/charts/portfolio/allocation", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["total_value"] != 1000.0 {
		t.Errorf("expected total_value 1000, got %v", result["total_value"])
	}
	slice := result["data"].([]interface{})[0].(map[string]interface{})
	if slice["percentage"] != 75.0 {
		t.Errorf("expected percentage 75, got %v", slice["percentage"])
	}
}

func TestChartHandler_VersusETF(t *testing.T) {
	t.Run("defaults_to_performance_window", func(t *testing.T) {
		var gotSymbol string
		var gotDays int
		svc := &mockChartService{
			versusETFFn: func(_ context.Context, sym string, days int) (*services.ETFComparisonChart, error) {
				gotSymbol, gotDays = sym, days
				return &services.ETFComparisonChart{ETFSymbol: sym}, nil
			},
		}
		r := setupChartRouter(NewChartHandler(svc))

		rec := doRequest(r, http.MethodGet, "/charts/portfolio/vs-etf/VTI", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotSymbol != "VTI" || gotDays != services.PerformanceWindowDays {
			t.Errorf("unexpected args %s %d", gotSymbol, gotDays)
		}
	})

	t.Run("rejects_bad_days", func(t *testing.T) {
		r := setupChartRouter(NewChartHandler(&mockChartService{}))

		rec := doRequest(r, http.MethodGet, "/charts/portfolio/vs-etf/VTI?days=zero", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestChartHandler_ProfitLossAndTrending(t *testing.T) {
	change := 2.5
	svc := &mockChartService{
		trendingFn: func(context.Context) []services.TrendingStock {
			return []services.TrendingStock{{Symbol: "NVDA", ChangePercent: &change}, {Symbol: "TSLA"}}
		},
	}
	r := setupChartRouter(NewChartHandler(svc))

	rec := doRequest(r, http.MethodGet, "/charts/portfolio/profit-loss", "")
	if data, ok := parseJSON(t, rec)["data"].([]interface{}); !ok || len(data) != 0 {
		t.Errorf("expected empty data array, got %s", rec.Body.String())
	}

	rec = doRequest(r, http.MethodGet, "/charts/market/trending", "")
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 stocks, got %d", len(data))
	}
	if data[1].(map[string]interface{})["change_percent"] != nil {
		t.Errorf("expected null change_percent for unquoted stock, got %v", data[1])
	}
}
