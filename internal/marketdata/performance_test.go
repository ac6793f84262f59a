package marketdata

import (
	"errors"
	"math"
	"testing"
	"time"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculatePerformance(t *testing.T) {
	history := []Candle{
		{Date: day("2024-01-02"), Close: 100},
		{Date: day("2024-01-03"), Close: 110},
		{Date: day("2024-01-05"), Close: 120},
		{Date: day("2024-01-08"), Close: 150},
	}

	t.Run("closest_date", func(t *testing.T) {
		p, err := CalculatePerformance(history, day("2024-01-04"), 1200)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 01-03 and 01-05 are equally close; the earlier one wins.
		if p.InitialPrice != 110 {
			t.Errorf("expected initial price 110, got %f", p.InitialPrice)
		}
		if p.CurrentPrice != 150 {
			t.Errorf("expected current price 150, got %f", p.CurrentPrice)
		}
		wantValue := 1200.0 / 110 * 150
		if math.Abs(p.CurrentValue-wantValue) > 1e-9 {
			t.Errorf("expected current value %f, got %f", wantValue, p.CurrentValue)
		}
		if math.Abs(p.ProfitLoss-(wantValue-1200)) > 1e-9 {
			t.Errorf("unexpected profit/loss %f", p.ProfitLoss)
		}
		if !p.InvestmentDate.Equal(day("2024-01-03")) || !p.CurrentDate.Equal(day("2024-01-08")) {
			t.Errorf("unexpected dates %v .. %v", p.InvestmentDate, p.CurrentDate)
		}
	})

	t.Run("before_history", func(t *testing.T) {
		p, err := CalculatePerformance(history, day("2023-06-01"), 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.InitialPrice != 100 || math.Abs(p.ProfitLossPercent-50) > 1e-9 {
			t.Errorf("expected +50%% from first candle, got %+v", p)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := CalculatePerformance(nil, day("2024-01-01"), 100); !errors.Is(err, ErrNoHistory) {
			t.Errorf("expected ErrNoHistory, got %v", err)
		}
	})
}

func TestVolatility(t *testing.T) {
	flat := []Candle{{Close: 10}, {Close: 10}, {Close: 10}, {Close: 10}}
	if v := Volatility(flat); v != 0 {
		t.Errorf("expected zero volatility for flat series, got %f", v)
	}

	moving := []Candle{{Close: 10}, {Close: 11}, {Close: 10}, {Close: 12}}
	if v := Volatility(moving); v <= 0 {
		t.Errorf("expected positive volatility, got %f", v)
	}

	if v := Volatility(moving[:2]); v != 0 {
		t.Errorf("expected zero volatility for short series, got %f", v)
	}
}

func TestMeanDailyReturn(t *testing.T) {
	series := []Candle{{Close: 100}, {Close: 110}, {Close: 99}}
	// +10% then -10%
	if got := MeanDailyReturn(series); math.Abs(got) > 1e-9 {
		t.Errorf("expected mean 0, got %f", got)
	}
}

func TestCatalogue(t *testing.T) {
	etfs := PopularETFs()
	if len(etfs) != 10 {
		t.Fatalf("expected 10 ETFs, got %d", len(etfs))
	}
	if etfs[0].Symbol != "SPY" || etfs[0].Description != "S&P 500 Index" {
		t.Errorf("unexpected first ETF %+v", etfs[0])
	}

	etfs[0].Symbol = "CHANGED"
	if PopularETFs()[0].Symbol != "SPY" {
		t.Error("expected catalogue to be unaffected by changes to the returned slice")
	}

	if len(Trending()) != 8 {
		t.Errorf("expected 8 trending symbols, got %d", len(Trending()))
	}

	if _, err := parseCatalogue([]byte("popular:\n  - name: No Symbol\n")); err == nil {
		t.Error("expected error for listing without symbol")
	}
}
