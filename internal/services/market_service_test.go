package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"depotlens/internal/marketdata"
	"depotlens/internal/models"
	"depotlens/internal/pagination"
	"depotlens/internal/testutil"
)

func newTestMarketService(t *testing.T, provider marketdata.Provider) (*marketService, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewMarketService(db, provider, NewPortfolioService(db), NewSnapshotService(db)).(*marketService)
	return svc, func() { testutil.TeardownTestDB(t, db) }
}

func TestMarketService_GetQuote(t *testing.T) {
	provider := &fakeProvider{quotes: map[string]decimal.Decimal{"AAPL": d("187.25")}}
	svc, teardown := newTestMarketService(t, provider)
	defer teardown()

	t.Run("uppercases_symbol", func(t *testing.T) {
		q, err := svc.GetQuote(context.Background(), "aapl")
		testutil.AssertNoError(t, err)
		if !q.Price.Equal(d("187.25")) {
			t.Errorf("expected price 187.25, got %s", q.Price)
		}
	})

	t.Run("unknown_symbol", func(t *testing.T) {
		_, err := svc.GetQuote(context.Background(), "NOPE")
		testutil.AssertAppError(t, err, "QUOTE_UNAVAILABLE")
	})

	t.Run("empty_symbol", func(t *testing.T) {
		_, err := svc.GetQuote(context.Background(), "  ")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestMarketService_ProviderDown(t *testing.T) {
	svc, teardown := newTestMarketService(t, &fakeProvider{err: errors.New("connection refused")})
	defer teardown()

	_, err := svc.GetQuote(context.Background(), "AAPL")
	testutil.AssertAppError(t, err, "MARKET_DATA_UNAVAILABLE")

	_, err = svc.Search(context.Background(), "apple")
	testutil.AssertAppError(t, err, "MARKET_DATA_UNAVAILABLE")
}

func TestMarketService_Search(t *testing.T) {
	provider := &fakeProvider{search: []marketdata.SearchResult{{Symbol: "AAPL", Description: "APPLE INC"}}}
	svc, teardown := newTestMarketService(t, provider)
	defer teardown()

	results, err := svc.Search(context.Background(), "apple")
	testutil.AssertNoError(t, err)
	if len(results) != 1 || results[0].Symbol != "AAPL" {
		t.Errorf("expected AAPL result, got %+v", results)
	}

	_, err = svc.Search(context.Background(), "")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestMarketService_GetHistory(t *testing.T) {
	now := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	provider := &fakeProvider{history: map[string][]marketdata.Candle{
		"SPY":   candles(now, 500, 505),
		"EMPTY": {},
	}}
	svc, teardown := newTestMarketService(t, provider)
	defer teardown()

	h, err := svc.GetHistory(context.Background(), "spy", 30)
	testutil.AssertNoError(t, err)
	if len(h) != 2 {
		t.Errorf("expected 2 candles, got %d", len(h))
	}

	_, err = svc.GetHistory(context.Background(), "EMPTY", 30)
	testutil.AssertAppError(t, err, "QUOTE_UNAVAILABLE")

	_, err = svc.GetHistory(context.Background(), "SPY", 0)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestMarketService_UpdatePrices(t *testing.T) {
	t.Run("no_entries", func(t *testing.T) {
		svc, teardown := newTestMarketService(t, &fakeProvider{})
		defer teardown()

		result, err := svc.UpdatePrices(context.Background())
		testutil.AssertNoError(t, err)
		if result.UpdatedCount != 0 || result.TotalEntries != 0 {
			t.Errorf("expected nothing updated, got %+v", result)
		}
	})

	t.Run("partial_quotes", func(t *testing.T) {
		provider := &fakeProvider{quotes: map[string]decimal.Decimal{"AAPL": d("120")}}
		svc, teardown := newTestMarketService(t, provider)
		defer teardown()
		at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return at }

		testutil.CreateTestEntryWith(t, svc.db, "AAPL", d("100"), d("2"))
		testutil.CreateTestEntryWith(t, svc.db, "AAPL", d("110"), d("1"))
		testutil.CreateTestEntryWith(t, svc.db, "MSFT", d("300"), d("1"))

		result, err := svc.UpdatePrices(context.Background())
		testutil.AssertNoError(t, err)

		if result.UpdatedCount != 2 || result.TotalEntries != 3 {
			t.Errorf("expected 2 of 3 updated, got %+v", result)
		}
		if result.Message != "2 of 3 entries updated" {
			t.Errorf("unexpected message %q", result.Message)
		}
		if provider.quoteCall != 2 {
			t.Errorf("expected one quote per distinct symbol, got %d calls", provider.quoteCall)
		}

		records, err := svc.GetPriceRecords("AAPL", at.Add(-time.Hour), at.Add(time.Hour), pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if records.TotalItems != 1 || !records.Data[0].Price.Equal(d("120")) {
			t.Errorf("expected one recorded AAPL price of 120, got %+v", records.Data)
		}

		var snapshots int64
		svc.db.Model(&models.PortfolioSnapshot{}).Count(&snapshots)
		if snapshots != 1 {
			t.Errorf("expected a snapshot after the refresh, got %d", snapshots)
		}

		// A second refresh at the same time does not duplicate the price record.
		_, err = svc.UpdatePrices(context.Background())
		testutil.AssertNoError(t, err)
		records, _ = svc.GetPriceRecords("AAPL", at.Add(-time.Hour), at.Add(time.Hour), pagination.PageRequest{})
		if records.TotalItems != 1 {
			t.Errorf("expected price record to be deduplicated, got %d", records.TotalItems)
		}
	})
}

func TestMarketService_CompareWithETF(t *testing.T) {
	now := time.Now().UTC().Truncate(24 * time.Hour)

	t.Run("portfolio_outperforms", func(t *testing.T) {
		provider := &fakeProvider{history: map[string][]marketdata.Candle{"SPY": candles(now, 100, 110)}}
		svc, teardown := newTestMarketService(t, provider)
		defer teardown()
		testutil.CreatePricedTestEntry(t, svc.db, "AAPL", d("100"), d("2"), d("120"))

		cmp, err := svc.CompareWithETF(context.Background(), "", now.AddDate(0, 0, -1))
		testutil.AssertNoError(t, err)

		if cmp.ETF.Symbol != DefaultCompareETF {
			t.Errorf("expected default ETF %s, got %s", DefaultCompareETF, cmp.ETF.Symbol)
		}
		if math.Abs(cmp.Portfolio.ProfitLossPercent-20) > 1e-9 {
			t.Errorf("expected portfolio +20%%, got %f", cmp.Portfolio.ProfitLossPercent)
		}
		if math.Abs(cmp.ETF.Performance.ProfitLossPercent-10) > 1e-9 {
			t.Errorf("expected ETF +10%%, got %f", cmp.ETF.Performance.ProfitLossPercent)
		}
		if !cmp.Comparison.PortfolioOutperforms {
			t.Error("expected portfolio to outperform")
		}
		if math.Abs(cmp.Comparison.DifferencePercent-10) > 1e-9 {
			t.Errorf("expected difference 10, got %f", cmp.Comparison.DifferencePercent)
		}
	})

	t.Run("no_entries", func(t *testing.T) {
		svc, teardown := newTestMarketService(t, &fakeProvider{})
		defer teardown()

		_, err := svc.CompareWithETF(context.Background(), "SPY", now)
		testutil.AssertAppError(t, err, "NO_ENTRIES")
	})

	t.Run("prices_not_updated", func(t *testing.T) {
		svc, teardown := newTestMarketService(t, &fakeProvider{})
		defer teardown()
		testutil.CreateTestEntry(t, svc.db)

		_, err := svc.CompareWithETF(context.Background(), "SPY", now)
		testutil.AssertAppError(t, err, "PRICES_NOT_UPDATED")
	})

	t.Run("missing_start_date", func(t *testing.T) {
		svc, teardown := newTestMarketService(t, &fakeProvider{})
		defer teardown()

		_, err := svc.CompareWithETF(context.Background(), "SPY", time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
