package marketdata

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// tradingDaysPerYear annualizes daily volatility.
const tradingDaysPerYear = 252

// ErrNoHistory means a performance cannot be computed from an empty series.
var ErrNoHistory = errors.New("no price history")

// Performance is the result of investing an amount into a symbol on a date
// and holding it until the last candle.
type Performance struct {
	InitialPrice      float64   `json:"initial_price"`
	CurrentPrice      float64   `json:"current_price"`
	InitialInvestment float64   `json:"initial_investment"`
	CurrentValue      float64   `json:"current_value"`
	ProfitLoss        float64   `json:"profit_loss"`
	ProfitLossPercent float64   `json:"profit_loss_percent"`
	Shares            float64   `json:"shares"`
	InvestmentDate    time.Time `json:"investment_date"`
	CurrentDate       time.Time `json:"current_date"`
	// Volatility is the annualized standard deviation of daily returns in percent.
	Volatility float64 `json:"volatility"`
	// MeanDailyReturn is the average daily return in percent.
	MeanDailyReturn float64 `json:"mean_daily_return"`
}

// CalculatePerformance buys amount worth at the close of the candle nearest to
// investedAt (the earliest such candle on ties) and values it at the last
// candle's close. history must be ordered oldest first.
func CalculatePerformance(history []Candle, investedAt time.Time, amount float64) (*Performance, error) {
	if len(history) == 0 {
		return nil, ErrNoHistory
	}

	start := 0
	best := math.MaxFloat64
	for i, c := range history {
		diff := math.Abs(c.Date.Sub(investedAt).Hours())
		if diff < best {
			best = diff
			start = i
		}
	}

	initial := history[start]
	current := history[len(history)-1]
	if initial.Close <= 0 {
		return nil, errors.New("initial close price is not positive")
	}

	shares := amount / initial.Close
	value := shares * current.Close
	pl := value - amount
	plPct := 0.0
	if amount != 0 {
		plPct = pl / amount * 100
	}

	return &Performance{
		InitialPrice:      initial.Close,
		CurrentPrice:      current.Close,
		InitialInvestment: amount,
		CurrentValue:      value,
		ProfitLoss:        pl,
		ProfitLossPercent: plPct,
		Shares:            shares,
		InvestmentDate:    initial.Date,
		CurrentDate:       current.Date,
		Volatility:        Volatility(history[start:]),
		MeanDailyReturn:   MeanDailyReturn(history[start:]),
	}, nil
}

// Volatility returns the annualized standard deviation of daily close-to-close
// returns in percent. Fewer than three candles yield 0.
func Volatility(history []Candle) float64 {
	if len(history) < 3 {
		return 0
	}
	returns := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		prev := history[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, history[i].Close/prev-1)
	}
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(tradingDaysPerYear) * 100
}

// MeanDailyReturn returns the average daily close-to-close return in percent.
func MeanDailyReturn(history []Candle) float64 {
	if len(history) < 2 {
		return 0
	}
	returns := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		if prev := history[i-1].Close; prev != 0 {
			returns = append(returns, history[i].Close/prev-1)
		}
	}
	if len(returns) == 0 {
		return 0
	}
	return stat.Mean(returns, nil) * 100
}
