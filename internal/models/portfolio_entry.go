package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EntrySource tells how a portfolio entry was created.
type EntrySource string

const (
	EntrySourceManual EntrySource = "manual"
	EntrySourceOCR    EntrySource = "ocr"
)

// PortfolioEntry is one purchase lot of a security.
type PortfolioEntry struct {
	Base
	Symbol        string              `gorm:"not null;index" json:"symbol"`
	CompanyName   string              `json:"company_name,omitempty"`
	PurchaseDate  time.Time           `gorm:"type:date;not null" json:"purchase_date"`
	PurchasePrice decimal.Decimal     `gorm:"type:numeric(20,8);not null" json:"purchase_price"`
	Quantity      decimal.Decimal     `gorm:"type:numeric(20,8);not null" json:"quantity"`
	TotalValue    decimal.Decimal     `gorm:"type:numeric(20,8);not null" json:"total_value"`
	Currency      string              `gorm:"not null;default:'EUR'" json:"currency"`
	CurrentPrice  decimal.NullDecimal `gorm:"type:numeric(20,8)" json:"current_price"`
	CurrentValue  decimal.NullDecimal `gorm:"type:numeric(20,8)" json:"current_value"`
	LastUpdated   *time.Time          `json:"last_updated,omitempty"`
	Source        EntrySource         `gorm:"not null;default:'manual'" json:"source"`
	Confidence    *int                `json:"confidence,omitempty"`
}

// NewPortfolioEntry creates an entry whose total value is price times quantity.
func NewPortfolioEntry(symbol, companyName string, purchaseDate time.Time, price, quantity decimal.Decimal) *PortfolioEntry {
	return &PortfolioEntry{
		Symbol:        symbol,
		CompanyName:   companyName,
		PurchaseDate:  purchaseDate,
		PurchasePrice: price,
		Quantity:      quantity,
		TotalValue:    price.Mul(quantity),
		Source:        EntrySourceManual,
	}
}

// UpdateCurrentPrice sets the current price and value and stamps the update time.
func (e *PortfolioEntry) UpdateCurrentPrice(price decimal.Decimal, at time.Time) {
	e.CurrentPrice = decimal.NewNullDecimal(price)
	e.CurrentValue = decimal.NewNullDecimal(price.Mul(e.Quantity))
	e.LastUpdated = &at
}

// ProfitLoss returns current value minus total value, or zero when no current price is known.
func (e *PortfolioEntry) ProfitLoss() decimal.Decimal {
	if !e.CurrentValue.Valid {
		return decimal.Zero
	}
	return e.CurrentValue.Decimal.Sub(e.TotalValue)
}

// ProfitLossPercent returns ProfitLoss relative to the total value, in percent.
func (e *PortfolioEntry) ProfitLossPercent() decimal.Decimal {
	if !e.CurrentValue.Valid || e.TotalValue.IsZero() {
		return decimal.Zero
	}
	return e.ProfitLoss().Div(e.TotalValue).Mul(decimal.NewFromInt(100))
}

// MarketValue is the current value when known, otherwise the invested total.
func (e *PortfolioEntry) MarketValue() decimal.Decimal {
	if e.CurrentValue.Valid {
		return e.CurrentValue.Decimal
	}
	return e.TotalValue
}
