// Package extraction recovers a purchase record from the recognized text of
// a broker confirmation or similar document.
//
// Every field has an ordered list of pattern rules. The first rule producing
// a candidate that parses sets the field and awards the field's fixed
// confidence increment. Fields are independent of each other, except the
// total value, which is derived from price and quantity when both are known.
// Absence of a field is a normal outcome and never an error.
package extraction

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Hit records which rule set a field and how much confidence it earned.
type Hit struct {
	Field  Field  `json:"field"`
	Rule   string `json:"rule"`
	Points int    `json:"points"`
}

// Result is the record extracted from one document. Nil fields were not found.
type Result struct {
	Symbol        *string
	CompanyName   *string
	PurchaseDate  *time.Time
	PurchasePrice *decimal.Decimal
	Quantity      *decimal.Decimal
	TotalValue    *decimal.Decimal

	// TotalDerived is true when TotalValue is PurchasePrice * Quantity.
	TotalDerived bool
	// Currency is the ISO code next to the winning price, if any.
	Currency string
	// Confidence is the uncapped sum of Hits' points.
	Confidence int
	Hits       []Hit
}

// Extract normalizes text and runs every field extractor over it.
func Extract(text string) Result {
	text = Normalize(text)

	var r Result
	award := func(h Hit) {
		r.Hits = append(r.Hits, h)
		r.Confidence += h.Points
	}

	if m, ok := symbolField.find(text); ok {
		r.Symbol = &m.value
		award(m.hit)
	}
	if m, ok := companyField.find(text); ok {
		r.CompanyName = &m.value
		award(m.hit)
	}
	if m, ok := dateField.find(text); ok {
		r.PurchaseDate = &m.value
		award(m.hit)
	}
	if m, ok := priceField.find(text); ok {
		r.PurchasePrice = &m.value
		r.Currency = m.currency
		award(m.hit)
	}
	if m, ok := quantityField.find(text); ok {
		r.Quantity = &m.value
		award(m.hit)
	}

	if r.PurchasePrice != nil && r.Quantity != nil {
		total := r.PurchasePrice.Mul(*r.Quantity)
		r.TotalValue = &total
		r.TotalDerived = true
	} else if m, ok := totalField.find(text); ok {
		r.TotalValue = &m.value
		award(m.hit)
	}

	return r
}

// Fields lists the fields that were found, in extraction order.
func (r Result) Fields() []Field {
	var fields []Field
	if r.Symbol != nil {
		fields = append(fields, FieldSymbol)
	}
	if r.CompanyName != nil {
		fields = append(fields, FieldCompanyName)
	}
	if r.PurchaseDate != nil {
		fields = append(fields, FieldPurchaseDate)
	}
	if r.PurchasePrice != nil {
		fields = append(fields, FieldPurchasePrice)
	}
	if r.Quantity != nil {
		fields = append(fields, FieldQuantity)
	}
	if r.TotalValue != nil {
		fields = append(fields, FieldTotalValue)
	}
	return fields
}

// Trusted reports whether the result is complete enough to be stored without
// review: symbol, date, price and quantity are all present and the confidence
// reaches threshold.
func (r Result) Trusted(threshold int) bool {
	return r.Symbol != nil &&
		r.PurchaseDate != nil &&
		r.PurchasePrice != nil &&
		r.Quantity != nil &&
		r.Confidence >= threshold
}

// amount renders a decimal as a bare JSON number.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func amountOf(d *decimal.Decimal) *amount {
	if d == nil {
		return nil
	}
	a := amount(*d)
	return &a
}

type resultJSON struct {
	Symbol        *string `json:"symbol"`
	CompanyName   *string `json:"company_name"`
	PurchaseDate  *string `json:"purchase_date"`
	PurchasePrice *amount `json:"purchase_price"`
	Quantity      *amount `json:"quantity"`
	TotalValue    *amount `json:"total_value"`
	TotalDerived  bool    `json:"total_derived"`
	Currency      string  `json:"currency,omitempty"`
	Confidence    int     `json:"confidence"`
	Hits          []Hit   `json:"hits"`
}

// MarshalJSON renders the purchase date as YYYY-MM-DD and unset fields as null.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Symbol:        r.Symbol,
		CompanyName:   r.CompanyName,
		PurchasePrice: amountOf(r.PurchasePrice),
		Quantity:      amountOf(r.Quantity),
		TotalValue:    amountOf(r.TotalValue),
		TotalDerived:  r.TotalDerived,
		Currency:      r.Currency,
		Confidence:    r.Confidence,
		Hits:          r.Hits,
	}
	if r.PurchaseDate != nil {
		d := r.PurchaseDate.Format(time.DateOnly)
		out.PurchaseDate = &d
	}
	if out.Hits == nil {
		out.Hits = []Hit{}
	}
	return json.Marshal(out)
}
