package validator

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

type entryInput struct {
	Symbol   string `validate:"required,ticker"`
	Date     string `validate:"required,date_only,not_future_date"`
	Currency string `validate:"omitempty,iso4217"`
	Source   string `validate:"omitempty,entry_source"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	RegisterOn(v)
	return v
}

func TestValidators(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC) }
	defer func() { now = time.Now }()

	v := newValidate(t)

	tests := []struct {
		name    string
		input   entryInput
		wantErr bool
	}{
		{"valid", entryInput{Symbol: "AAPL", Date: "2024-03-15", Currency: "EUR", Source: "ocr"}, false},
		{"valid_today", entryInput{Symbol: "BRK.B", Date: "2024-06-01"}, false},
		{"ticker_with_space", entryInput{Symbol: "AA PL", Date: "2024-03-15"}, true},
		{"ticker_too_long", entryInput{Symbol: "ABCDEFGHIJKLM", Date: "2024-03-15"}, true},
		{"bad_date_format", entryInput{Symbol: "AAPL", Date: "15.03.2024"}, true},
		{"future_date", entryInput{Symbol: "AAPL", Date: "2024-06-02"}, true},
		{"unknown_currency", entryInput{Symbol: "AAPL", Date: "2024-03-15", Currency: "XXY"}, true},
		{"unknown_source", entryInput{Symbol: "AAPL", Date: "2024-03-15", Source: "import"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
