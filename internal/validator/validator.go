// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9.\-]{1,12}$`)

// now is replaced in tests.
var now = time.Now

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("iso4217", validateISO4217)
	_ = v.RegisterValidation("ticker", validateTicker)
	_ = v.RegisterValidation("date_only", validateDateOnly)
	_ = v.RegisterValidation("not_future_date", validateNotFutureDate)
	_ = v.RegisterValidation("entry_source", validateEntrySource)
}

func validateISO4217(fl validator.FieldLevel) bool {
	return money.GetCurrency(fl.Field().String()) != nil
}

func validateTicker(fl validator.FieldLevel) bool {
	return tickerRegex.MatchString(fl.Field().String())
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

// validateNotFutureDate accepts a YYYY-MM-DD string or a time.Time that is not after today.
func validateNotFutureDate(fl validator.FieldLevel) bool {
	var d time.Time
	switch v := fl.Field().Interface().(type) {
	case time.Time:
		d = v
	case string:
		parsed, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return false
		}
		d = parsed
	default:
		return false
	}
	y, m, day := now().Date()
	endOfToday := time.Date(y, m, day+1, 0, 0, 0, 0, time.UTC)
	return d.Before(endOfToday)
}

func validateEntrySource(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "manual", "ocr":
		return true
	}
	return false
}
