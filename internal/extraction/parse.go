package extraction

import (
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// twoDigitYearPivot splits two-digit years: below it they are 20xx, from it on 19xx.
const twoDigitYearPivot = 69

// parseAmount turns a captured number such as "150,50", "1.234,56" or "1,234.56"
// into a non-negative decimal. A single separator is read as the decimal mark;
// when both marks occur the last one is the decimal mark and the other groups digits.
// Grouped digits must come in threes after the first group, so "12,34,56" fails.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), ".,")
	if s == "" {
		return decimal.Decimal{}, false
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			if !grouped(s[:lastComma], ".") {
				return decimal.Decimal{}, false
			}
			s = strings.ReplaceAll(s[:lastComma], ".", "") + "." + s[lastComma+1:]
		} else {
			if !grouped(s[:lastDot], ",") {
				return decimal.Decimal{}, false
			}
			s = strings.ReplaceAll(s[:lastDot], ",", "") + s[lastDot:]
		}
	case strings.Count(s, ",") > 1:
		if !grouped(s, ",") {
			return decimal.Decimal{}, false
		}
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ".") > 1:
		if !grouped(s, ".") {
			return decimal.Decimal{}, false
		}
		s = strings.ReplaceAll(s, ".", "")
	default:
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// grouped reports whether s is digits split by sep into a leading group of
// one to three digits followed by groups of exactly three.
func grouped(s, sep string) bool {
	groups := strings.Split(s, sep)
	for i, g := range groups {
		if !allDigits(g) {
			return false
		}
		if i == 0 && (len(g) == 0 || len(g) > 3) {
			return false
		}
		if i > 0 && len(g) != 3 {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseDate reads a numeric date. A four-digit leading part means Y-M-D;
// otherwise the date is read day first (D.M.Y), and when that is not a real
// calendar date the month-first reading is tried before giving up.
func parseDate(s string) (time.Time, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '/' || r == '-'
	})
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	if len(parts[0]) == 4 {
		return calendarDate(nums[0], nums[1], nums[2])
	}

	year, ok := expandYear(parts[2], nums[2])
	if !ok {
		return time.Time{}, false
	}
	if d, ok := calendarDate(year, nums[1], nums[0]); ok {
		return d, true
	}
	return calendarDate(year, nums[0], nums[1])
}

func expandYear(raw string, n int) (int, bool) {
	switch len(raw) {
	case 4:
		return n, true
	case 2:
		if n < twoDigitYearPivot {
			return 2000 + n, true
		}
		return 1900 + n, true
	default:
		return 0, false
	}
}

// calendarDate rejects dates that time.Date would silently normalize, like 31.02.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, false
	}
	return d, true
}

// currencyCode maps a captured currency marker to its ISO 4217 code.
func currencyCode(marker string) string {
	switch strings.ToUpper(strings.TrimSpace(marker)) {
	case "":
		return ""
	case "€", "EUR":
		return money.EUR
	case "$", "USD":
		return money.USD
	default:
		if c := money.GetCurrency(strings.ToUpper(marker)); c != nil {
			return c.Code
		}
		return ""
	}
}
