package extraction

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// fieldSpec is the declarative description of one field extractor: its
// ordered rules, how a candidate string becomes a typed value, and the
// confidence it is worth.
type fieldSpec[T any] struct {
	field  Field
	rules  []Rule
	points int
	parse  func(string) (T, bool)

	// order reorders the candidates of one rule before they are tried.
	order func([]candidate) []candidate
}

type match[T any] struct {
	value    T
	currency string
	hit      Hit
}

// find walks the rules in precedence order. Within a rule the first candidate
// that parses wins; a rule whose candidates all fail to parse hands over to
// the next rule.
func (f fieldSpec[T]) find(text string) (match[T], bool) {
	for _, r := range f.rules {
		cands := r.candidates(text)
		if f.order != nil {
			cands = f.order(cands)
		}
		for _, c := range cands {
			v, ok := f.parse(c.value)
			if !ok {
				continue
			}
			return match[T]{
				value:    v,
				currency: currencyCode(c.currency),
				hit:      Hit{Field: f.field, Rule: r.Name, Points: f.points},
			}, true
		}
	}
	return match[T]{}, false
}

func longestFirst(cands []candidate) []candidate {
	sorted := append([]candidate(nil), cands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].value) > len(sorted[j].value)
	})
	return sorted
}

func parseSymbol(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, s != ""
}

func parseCompany(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

var (
	symbolField = fieldSpec[string]{
		field: FieldSymbol, rules: symbolRules, points: SymbolPoints, parse: parseSymbol,
	}
	companyField = fieldSpec[string]{
		field: FieldCompanyName, rules: companyRules, points: CompanyNamePoints, parse: parseCompany,
		order: longestFirst,
	}
	dateField = fieldSpec[time.Time]{
		field: FieldPurchaseDate, rules: dateRules, points: DatePoints, parse: parseDate,
	}
	priceField = fieldSpec[decimal.Decimal]{
		field: FieldPurchasePrice, rules: priceRules, points: PricePoints, parse: parseAmount,
	}
	quantityField = fieldSpec[decimal.Decimal]{
		field: FieldQuantity, rules: quantityRules, points: QuantityPoints, parse: parseAmount,
	}
	totalField = fieldSpec[decimal.Decimal]{
		field: FieldTotalValue, rules: totalRules, points: TotalValuePoints, parse: parseAmount,
	}
)
