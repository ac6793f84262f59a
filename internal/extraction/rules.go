package extraction

import (
	"regexp"
	"strings"
)

// Field names one slot of a Result.
type Field string

const (
	FieldSymbol        Field = "symbol"
	FieldCompanyName   Field = "company_name"
	FieldPurchaseDate  Field = "purchase_date"
	FieldPurchasePrice Field = "purchase_price"
	FieldQuantity      Field = "quantity"
	FieldTotalValue    Field = "total_value"
)

// Confidence increments awarded once per field.
const (
	SymbolPoints      = 20
	CompanyNamePoints = 15
	DatePoints        = 25
	PricePoints       = 20
	QuantityPoints    = 20
	TotalValuePoints  = 10
)

// Rule is one pattern of a field's ordered rule list. Patterns expose the
// matched text in a named group "value" and, for amounts, the currency
// marker in a group "currency".
type Rule struct {
	Name    string
	Pattern *regexp.Regexp

	// refine rewrites the raw candidates of this rule before parsing.
	refine func([]candidate) []candidate
}

type candidate struct {
	value    string
	currency string
}

func (r Rule) candidates(text string) []candidate {
	valueIdx := r.Pattern.SubexpIndex("value")
	currencyIdx := r.Pattern.SubexpIndex("currency")

	var out []candidate
	for _, m := range r.Pattern.FindAllStringSubmatch(text, -1) {
		c := candidate{value: m[valueIdx]}
		if currencyIdx >= 0 {
			c.currency = m[currencyIdx]
		}
		out = append(out, c)
	}
	if r.refine != nil {
		out = r.refine(out)
	}
	return out
}

const (
	number   = `\d+(?:[.,]\d+)*`
	currency = `(?P<currency>€|EUR|USD|\$)`
)

var symbolRules = []Rule{
	{Name: "symbol_label", Pattern: regexp.MustCompile(`(?i)\b(?:Symbol|Ticker)[:\s]+(?P<value>[A-Z]{2,5})\b`)},
	{Name: "wkn_label", Pattern: regexp.MustCompile(`(?i)\bWKN[:\s]+(?P<value>[A-Z0-9]{6})\b`)},
	{Name: "isin_label", Pattern: regexp.MustCompile(`(?i)\bISIN[:\s]+(?P<value>[A-Z]{2}[A-Z0-9]{10})\b`)},
	{Name: "bare_uppercase", Pattern: regexp.MustCompile(`\b(?P<value>[A-Z]{2,5})\b`)},
}

var companyRules = []Rule{
	{
		Name:    "company_label",
		Pattern: regexp.MustCompile(`(?i)\b(?:Unternehmen|Company|Firma)[:\s]+(?P<value>[\p{L}&.,' -]+)`),
		refine:  cutAtVocabulary,
	},
	{
		Name:    "capitalized_words",
		Pattern: regexp.MustCompile(`(?P<value>\p{Lu}\p{Ll}+(?:\s+\p{Lu}\p{Ll}+)*(?:\s+(?:AG|GmbH|Inc|Corp|Ltd|SE|SA)\b)?)`),
		refine:  splitAtVocabulary,
	},
}

// The labeled date comes first on purpose: a confirmation often carries a
// value date before the trade date, and only the label identifies the purchase.
var dateRules = []Rule{
	{Name: "date_label", Pattern: regexp.MustCompile(`(?i)\b(?:Datum|Date|Kauf|Purchase)[:\s]+(?P<value>\d{1,2}[./]\d{1,2}[./]\d{2,4})\b`)},
	{Name: "day_month_year", Pattern: regexp.MustCompile(`\b(?P<value>\d{1,2}[./]\d{1,2}[./]\d{2,4})\b`)},
	{Name: "year_month_day", Pattern: regexp.MustCompile(`\b(?P<value>\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`)},
}

var priceRules = []Rule{
	{Name: "price_label", Pattern: regexp.MustCompile(`(?i)\b(?:Preis|Price|Kurs|Rate)[:\s]*(?P<value>` + number + `)\s*` + currency)},
	{Name: "amount_with_currency", Pattern: regexp.MustCompile(`(?i)(?P<value>` + number + `)\s*` + currency)},
	{Name: "unit_label", Pattern: regexp.MustCompile(`(?i)(?:Stück|Piece|Unit)[:\s]*(?P<value>` + number + `)`)},
}

var quantityRules = []Rule{
	{Name: "quantity_label", Pattern: regexp.MustCompile(`(?i)(?:Anzahl|Quantity|Stück|Shares|Menge)[:\s]*(?P<value>` + number + `)`)},
	{Name: "count_with_unit", Pattern: regexp.MustCompile(`(?i)(?P<value>` + number + `)\s*(?:Stück|Shares|St\.)`)},
}

var totalRules = []Rule{
	{Name: "total_label", Pattern: regexp.MustCompile(`(?i)\b(?:Gesamt|Total|Summe)[:\s]*(?P<value>` + number + `)\s*` + currency)},
	{Name: "amount_label", Pattern: regexp.MustCompile(`(?i)\b(?:Betrag|Amount)[:\s]*(?P<value>` + number + `)\s*` + currency)},
}

// Rules returns a copy of the ordered rule list for f. Earlier rules take precedence.
func Rules(f Field) []Rule {
	var rules []Rule
	switch f {
	case FieldSymbol:
		rules = symbolRules
	case FieldCompanyName:
		rules = companyRules
	case FieldPurchaseDate:
		rules = dateRules
	case FieldPurchasePrice:
		rules = priceRules
	case FieldQuantity:
		rules = quantityRules
	case FieldTotalValue:
		rules = totalRules
	}
	return append([]Rule(nil), rules...)
}

// vocabulary holds the label words of all fields. Capitalized label words are
// never part of a company name.
var vocabulary = map[string]bool{}

func init() {
	for _, w := range []string{
		"symbol", "ticker", "wkn", "isin",
		"unternehmen", "company", "firma",
		"datum", "date", "kauf", "purchase",
		"preis", "price", "kurs", "rate",
		"stück", "piece", "unit",
		"anzahl", "quantity", "shares", "menge",
		"gesamt", "total", "summe", "betrag", "amount",
	} {
		vocabulary[w] = true
	}
}

var legalSuffixes = map[string]bool{
	"AG": true, "GmbH": true, "Inc": true, "Corp": true, "Ltd": true, "SE": true, "SA": true,
}

func isVocabulary(word string) bool {
	return vocabulary[strings.ToLower(strings.Trim(word, ".,:;"))]
}

// cutAtVocabulary keeps the words of each candidate up to the first label word.
func cutAtVocabulary(cands []candidate) []candidate {
	var out []candidate
	for _, c := range cands {
		var kept []string
		for _, w := range strings.Fields(c.value) {
			if isVocabulary(w) {
				break
			}
			kept = append(kept, w)
		}
		if name := joinName(kept); name != "" {
			out = append(out, candidate{value: name})
		}
	}
	return out
}

// splitAtVocabulary breaks each candidate into the word runs between label words.
func splitAtVocabulary(cands []candidate) []candidate {
	var out []candidate
	for _, c := range cands {
		var run []string
		flush := func() {
			if name := joinName(run); name != "" {
				out = append(out, candidate{value: name})
			}
			run = nil
		}
		for _, w := range strings.Fields(c.value) {
			if isVocabulary(w) {
				flush()
				continue
			}
			run = append(run, w)
		}
		flush()
	}
	return out
}

// joinName joins words into a name, or returns "" when only a legal suffix is left.
func joinName(words []string) string {
	if len(words) == 0 || (len(words) == 1 && legalSuffixes[words[0]]) {
		return ""
	}
	return strings.Trim(strings.Join(words, " "), " ,&-'")
}
