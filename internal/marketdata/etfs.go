package marketdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed etfs.yaml
var catalogueYAML []byte

// Listing is a symbol with a display name.
type Listing struct {
	Symbol      string `yaml:"symbol" json:"symbol"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type catalogue struct {
	Popular  []Listing `yaml:"popular"`
	Trending []Listing `yaml:"trending"`
}

var builtin = mustParseCatalogue(catalogueYAML)

func parseCatalogue(data []byte) (catalogue, error) {
	var c catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return catalogue{}, fmt.Errorf("parsing ETF catalogue: %w", err)
	}
	for _, l := range append(append([]Listing{}, c.Popular...), c.Trending...) {
		if l.Symbol == "" {
			return catalogue{}, fmt.Errorf("parsing ETF catalogue: listing %q has no symbol", l.Name)
		}
	}
	return c, nil
}

func mustParseCatalogue(data []byte) catalogue {
	c, err := parseCatalogue(data)
	if err != nil {
		panic(err)
	}
	return c
}

// PopularETFs returns the ETFs suggested for comparisons.
func PopularETFs() []Listing {
	return append([]Listing(nil), builtin.Popular...)
}

// Trending returns the symbols of the trending board.
func Trending() []Listing {
	return append([]Listing(nil), builtin.Trending...)
}
