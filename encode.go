package rebalance

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Definition is the human-editable form of a portfolio.
//
//	{
//	  "currency": "USD",
//	  "holdings": {"META": 1, "APPL": 5, "GOOGLE": 10},
//	  "allocation": {"META": 0.2, "APPL": 0.1, "GOOGLE": 0.7}
//	}
type Definition struct {
	Currency   string                     `json:"currency,omitempty"`
	Holdings   map[string]decimal.Decimal `json:"holdings"`
	Allocation map[string]decimal.Decimal `json:"allocation"`
}

// Portfolio validates the definition and returns the portfolio it describes.
func (d Definition) Portfolio() (*Portfolio, error) {
	holdings := make([]Holding, 0, len(d.Holdings))
	for _, name := range slices.Sorted(maps.Keys(d.Holdings)) {
		h, err := NewHolding(name, Q(d.Holdings[name]))
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return NewPortfolio(d.Currency, Allocation(d.Allocation), holdings...)
}

// Definition returns the portfolio in its human-editable form.
func (p *Portfolio) Definition() Definition {
	d := Definition{
		Currency:   p.currency,
		Holdings:   make(map[string]decimal.Decimal, len(p.holdings)),
		Allocation: maps.Clone(p.allocation),
	}
	for name, h := range p.holdings {
		d.Holdings[name] = h.shares.value
	}
	return d
}

// DecodePortfolio reads a JSON portfolio definition.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var d Definition
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("format error in portfolio: %w", err)
	}
	return d.Portfolio()
}

// EncodePortfolio writes the portfolio as an indented JSON definition.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p.Definition())
}

// DecodePrices reads prices per share in 'currency' from a JSON document.
//
// If path is empty the document must be an object mapping names to prices.
// Otherwise path is a JSONPath expression (e.g. "$.quotes") selecting such an
// object within the document. Prices can be numbers or numeric strings.
func DecodePrices(r io.Reader, path, currency string) (Prices, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("format error in prices: %w", err)
	}

	if path != "" {
		v, err := jsonpath.Get(path, doc)
		if err != nil {
			return nil, fmt.Errorf("error selecting prices with %q: %w", path, err)
		}
		// jsonpath returns a list of 1 answer for some expressions:
		// keep the first one if any.
		if list, ok := v.([]any); ok && len(list) > 0 {
			v = list[0]
		}
		doc = v
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("format error in prices: want an object of name to price, got %T", doc)
	}
	prices := make(Prices, len(obj))
	for name, raw := range obj {
		d, err := parseDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("format error in prices for %q: %w", name, err)
		}
		prices[name] = M(d, currency)
	}
	return prices, nil
}

// parseDecimal reads a decimal out of a generic JSON value.
func parseDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case json.Number:
		return decimal.NewFromString(x.String())
	case float64:
		return decimal.NewFromFloat(x), nil
	case string:
		// some sources use a decimal comma
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", ".")
		return decimal.NewFromString(s)
	default:
		return decimal.Zero, fmt.Errorf("not a number: %v", v)
	}
}
