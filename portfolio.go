package rebalance

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a portfolio is declared without a currency.
const DefaultCurrency = "USD"

// Allocation maps a holding name to the fraction of the total portfolio value
// it should represent.
type Allocation map[string]decimal.Decimal

// A[T] is a convenient factory for an Allocation from plain numbers.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](fractions map[string]T) Allocation {
	a := make(Allocation, len(fractions))
	for name, f := range fractions {
		a[name] = newDecimal(f)
	}
	return a
}

// Portfolio is a set of holdings and the target allocation they should reach.
//
// A Portfolio is immutable once created, and safe for concurrent use.
type Portfolio struct {
	currency   string
	holdings   map[string]Holding
	allocation Allocation
}

// NewPortfolio validates and returns a new portfolio.
//
// Every name in the allocation must be one of the holdings, every fraction
// must be in (0,1] and they must sum to 1 (within DefaultTolerance).
// Holdings missing from the allocation have a target of 0.
func NewPortfolio(currency string, allocation Allocation, holdings ...Holding) (*Portfolio, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	p := &Portfolio{
		currency:   currency,
		holdings:   make(map[string]Holding, len(holdings)),
		allocation: make(Allocation, len(allocation)),
	}
	for _, h := range holdings {
		if h.name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := p.holdings[h.name]; exists {
			return nil, &DuplicateHoldingError{Name: h.name}
		}
		p.holdings[h.name] = h
	}

	one := decimal.NewFromInt(1)
	sum := decimal.Zero
	// sorted for stable error reporting
	for _, name := range slices.Sorted(maps.Keys(allocation)) {
		f := allocation[name]
		if _, exists := p.holdings[name]; !exists {
			return nil, &UnknownHoldingError{Name: name}
		}
		if !f.IsPositive() || f.GreaterThan(one) {
			return nil, &InvalidAllocationError{Name: name, Fraction: f, Reason: "is not in (0,1]"}
		}
		p.allocation[name] = f
		sum = sum.Add(f)
	}
	if !approxEqual(sum, one, DefaultTolerance) {
		return nil, &InvalidAllocationError{Fraction: sum, Reason: "fractions sum to " + sum.String() + ", want 1"}
	}
	return p, nil
}

// Currency returns the currency the portfolio is valued in.
func (p *Portfolio) Currency() string { return p.currency }

// Names returns the holding names in alphabetical order.
func (p *Portfolio) Names() []string { return slices.Sorted(maps.Keys(p.holdings)) }

// Holding returns the holding named 'name'.
func (p *Portfolio) Holding(name string) (Holding, bool) {
	h, ok := p.holdings[name]
	return h, ok
}

// Target returns the target fraction for 'name', and whether it is part of
// the allocation at all.
func (p *Portfolio) Target(name string) (decimal.Decimal, bool) {
	f, ok := p.allocation[name]
	return f, ok
}

// Allocation returns a copy of the target allocation.
func (p *Portfolio) Allocation() Allocation { return maps.Clone(p.allocation) }
