package rebalance

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the relative tolerance used to decide that two computed
// quantities are equal.
//
// Target shares and target values come out of a division, so an exact
// comparison would report converged portfolios as unbalanced. A tolerance of
// 0 restores exact comparison.
const DefaultTolerance = 1e-9

// approxEqual reports whether a and b are equal within the relative tolerance
// 'tol'. With tol == 0 the comparison is exact.
func approxEqual(a, b decimal.Decimal, tol float64) bool {
	if a.Equal(b) {
		return true
	}
	if tol == 0 {
		return false
	}
	return scalar.EqualWithinRel(a.InexactFloat64(), b.InexactFloat64(), tol)
}

// Entry is the rebalancing outcome for a single holding.
type Entry struct {
	Name          string
	Shares        Quantity
	Price         Money
	CurrentValue  Money
	TargetValue   Money
	TargetShares  Quantity
	ShareDelta    Quantity // TargetShares - Shares
	CurrentWeight Percent
	TargetWeight  Percent
	Action        Action
	Amount        Money // always non-negative
}

// Report is the structured result of a rebalance computation.
type Report struct {
	Currency   string
	TotalValue Money
	Balanced   bool
	Tolerance  float64
	Entries    []Entry // sorted by name
}

// Entry returns the entry for 'name'.
func (r *Report) Entry(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Trades returns the entries that require a Buy or a Sell.
func (r *Report) Trades() []Entry {
	var trades []Entry
	for _, e := range r.Entries {
		if !e.Action.IsBalanced() {
			trades = append(trades, e)
		}
	}
	return trades
}

// Rebalance computes what to buy and sell to reach the target allocation at
// the given prices, using DefaultTolerance.
func (p *Portfolio) Rebalance(prices Prices) (*Report, error) {
	return p.RebalanceWithTolerance(prices, DefaultTolerance)
}

// RebalanceWithTolerance computes what to buy and sell to reach the target
// allocation at the given prices.
//
// Every holding must have a strictly positive price in the portfolio
// currency, otherwise nothing is computed and the validation error is
// returned.
func (p *Portfolio) RebalanceWithTolerance(prices Prices, tol float64) (*Report, error) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("%w: tolerance %v must be a non-negative number", ErrInvalidInput, tol)
	}
	names := p.Names()
	if err := prices.Validate(p.currency, names...); err != nil {
		return nil, err
	}

	total := M(0, p.currency)
	for _, name := range names {
		total = total.Add(p.holdings[name].CurrentValue(p.price(prices, name)))
	}

	report := &Report{
		Currency:   p.currency,
		TotalValue: total,
		Balanced:   true,
		Tolerance:  tol,
		Entries:    make([]Entry, 0, len(names)),
	}
	zero := M(0, p.currency)

	for _, name := range names {
		h := p.holdings[name]
		price := p.price(prices, name)
		fraction, allocated := p.allocation[name]

		e := Entry{
			Name:         name,
			Shares:       h.shares,
			Price:        price,
			CurrentValue: h.CurrentValue(price),
			TargetValue:  total.scale(fraction),
			TargetWeight: percentOf(fraction),
		}
		e.TargetShares = e.TargetValue.DivPrice(price)
		e.ShareDelta = e.TargetShares.Sub(e.Shares)
		if !total.IsZero() {
			e.CurrentWeight = percentOf(e.CurrentValue.value.Div(total.value))
		}

		// The verdict is on shares, the action on value.
		if allocated && !approxEqual(e.TargetShares.value, e.Shares.value, tol) {
			report.Balanced = false
		}

		difference := e.CurrentValue.Sub(e.TargetValue)
		switch {
		case approxEqual(e.CurrentValue.value, e.TargetValue.value, tol):
			e.Action, e.Amount = Balanced, zero
		case difference.IsPositive():
			e.Action, e.Amount = Sell, difference
		default:
			e.Action, e.Amount = Buy, difference.Neg()
		}
		report.Entries = append(report.Entries, e)
	}
	return report, nil
}

// price returns the price of 'name' expressed in the portfolio currency.
func (p *Portfolio) price(prices Prices, name string) Money {
	return Money{value: prices[name].value, cur: p.currency}
}

func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("shares", e.Shares)
	w.Append("price", e.Price.value)
	w.Append("currentValue", e.CurrentValue.rounded())
	w.Append("targetValue", e.TargetValue.rounded())
	w.Append("targetShares", e.TargetShares)
	w.Append("shareDelta", e.ShareDelta)
	w.Append("currentWeight", math.Round(float64(e.CurrentWeight)*100)/100)
	w.Append("targetWeight", math.Round(float64(e.TargetWeight)*100)/100)
	w.Append("action", e.Action)
	w.Append("amount", e.Amount.rounded())
	return w.MarshalJSON()
}

func (r *Report) MarshalJSON() ([]byte, error) {
	entries := make(map[string]Entry, len(r.Entries))
	for _, e := range r.Entries {
		entries[e.Name] = e
	}
	var w jsonObjectWriter
	w.Append("currency", r.Currency)
	w.Append("totalValue", r.TotalValue.rounded())
	w.Append("balanced", r.Balanced)
	w.Append("tolerance", r.Tolerance)
	w.Append("entries", entries)
	return w.MarshalJSON()
}
