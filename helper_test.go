package rebalance

import "testing"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// must is a helper for test to panic on construction errors.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// newTestPortfolio builds a USD portfolio from plain numbers.
func newTestPortfolio(t *testing.T, shares map[string]float64, allocation map[string]float64) *Portfolio {
	t.Helper()
	var holdings []Holding
	for name, s := range shares {
		h, err := NewHolding(name, Q(s))
		if err != nil {
			t.Fatalf("NewHolding(%q, %v) error = %v", name, s, err)
		}
		holdings = append(holdings, h)
	}
	p, err := NewPortfolio("USD", A(allocation), holdings...)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}
	return p
}
