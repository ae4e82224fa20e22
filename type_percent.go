package rebalance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a share of the portfolio value, in percent.
type Percent float64

// percentOf converts a fraction in [0,1] into a Percent.
func percentOf(f decimal.Decimal) Percent {
	return Percent(f.Shift(2).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
