package rebalance

// Holding is a named position in a portfolio.
type Holding struct {
	name   string
	shares Quantity
}

// NewHolding returns a holding of 'shares' shares of 'name'.
//
// It fails with an *InvalidShareCountError if shares is negative.
func NewHolding(name string, shares Quantity) (Holding, error) {
	if name == "" {
		return Holding{}, ErrEmptyName
	}
	if shares.IsNegative() {
		return Holding{}, &InvalidShareCountError{Name: name, Shares: shares}
	}
	return Holding{name: name, shares: shares}, nil
}

func (h Holding) Name() string     { return h.name }
func (h Holding) Shares() Quantity { return h.shares }

// CurrentValue returns the market value of the holding at 'price' per share.
// Prices are not validated here, callers must check them first.
func (h Holding) CurrentValue(price Money) Money { return price.Mul(h.shares) }
