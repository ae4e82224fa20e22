package rebalance

import "github.com/shopspring/decimal"

// Prices maps a holding name to its current price per share.
type Prices map[string]Money

// NewPrices returns prices in 'currency' from plain numbers.
func NewPrices[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](currency string, values map[string]T) Prices {
	p := make(Prices, len(values))
	for name, v := range values {
		p[name] = M(v, currency)
	}
	return p
}

// Validate checks that every name in 'names' has a strictly positive price in
// 'currency'. A price without currency is accepted in any currency.
//
// Names are checked in order, the first failure is returned.
func (p Prices) Validate(currency string, names ...string) error {
	for _, name := range names {
		price, exists := p[name]
		if !exists {
			return &MissingPriceError{Name: name}
		}
		if !price.IsPositive() {
			return &InvalidPriceError{Name: name, Price: price}
		}
		if price.cur != "" && price.cur != currency {
			return &CurrencyMismatchError{Name: name, Currency: price.cur, Want: currency}
		}
	}
	return nil
}
