package rebalance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is wrapped by every validation error of this package.
// None of them is retryable: the input has to be fixed.
var ErrInvalidInput = errors.New("invalid input")

// ErrEmptyName is returned when a holding is declared without a name.
var ErrEmptyName = fmt.Errorf("%w: empty holding name", ErrInvalidInput)

// MissingPriceError is returned when a holding has no price.
type MissingPriceError struct {
	Name string
}

func (e *MissingPriceError) Error() string { return fmt.Sprintf("missing price for %q", e.Name) }
func (e *MissingPriceError) Unwrap() error { return ErrInvalidInput }

// InvalidPriceError is returned when a holding price is zero or negative.
type InvalidPriceError struct {
	Name  string
	Price Money
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price for %q: %s must be strictly positive", e.Name, e.Price.value)
}
func (e *InvalidPriceError) Unwrap() error { return ErrInvalidInput }

// CurrencyMismatchError is returned when a price is not expressed in the
// portfolio currency.
type CurrencyMismatchError struct {
	Name     string
	Currency string
	Want     string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("price for %q is in %s, want %s", e.Name, e.Currency, e.Want)
}
func (e *CurrencyMismatchError) Unwrap() error { return ErrInvalidInput }

// UnknownHoldingError is returned when the allocation targets a name that is
// not held in the portfolio.
type UnknownHoldingError struct {
	Name string
}

func (e *UnknownHoldingError) Error() string {
	return fmt.Sprintf("allocation references unknown holding %q", e.Name)
}
func (e *UnknownHoldingError) Unwrap() error { return ErrInvalidInput }

// DuplicateHoldingError is returned when two holdings share the same name.
type DuplicateHoldingError struct {
	Name string
}

func (e *DuplicateHoldingError) Error() string { return fmt.Sprintf("duplicate holding %q", e.Name) }
func (e *DuplicateHoldingError) Unwrap() error { return ErrInvalidInput }

// InvalidShareCountError is returned when a holding is declared with a
// negative number of shares.
type InvalidShareCountError struct {
	Name   string
	Shares Quantity
}

func (e *InvalidShareCountError) Error() string {
	return fmt.Sprintf("invalid share count for %q: %s is negative", e.Name, e.Shares)
}
func (e *InvalidShareCountError) Unwrap() error { return ErrInvalidInput }

// InvalidAllocationError is returned when a target fraction is out of (0,1],
// or when the fractions do not sum to 1. Name is empty in the latter case.
type InvalidAllocationError struct {
	Name     string
	Fraction decimal.Decimal
	Reason   string
}

func (e *InvalidAllocationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid allocation: %s", e.Reason)
	}
	return fmt.Sprintf("invalid allocation for %q: %s %s", e.Name, e.Fraction, e.Reason)
}
func (e *InvalidAllocationError) Unwrap() error { return ErrInvalidInput }
