package rebalance

import (
	"errors"
	"testing"
)

func TestNewHolding(t *testing.T) {
	h, err := NewHolding("META", Q(3))
	if err != nil {
		t.Fatalf("NewHolding() error = %v", err)
	}
	if h.Name() != "META" {
		t.Errorf("Name() = %q, want %q", h.Name(), "META")
	}
	if !h.Shares().Equal(Q(3)) {
		t.Errorf("Shares() = %v, want 3", h.Shares())
	}
}

func TestNewHolding_ZeroShares(t *testing.T) {
	h, err := NewHolding("META", Q(0))
	if err != nil {
		t.Fatalf("NewHolding() error = %v", err)
	}
	if got := h.CurrentValue(USD(50)); !got.IsZero() {
		t.Errorf("CurrentValue() = %v, want 0", got)
	}
}

func TestNewHolding_NegativeShares(t *testing.T) {
	_, err := NewHolding("META", Q(-1))
	var target *InvalidShareCountError
	if !errors.As(err, &target) {
		t.Fatalf("NewHolding() error = %v, want *InvalidShareCountError", err)
	}
	if target.Name != "META" || !target.Shares.Equal(Q(-1)) {
		t.Errorf("error = %+v, want META with -1 shares", target)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("errors.Is(%v, ErrInvalidInput) = false, want true", err)
	}
}

func TestNewHolding_EmptyName(t *testing.T) {
	if _, err := NewHolding("", Q(1)); !errors.Is(err, ErrEmptyName) {
		t.Errorf("NewHolding(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestHolding_CurrentValue(t *testing.T) {
	tests := []struct {
		shares float64
		price  float64
		want   float64
	}{
		{shares: 1, price: 50, want: 50},
		{shares: 5, price: 10, want: 50},
		{shares: 10, price: 20, want: 200},
		{shares: 0.5, price: 3.3, want: 1.65},
	}
	for _, tt := range tests {
		h := must(NewHolding("X", Q(tt.shares)))
		if got := h.CurrentValue(USD(tt.price)); !got.Equal(USD(tt.want)) {
			t.Errorf("CurrentValue(%v) with %v shares = %v, want %v", tt.price, tt.shares, got, tt.want)
		}
	}
}
