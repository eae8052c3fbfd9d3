package entities

import (
	"errors"
	"math"
	"testing"
)

func TestPricingBreakdownValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b := PricingBreakdown{Materials: 100, Labor: 50, Overhead: 20, Shipping: 10, Taxes: 5}
		if err := b.Validate(); err != nil {
			t.Fatalf("expected valid breakdown, got %v", err)
		}
	})

	t.Run("zero fields are valid", func(t *testing.T) {
		if err := (PricingBreakdown{}).Validate(); err != nil {
			t.Fatalf("expected zero breakdown to be valid, got %v", err)
		}
	})

	t.Run("negative field", func(t *testing.T) {
		b := PricingBreakdown{Materials: 100, Labor: -1}
		err := b.Validate()
		if !errors.Is(err, ErrNegativeBreakdownField) {
			t.Fatalf("expected ErrNegativeBreakdownField, got %v", err)
		}
	})

	t.Run("nan field", func(t *testing.T) {
		b := PricingBreakdown{Taxes: math.NaN()}
		if !errors.Is(b.Validate(), ErrNegativeBreakdownField) {
			t.Fatalf("expected ErrNegativeBreakdownField for NaN")
		}
	})

	t.Run("inf field", func(t *testing.T) {
		b := PricingBreakdown{Shipping: math.Inf(1)}
		if !errors.Is(b.Validate(), ErrNegativeBreakdownField) {
			t.Fatalf("expected ErrNegativeBreakdownField for Inf")
		}
	})
}

func TestPricingBreakdownTotal(t *testing.T) {
	b := PricingBreakdown{Materials: 100, Labor: 50, Overhead: 20, Shipping: 10, Taxes: 5}
	if got := b.Total(); got != 185 {
		t.Fatalf("expected total 185, got %v", got)
	}
}

func TestPricingBreakdownScaledTo(t *testing.T) {
	t.Run("sum is exact after rescale", func(t *testing.T) {
		b := PricingBreakdown{Materials: 100, Labor: 50, Overhead: 20, Shipping: 10, Taxes: 5}
		scaled := b.ScaledTo(170)
		if got := scaled.Total(); math.Abs(got-170) > 1e-9 {
			t.Fatalf("expected rescaled total 170, got %v", got)
		}
	})

	t.Run("components scale proportionally", func(t *testing.T) {
		b := PricingBreakdown{Materials: 100, Labor: 50, Overhead: 20, Shipping: 10, Taxes: 20}
		scaled := b.ScaledTo(100)
		if scaled.Labor != 25 {
			t.Fatalf("expected labor 25, got %v", scaled.Labor)
		}
		if scaled.Taxes != 10 {
			t.Fatalf("expected taxes 10, got %v", scaled.Taxes)
		}
	})

	t.Run("tiny target keeps every component non-negative", func(t *testing.T) {
		b := PricingBreakdown{Labor: 1, Overhead: 1, Shipping: 1, Taxes: 1}
		scaled := b.ScaledTo(0.06)
		if err := scaled.Validate(); err != nil {
			t.Fatalf("expected valid rescaled breakdown, got %v (%+v)", err, scaled)
		}
		if got := scaled.Total(); math.Abs(got-0.06) > 1e-9 {
			t.Fatalf("expected rescaled total 0.06, got %v", got)
		}
	})

	t.Run("zero-share component stays zero", func(t *testing.T) {
		b := PricingBreakdown{Materials: 0, Labor: 100, Taxes: 100}
		scaled := b.ScaledTo(50)
		if scaled.Materials != 0 {
			t.Fatalf("expected materials to stay 0, got %v", scaled.Materials)
		}
		if got := scaled.Total(); math.Abs(got-50) > 1e-9 {
			t.Fatalf("expected rescaled total 50, got %v", got)
		}
	})

	t.Run("zero total puts everything on materials", func(t *testing.T) {
		scaled := PricingBreakdown{}.ScaledTo(42)
		if scaled.Materials != 42 || scaled.Total() != 42 {
			t.Fatalf("expected materials 42, got %+v", scaled)
		}
	})
}

func TestPercentageOf(t *testing.T) {
	t.Run("one decimal place", func(t *testing.T) {
		if got := PercentageOf(100, 185); got != "54.1" {
			t.Fatalf("expected 54.1, got %s", got)
		}
		if got := PercentageOf(5, 185); got != "2.7" {
			t.Fatalf("expected 2.7, got %s", got)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		if got := PercentageOf(10, 0); got != "0.0" {
			t.Fatalf("expected 0.0, got %s", got)
		}
	})
}
