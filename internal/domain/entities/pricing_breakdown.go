package entities

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrNegativeBreakdownField = errors.New("breakdown field must be a non-negative number")

// PricingBreakdown itemizes the cost components of a quote.
//
// Invariant: the owning quote's Price is always the sum of these five fields.
// The breakdown is the only writer of Price; callers never set Price directly.
// Missing fields default to zero.

type PricingBreakdown struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Overhead  float64 `json:"overhead"`
	Shipping  float64 `json:"shipping"`
	Taxes     float64 `json:"taxes"`
}

// Validate rejects negative or non-finite fields.
func (b PricingBreakdown) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"materials", b.Materials},
		{"labor", b.Labor},
		{"overhead", b.Overhead},
		{"shipping", b.Shipping},
		{"taxes", b.Taxes},
	}
	for _, f := range fields {
		if f.value < 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s", ErrNegativeBreakdownField, f.name)
		}
	}
	return nil
}

// Total sums the five cost components. Callers must Validate first; Total on
// an invalid breakdown is undefined.
func (b PricingBreakdown) Total() float64 {
	return b.Materials + b.Labor + b.Overhead + b.Shipping + b.Taxes
}

// ScaledTo rescales every component proportionally so the total equals
// target, keeping the price-derivation invariant intact when a negotiated
// price is applied. Components round to cents via cumulative rounding: each
// component is the difference of consecutive rounded running sums, so the
// parts sum exactly to the rounded target and no component can go negative,
// however small the target.
func (b PricingBreakdown) ScaledTo(target float64) PricingBreakdown {
	total := b.Total()
	if total <= 0 {
		return PricingBreakdown{Materials: roundCents(target)}
	}
	factor := target / total

	var running, prev float64
	part := func(v float64) float64 {
		running += v * factor
		r := roundCents(running)
		p := roundCents(r - prev)
		prev = r
		return p
	}

	var scaled PricingBreakdown
	scaled.Materials = part(b.Materials)
	scaled.Labor = part(b.Labor)
	scaled.Overhead = part(b.Overhead)
	scaled.Shipping = part(b.Shipping)
	scaled.Taxes = part(b.Taxes)
	return scaled
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// PercentageOf formats a cost component's share of the total to one decimal
// place. A non-positive total yields "0.0".
func PercentageOf(field, total float64) string {
	if total <= 0 {
		return "0.0"
	}
	return strconv.FormatFloat(field/total*100, 'f', 1, 64)
}
