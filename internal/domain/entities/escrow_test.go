package entities

import (
	"math"
	"testing"
	"time"
)

func TestCommissionAndPayout(t *testing.T) {
	t.Run("eight percent commission", func(t *testing.T) {
		if got := CommissionFor(1000); got != 80 {
			t.Fatalf("expected commission 80, got %v", got)
		}
		if got := PayoutFor(1000); got != 920 {
			t.Fatalf("expected payout 920, got %v", got)
		}
	})

	t.Run("commission rounds to cents", func(t *testing.T) {
		if got := CommissionFor(185.55); got != 14.84 {
			t.Fatalf("expected commission 14.84, got %v", got)
		}
		if got := PayoutFor(185.55); got != 170.71 {
			t.Fatalf("expected payout 170.71, got %v", got)
		}
	})

	t.Run("commission plus payout equals total", func(t *testing.T) {
		for _, total := range []float64{1000, 185.55, 0.01, 99999.99} {
			if got := CommissionFor(total) + PayoutFor(total); math.Abs(got-total) > 1e-9 {
				t.Fatalf("commission+payout != total for %v: got %v", total, got)
			}
		}
	})
}

func TestUrgencyFor(t *testing.T) {
	cases := []struct {
		hours float64
		want  UrgencyLevel
	}{
		{5, UrgencyCritical},
		{6, UrgencyCritical},
		{-1, UrgencyCritical},
		{20, UrgencyHigh},
		{24, UrgencyHigh},
		{48, UrgencyMedium},
		{72, UrgencyMedium},
		{100, UrgencyLow},
	}
	for _, c := range cases {
		if got := UrgencyFor(c.hours); got != c.want {
			t.Fatalf("UrgencyFor(%v): expected %s, got %s", c.hours, c.want, got)
		}
	}
}

func TestHoursRemaining(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := Escrow{PaymentDeadline: now.Add(36 * time.Hour)}
	if got := e.HoursRemaining(now); got != 36 {
		t.Fatalf("expected 36 hours remaining, got %v", got)
	}
	overdue := Escrow{PaymentDeadline: now.Add(-2 * time.Hour)}
	if got := overdue.HoursRemaining(now); got != -2 {
		t.Fatalf("expected -2 hours remaining, got %v", got)
	}
}
