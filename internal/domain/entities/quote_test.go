package entities

import (
	"errors"
	"testing"
	"time"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		from    QuoteStatus
		event   QuoteEvent
		want    QuoteStatus
		allowed bool
	}{
		{QuoteStatusDraft, QuoteEventSubmit, QuoteStatusSent, true},
		{QuoteStatusPending, QuoteEventSubmit, QuoteStatusSent, true},
		{QuoteStatusSent, QuoteEventView, QuoteStatusViewed, true},
		{QuoteStatusSent, QuoteEventAccept, QuoteStatusAccepted, true},
		{QuoteStatusSent, QuoteEventReject, QuoteStatusRejected, true},
		{QuoteStatusSent, QuoteEventNegotiate, QuoteStatusNegotiating, true},
		{QuoteStatusSent, QuoteEventExpire, QuoteStatusExpired, true},
		{QuoteStatusViewed, QuoteEventAccept, QuoteStatusAccepted, true},
		{QuoteStatusViewed, QuoteEventNegotiate, QuoteStatusNegotiating, true},
		{QuoteStatusNegotiating, QuoteEventCounterOffer, QuoteStatusSent, true},
		{QuoteStatusNegotiating, QuoteEventAccept, QuoteStatusAccepted, true},
		{QuoteStatusNegotiating, QuoteEventExpire, QuoteStatusExpired, true},

		{QuoteStatusDraft, QuoteEventAccept, "", false},
		{QuoteStatusDraft, QuoteEventExpire, "", false},
		{QuoteStatusViewed, QuoteEventView, "", false},
		{QuoteStatusViewed, QuoteEventSubmit, "", false},
		{QuoteStatusAccepted, QuoteEventReject, "", false},
		{QuoteStatusRejected, QuoteEventSubmit, "", false},
		{QuoteStatusExpired, QuoteEventAccept, "", false},
	}

	for _, c := range cases {
		got, ok := NextStatus(c.from, c.event)
		if ok != c.allowed {
			t.Fatalf("%s + %s: expected allowed=%v, got %v", c.from, c.event, c.allowed, ok)
		}
		if ok && got != c.want {
			t.Fatalf("%s + %s: expected %s, got %s", c.from, c.event, c.want, got)
		}
	}
}

func TestQuoteStatusIsTerminal(t *testing.T) {
	terminal := []QuoteStatus{QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	active := []QuoteStatus{QuoteStatusDraft, QuoteStatusPending, QuoteStatusSent, QuoteStatusViewed, QuoteStatusNegotiating}
	for _, s := range active {
		if s.IsTerminal() {
			t.Fatalf("expected %s not to be terminal", s)
		}
	}
}

func TestQuoteStatusExpirable(t *testing.T) {
	for _, s := range []QuoteStatus{QuoteStatusSent, QuoteStatusViewed, QuoteStatusNegotiating} {
		if !s.Expirable() {
			t.Fatalf("expected %s to be expirable", s)
		}
	}
	for _, s := range []QuoteStatus{QuoteStatusDraft, QuoteStatusPending, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired} {
		if s.Expirable() {
			t.Fatalf("expected %s not to be expirable", s)
		}
	}
}

func TestQuoteApplyBreakdown(t *testing.T) {
	t.Run("price derives from breakdown", func(t *testing.T) {
		var q Quote
		b := PricingBreakdown{Materials: 100, Labor: 50, Overhead: 20, Shipping: 10, Taxes: 5}
		if err := q.ApplyBreakdown(b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Price != 185 {
			t.Fatalf("expected derived price 185, got %v", q.Price)
		}
	})

	t.Run("invalid breakdown leaves quote untouched", func(t *testing.T) {
		q := Quote{Price: 185, Breakdown: PricingBreakdown{Materials: 185}}
		err := q.ApplyBreakdown(PricingBreakdown{Materials: -1})
		if !errors.Is(err, ErrNegativeBreakdownField) {
			t.Fatalf("expected ErrNegativeBreakdownField, got %v", err)
		}
		if q.Price != 185 || q.Breakdown.Materials != 185 {
			t.Fatalf("quote mutated on invalid breakdown: %+v", q)
		}
	})
}

func TestQuoteExpiredAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sent past validity", func(t *testing.T) {
		q := Quote{Status: QuoteStatusSent, ValidUntil: now.Add(-time.Hour)}
		if !q.ExpiredAt(now) {
			t.Fatalf("expected expired")
		}
	})

	t.Run("sent within validity", func(t *testing.T) {
		q := Quote{Status: QuoteStatusSent, ValidUntil: now.Add(time.Hour)}
		if q.ExpiredAt(now) {
			t.Fatalf("expected not expired")
		}
	})

	t.Run("accepted never expires", func(t *testing.T) {
		q := Quote{Status: QuoteStatusAccepted, ValidUntil: now.Add(-time.Hour)}
		if q.ExpiredAt(now) {
			t.Fatalf("accepted quotes must not expire")
		}
	})

	t.Run("draft never expires", func(t *testing.T) {
		q := Quote{Status: QuoteStatusDraft, ValidUntil: now.Add(-time.Hour)}
		if q.ExpiredAt(now) {
			t.Fatalf("draft quotes must not expire")
		}
	})
}
