package entities

import (
	"testing"
	"time"
)

func sampleQuote() Quote {
	return Quote{
		ID:             "q-1",
		OrderID:        "o-1",
		ManufacturerID: "m-1",
		Status:         QuoteStatusSent,
		Currency:       "BRL",
		DeliveryDays:   14,
		ValidUntil:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Breakdown:      PricingBreakdown{Materials: 100, Labor: 50, Overhead: 20, Shipping: 10, Taxes: 5},
		Price:          185,
		Description:    "CNC milled bracket",
		PaymentTerms:   "net-30",
		Material:       "6061-T6",
		Quantity:       250,
		CurrentVersion: 3,
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	q := sampleQuote()
	s := SnapshotOf(q)

	var restored Quote
	restored.ID = "q-other"
	restored.CurrentVersion = 9
	s.ApplyTo(&restored)

	if restored.ID != "q-other" || restored.CurrentVersion != 9 {
		t.Fatalf("snapshot must not touch identity or version counter: %+v", restored)
	}
	if restored.Price != q.Price || restored.Status != q.Status || restored.Breakdown != q.Breakdown {
		t.Fatalf("snapshot did not restore quote data: %+v", restored)
	}
	if restored.Description != q.Description || restored.Quantity != q.Quantity {
		t.Fatalf("snapshot did not restore quote data: %+v", restored)
	}
}

func TestDiffSnapshots(t *testing.T) {
	t.Run("identical snapshots yield no changes", func(t *testing.T) {
		s := SnapshotOf(sampleQuote())
		if changes := DiffSnapshots(s, s); len(changes) != 0 {
			t.Fatalf("expected empty diff, got %+v", changes)
		}
	})

	t.Run("modified fields", func(t *testing.T) {
		a := SnapshotOf(sampleQuote())
		q := sampleQuote()
		q.DeliveryDays = 10
		q.Status = QuoteStatusViewed
		b := SnapshotOf(q)

		changes := DiffSnapshots(a, b)
		byField := map[string]Change{}
		for _, c := range changes {
			byField[c.Field] = c
		}
		if len(changes) != 2 {
			t.Fatalf("expected 2 changes, got %+v", changes)
		}
		if c := byField["delivery_days"]; c.ChangeType != ChangeTypeModified || c.OldValue != "14" || c.NewValue != "10" {
			t.Fatalf("unexpected delivery_days change: %+v", c)
		}
		if c := byField["status"]; c.OldValue != "sent" || c.NewValue != "viewed" {
			t.Fatalf("unexpected status change: %+v", c)
		}
	})

	t.Run("breakdown components diff under dotted paths", func(t *testing.T) {
		a := SnapshotOf(sampleQuote())
		q := sampleQuote()
		q.Breakdown.Labor = 60
		q.Price = q.Breakdown.Total()
		b := SnapshotOf(q)

		changes := DiffSnapshots(a, b)
		var laborChange, priceChange *Change
		for i := range changes {
			switch changes[i].Field {
			case "breakdown.labor":
				laborChange = &changes[i]
			case "price":
				priceChange = &changes[i]
			}
		}
		if laborChange == nil || laborChange.OldValue != "50" || laborChange.NewValue != "60" {
			t.Fatalf("expected breakdown.labor 50 -> 60, got %+v", changes)
		}
		if priceChange == nil || priceChange.OldValue != "185" || priceChange.NewValue != "195" {
			t.Fatalf("expected price 185 -> 195, got %+v", changes)
		}
	})

	t.Run("added and removed fields", func(t *testing.T) {
		a := SnapshotOf(sampleQuote())
		q := sampleQuote()
		q.Notes = "anodized finish"
		q.PaymentTerms = ""
		b := SnapshotOf(q)

		changes := DiffSnapshots(a, b)
		byField := map[string]Change{}
		for _, c := range changes {
			byField[c.Field] = c
		}
		if c := byField["notes"]; c.ChangeType != ChangeTypeAdded || c.NewValue != "anodized finish" || c.OldValue != "" {
			t.Fatalf("expected notes added, got %+v", c)
		}
		if c := byField["payment_terms"]; c.ChangeType != ChangeTypeRemoved || c.OldValue != "net-30" || c.NewValue != "" {
			t.Fatalf("expected payment_terms removed, got %+v", c)
		}
	})

	t.Run("diff from empty snapshot marks everything added", func(t *testing.T) {
		b := SnapshotOf(sampleQuote())
		for _, c := range DiffSnapshots(QuoteSnapshot{}, b) {
			if c.ChangeType != ChangeTypeAdded {
				t.Fatalf("expected only added changes, got %+v", c)
			}
		}
	})
}
