package entities

import (
	"strconv"
	"time"
)

// ChangeType classifies a single field change between two versions.

type ChangeType string

const (
	ChangeTypeAdded    ChangeType = "added"
	ChangeTypeModified ChangeType = "modified"
	ChangeTypeRemoved  ChangeType = "removed"
)

// Change is one entry of a version diff. Values are rendered as strings so
// the diff is stable regardless of the underlying field type.

type Change struct {
	Field      string     `json:"field"`
	OldValue   string     `json:"old_value"`
	NewValue   string     `json:"new_value"`
	ChangeType ChangeType `json:"change_type"`
}

// QuoteSnapshot is the immutable copy of quote data captured by a version.
// It deliberately excludes identifiers and the version counter: reverting a
// snapshot must never rewind identity or history.

type QuoteSnapshot struct {
	Status       QuoteStatus      `json:"status"`
	Price        float64          `json:"price"`
	Currency     string           `json:"currency"`
	DeliveryDays int              `json:"delivery_days"`
	ValidUntil   time.Time        `json:"valid_until"`
	Breakdown    PricingBreakdown `json:"breakdown"`
	Description  string           `json:"description"`
	PaymentTerms string           `json:"payment_terms"`
	Warranty     string           `json:"warranty"`
	Material     string           `json:"material"`
	Process      string           `json:"process"`
	Finish       string           `json:"finish"`
	Tolerance    string           `json:"tolerance"`
	Quantity     int              `json:"quantity"`
	Notes        string           `json:"notes"`
}

// QuoteVersion is one immutable entry of a quote's version ledger.
//
// Storage model (DynamoDB):
//   - PK: quote_id, SK: version_number
//   - GSI1 (id-index): id
//
// Versions are only ever appended: a revert writes a new version whose
// snapshot equals a historical one; nothing is renumbered or deleted.
// Exactly one version per quote carries IsCurrent = true.

type QuoteVersion struct {
	ID            string        `json:"id"`
	QuoteID       string        `json:"quote_id"`
	VersionNumber int           `json:"version_number"`
	CreatedAt     time.Time     `json:"created_at"`
	CreatedBy     ChangedBy     `json:"created_by"`
	Snapshot      QuoteSnapshot `json:"snapshot"`
	Changes       []Change      `json:"changes"`
	IsCurrent     bool          `json:"is_current"`
	ChangeSummary string        `json:"change_summary"`
}

// SnapshotOf captures the versionable fields of a quote.
func SnapshotOf(q Quote) QuoteSnapshot {
	return QuoteSnapshot{
		Status:       q.Status,
		Price:        q.Price,
		Currency:     q.Currency,
		DeliveryDays: q.DeliveryDays,
		ValidUntil:   q.ValidUntil,
		Breakdown:    q.Breakdown,
		Description:  q.Description,
		PaymentTerms: q.PaymentTerms,
		Warranty:     q.Warranty,
		Material:     q.Material,
		Process:      q.Process,
		Finish:       q.Finish,
		Tolerance:    q.Tolerance,
		Quantity:     q.Quantity,
		Notes:        q.Notes,
	}
}

// ApplyTo writes the snapshot's data back onto a quote, used by revert.
func (s QuoteSnapshot) ApplyTo(q *Quote) {
	q.Status = s.Status
	q.Price = s.Price
	q.Currency = s.Currency
	q.DeliveryDays = s.DeliveryDays
	q.ValidUntil = s.ValidUntil
	q.Breakdown = s.Breakdown
	q.Description = s.Description
	q.PaymentTerms = s.PaymentTerms
	q.Warranty = s.Warranty
	q.Material = s.Material
	q.Process = s.Process
	q.Finish = s.Finish
	q.Tolerance = s.Tolerance
	q.Quantity = s.Quantity
	q.Notes = s.Notes
}

// snapshotField is one comparable entry of the fixed diff schema. The schema
// is enumerated explicitly so a new quote field cannot silently fall out of
// the diff; presence is "non-zero" for the field's type.
type snapshotField struct {
	path  string
	value func(QuoteSnapshot) (string, bool)
}

func stringField(path string, get func(QuoteSnapshot) string) snapshotField {
	return snapshotField{path: path, value: func(s QuoteSnapshot) (string, bool) {
		v := get(s)
		return v, v != ""
	}}
}

func floatField(path string, get func(QuoteSnapshot) float64) snapshotField {
	return snapshotField{path: path, value: func(s QuoteSnapshot) (string, bool) {
		v := get(s)
		return strconv.FormatFloat(v, 'f', -1, 64), v != 0
	}}
}

func intField(path string, get func(QuoteSnapshot) int) snapshotField {
	return snapshotField{path: path, value: func(s QuoteSnapshot) (string, bool) {
		v := get(s)
		return strconv.Itoa(v), v != 0
	}}
}

var snapshotSchema = []snapshotField{
	stringField("status", func(s QuoteSnapshot) string { return string(s.Status) }),
	floatField("price", func(s QuoteSnapshot) float64 { return s.Price }),
	stringField("currency", func(s QuoteSnapshot) string { return s.Currency }),
	intField("delivery_days", func(s QuoteSnapshot) int { return s.DeliveryDays }),
	snapshotField{path: "valid_until", value: func(s QuoteSnapshot) (string, bool) {
		if s.ValidUntil.IsZero() {
			return "", false
		}
		return s.ValidUntil.UTC().Format(time.RFC3339), true
	}},
	floatField("breakdown.materials", func(s QuoteSnapshot) float64 { return s.Breakdown.Materials }),
	floatField("breakdown.labor", func(s QuoteSnapshot) float64 { return s.Breakdown.Labor }),
	floatField("breakdown.overhead", func(s QuoteSnapshot) float64 { return s.Breakdown.Overhead }),
	floatField("breakdown.shipping", func(s QuoteSnapshot) float64 { return s.Breakdown.Shipping }),
	floatField("breakdown.taxes", func(s QuoteSnapshot) float64 { return s.Breakdown.Taxes }),
	stringField("description", func(s QuoteSnapshot) string { return s.Description }),
	stringField("payment_terms", func(s QuoteSnapshot) string { return s.PaymentTerms }),
	stringField("warranty", func(s QuoteSnapshot) string { return s.Warranty }),
	stringField("material", func(s QuoteSnapshot) string { return s.Material }),
	stringField("process", func(s QuoteSnapshot) string { return s.Process }),
	stringField("finish", func(s QuoteSnapshot) string { return s.Finish }),
	stringField("tolerance", func(s QuoteSnapshot) string { return s.Tolerance }),
	intField("quantity", func(s QuoteSnapshot) int { return s.Quantity }),
	stringField("notes", func(s QuoteSnapshot) string { return s.Notes }),
}

// DiffSnapshots compares two snapshots field by field over the fixed schema,
// including dotted breakdown paths. A field present only in b is "added",
// present only in a is "removed", and "modified" when both differ.
func DiffSnapshots(a, b QuoteSnapshot) []Change {
	var changes []Change
	for _, f := range snapshotSchema {
		oldVal, oldPresent := f.value(a)
		newVal, newPresent := f.value(b)
		switch {
		case !oldPresent && !newPresent:
		case !oldPresent && newPresent:
			changes = append(changes, Change{Field: f.path, NewValue: newVal, ChangeType: ChangeTypeAdded})
		case oldPresent && !newPresent:
			changes = append(changes, Change{Field: f.path, OldValue: oldVal, ChangeType: ChangeTypeRemoved})
		case oldVal != newVal:
			changes = append(changes, Change{Field: f.path, OldValue: oldVal, NewValue: newVal, ChangeType: ChangeTypeModified})
		}
	}
	return changes
}
