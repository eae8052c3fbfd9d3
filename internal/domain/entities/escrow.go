package entities

import (
	"encoding/json"
	"math"
	"time"
)

// EscrowState represents the payment enforcement state for an accepted quote.

type EscrowState string

const (
	EscrowStateNone      EscrowState = "none"
	EscrowStatePending   EscrowState = "pending"
	EscrowStateCompleted EscrowState = "completed"
)

// CommissionRate is the platform cut withheld from the manufacturer payout.
const CommissionRate = 0.08

// Escrow tracks the payment requirement derived from an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id (1:1 with the quote)
//   - GSI1 (escrow_id-index): escrow_id
//
// The service never moves money; the escrow itself lives at the payment
// provider. This entity records that escrow is required, the commission and
// payout split, and whether communication stays blocked until the provider
// signals payment completion. The only path to "completed" is the
// payment-completion signal; there is no operation that marks a quote paid
// any other way.

type Escrow struct {
	QuoteID              string      `json:"quote_id"`
	EscrowRequired       bool        `json:"escrow_required"`
	EscrowID             string      `json:"escrow_id"`
	Status               EscrowState `json:"escrow_status"`
	TotalAmount          float64     `json:"total_amount"`
	Commission           float64     `json:"commission"`
	ManufacturerPayout   float64     `json:"manufacturer_payout"`
	PaymentDeadline      time.Time   `json:"payment_deadline"`
	CommunicationBlocked bool        `json:"communication_blocked"`
	MilestoneCount       int         `json:"milestone_count"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`

	// ProviderPayloadRaw keeps the provider's original response (JSON) for
	// traceability/audit, schemas vary between provider integrations.
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// CommissionFor computes the platform commission, rounded to cents.
func CommissionFor(total float64) float64 {
	return math.Round(total*CommissionRate*100) / 100
}

// PayoutFor is the manufacturer payout after commission.
func PayoutFor(total float64) float64 {
	return math.Round((total-CommissionFor(total))*100) / 100
}

// UrgencyLevel buckets the time remaining until a payment deadline.

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// UrgencyFor derives the urgency bucket from hours remaining. Pure function
// of remaining time; callers recompute it on every read rather than caching.
func UrgencyFor(hoursRemaining float64) UrgencyLevel {
	switch {
	case hoursRemaining <= 6:
		return UrgencyCritical
	case hoursRemaining <= 24:
		return UrgencyHigh
	case hoursRemaining <= 72:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// HoursRemaining until the payment deadline; negative once overdue.
func (e Escrow) HoursRemaining(now time.Time) float64 {
	return e.PaymentDeadline.Sub(now).Hours()
}
