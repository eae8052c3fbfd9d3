package entities

import "time"

// QuoteStatus represents the lifecycle of a manufacturing quote.
//
// Domain notes:
//   - The quote-service is the source of truth for quote/escrow state.
//   - Transitions are driven exclusively through the event table below;
//     call sites never branch on status strings themselves.

type QuoteStatus string

const (
	QuoteStatusDraft       QuoteStatus = "draft"
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusSent        QuoteStatus = "sent"
	QuoteStatusViewed      QuoteStatus = "viewed"
	QuoteStatusNegotiating QuoteStatus = "negotiating"
	QuoteStatusAccepted    QuoteStatus = "accepted"
	QuoteStatusRejected    QuoteStatus = "rejected"
	QuoteStatusExpired     QuoteStatus = "expired"
)

// QuoteEvent is a lifecycle event applied to a quote.

type QuoteEvent string

const (
	QuoteEventSubmit       QuoteEvent = "submit"
	QuoteEventView         QuoteEvent = "view"
	QuoteEventAccept       QuoteEvent = "accept"
	QuoteEventReject       QuoteEvent = "reject"
	QuoteEventNegotiate    QuoteEvent = "negotiate"
	QuoteEventCounterOffer QuoteEvent = "counter_offer"
	QuoteEventExpire       QuoteEvent = "expire"
)

// quoteTransitions is the single authoritative state machine table.
//
//	draft/pending --submit--> sent
//	sent --view--> viewed
//	sent/viewed --accept/reject/negotiate--> accepted/rejected/negotiating
//	negotiating --counter_offer--> sent
//	negotiating --accept/reject--> accepted/rejected
//	sent/viewed/negotiating --expire--> expired
//
// accepted, rejected and expired are terminal for this machine; accepted
// hands mutation rights over to escrow enforcement.
var quoteTransitions = map[QuoteStatus]map[QuoteEvent]QuoteStatus{
	QuoteStatusDraft: {
		QuoteEventSubmit: QuoteStatusSent,
	},
	QuoteStatusPending: {
		QuoteEventSubmit: QuoteStatusSent,
	},
	QuoteStatusSent: {
		QuoteEventView:      QuoteStatusViewed,
		QuoteEventAccept:    QuoteStatusAccepted,
		QuoteEventReject:    QuoteStatusRejected,
		QuoteEventNegotiate: QuoteStatusNegotiating,
		QuoteEventExpire:    QuoteStatusExpired,
	},
	QuoteStatusViewed: {
		QuoteEventAccept:    QuoteStatusAccepted,
		QuoteEventReject:    QuoteStatusRejected,
		QuoteEventNegotiate: QuoteStatusNegotiating,
		QuoteEventExpire:    QuoteStatusExpired,
	},
	QuoteStatusNegotiating: {
		QuoteEventCounterOffer: QuoteStatusSent,
		QuoteEventAccept:       QuoteStatusAccepted,
		QuoteEventReject:       QuoteStatusRejected,
		QuoteEventExpire:       QuoteStatusExpired,
	},
}

// NextStatus resolves the target status for an event, or false when the
// event is not legal from the given status.
func NextStatus(from QuoteStatus, ev QuoteEvent) (QuoteStatus, bool) {
	to, ok := quoteTransitions[from][ev]
	return to, ok
}

// IsTerminal reports whether no further lifecycle events apply.
func (s QuoteStatus) IsTerminal() bool {
	return len(quoteTransitions[s]) == 0
}

// Expirable reports whether the status participates in validUntil expiry.
func (s QuoteStatus) Expirable() bool {
	_, ok := quoteTransitions[s][QuoteEventExpire]
	return ok
}

// ChangedBy identifies the caller a mutation is attributed to. Identity is
// established by an upstream auth layer; this service records it verbatim.

type ChangedBy struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Quote is a manufacturer's priced proposal against an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Monetary representation:
//   - Price is derived: always the sum of the breakdown components.
//
// CurrentVersion is the optimistic-concurrency token: every committed
// mutation advances it by exactly one, and writers must present the value
// they read.

type Quote struct {
	ID             string           `json:"id"`
	OrderID        string           `json:"order_id"`
	ManufacturerID string           `json:"manufacturer_id"`
	Status         QuoteStatus      `json:"status"`
	Price          float64          `json:"price"`
	Currency       string           `json:"currency"`
	DeliveryDays   int              `json:"delivery_days"`
	ValidUntil     time.Time        `json:"valid_until"`
	Breakdown      PricingBreakdown `json:"breakdown"`
	Description    string           `json:"description"`
	PaymentTerms   string           `json:"payment_terms"`
	Warranty       string           `json:"warranty"`
	Material       string           `json:"material"`
	Process        string           `json:"process"`
	Finish         string           `json:"finish"`
	Tolerance      string           `json:"tolerance"`
	Quantity       int              `json:"quantity"`
	Notes          string           `json:"notes"`
	CurrentVersion int              `json:"current_version"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ApplyBreakdown validates the breakdown and recomputes the derived price.
// This is the only writer of Price.
func (q *Quote) ApplyBreakdown(b PricingBreakdown) error {
	if err := b.Validate(); err != nil {
		return err
	}
	q.Breakdown = b
	q.Price = b.Total()
	return nil
}

// ExpiredAt reports whether the quote's validity window has elapsed for a
// status that participates in expiry.
func (q Quote) ExpiredAt(now time.Time) bool {
	return q.Status.Expirable() && now.After(q.ValidUntil)
}
