package entities

import "time"

// NegotiationStatus tracks the resolution of a counter-proposal.

type NegotiationStatus string

const (
	NegotiationStatusPending  NegotiationStatus = "pending"
	NegotiationStatusAccepted NegotiationStatus = "accepted"
	NegotiationStatusRejected NegotiationStatus = "rejected"
)

// Negotiation is a client counter-proposal against a quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// A negotiation may only be opened while the quote is sent, viewed or already
// negotiating. Resolving it moves the parent quote: acceptance applies the
// requested terms as a new quote version (counter-offer back to "sent"),
// rejection returns the quote to "sent" at its original terms.

type Negotiation struct {
	ID                    string            `json:"id"`
	QuoteID               string            `json:"quote_id"`
	RequestedBy           ChangedBy         `json:"requested_by"`
	Message               string            `json:"message"`
	RequestedPrice        *float64          `json:"requested_price,omitempty"`
	RequestedDeliveryDays *int              `json:"requested_delivery_days,omitempty"`
	Status                NegotiationStatus `json:"status"`
	CreatedAt             time.Time         `json:"created_at"`
	ResolvedAt            *time.Time        `json:"resolved_at,omitempty"`
}
