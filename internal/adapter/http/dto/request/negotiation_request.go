package request

import "strings"

// NegotiationRequest is a client counter-proposal against a quote.

type NegotiationRequest struct {
	Message               string   `json:"message" binding:"required"`
	RequestedPrice        *float64 `json:"requested_price"`
	RequestedDeliveryDays *int     `json:"requested_delivery_days"`
}

// ResolveNegotiationRequest settles a pending negotiation.

type ResolveNegotiationRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (r ResolveNegotiationRequest) ResolveDecision() string {
	return strings.ToLower(strings.TrimSpace(r.Decision))
}
