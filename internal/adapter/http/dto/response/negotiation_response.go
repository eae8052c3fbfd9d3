package response

import (
	"time"

	"quoteforge/internal/domain/entities"
)

type NegotiationResponse struct {
	ID                    string            `json:"id"`
	QuoteID               string            `json:"quote_id"`
	RequestedBy           ChangedByResponse `json:"requested_by"`
	Message               string            `json:"message"`
	RequestedPrice        *float64          `json:"requested_price,omitempty"`
	RequestedDeliveryDays *int              `json:"requested_delivery_days,omitempty"`
	Status                string            `json:"status"`
	CreatedAt             time.Time         `json:"created_at"`
	ResolvedAt            *time.Time        `json:"resolved_at,omitempty"`
}

func FromNegotiation(n entities.Negotiation) NegotiationResponse {
	return NegotiationResponse{
		ID:                    n.ID,
		QuoteID:               n.QuoteID,
		RequestedBy:           ChangedByResponse(n.RequestedBy),
		Message:               n.Message,
		RequestedPrice:        n.RequestedPrice,
		RequestedDeliveryDays: n.RequestedDeliveryDays,
		Status:                string(n.Status),
		CreatedAt:             n.CreatedAt,
		ResolvedAt:            n.ResolvedAt,
	}
}

func FromNegotiations(items []entities.Negotiation) []NegotiationResponse {
	out := make([]NegotiationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNegotiation(n))
	}
	return out
}
