package response

import (
	"time"

	"quoteforge/internal/domain/entities"
)

// EscrowResponse is the read model of escrow enforcement. Urgency and hours
// remaining are derived from the deadline at response time, never persisted.

type EscrowResponse struct {
	QuoteID              string    `json:"quote_id"`
	EscrowRequired       bool      `json:"escrow_required"`
	EscrowID             string    `json:"escrow_id"`
	EscrowStatus         string    `json:"escrow_status"`
	TotalAmount          float64   `json:"total_amount"`
	Commission           float64   `json:"commission"`
	ManufacturerPayout   float64   `json:"manufacturer_payout"`
	PaymentDeadline      time.Time `json:"payment_deadline"`
	HoursRemaining       float64   `json:"hours_remaining"`
	UrgencyLevel         string    `json:"urgency_level"`
	CommunicationBlocked bool      `json:"communication_blocked"`
	MilestoneCount       int       `json:"milestone_count"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromEscrow(e entities.Escrow, now time.Time) EscrowResponse {
	hours := e.HoursRemaining(now)
	return EscrowResponse{
		QuoteID:              e.QuoteID,
		EscrowRequired:       e.EscrowRequired,
		EscrowID:             e.EscrowID,
		EscrowStatus:         string(e.Status),
		TotalAmount:          e.TotalAmount,
		Commission:           e.Commission,
		ManufacturerPayout:   e.ManufacturerPayout,
		PaymentDeadline:      e.PaymentDeadline,
		HoursRemaining:       hours,
		UrgencyLevel:         string(entities.UrgencyFor(hours)),
		CommunicationBlocked: e.CommunicationBlocked,
		MilestoneCount:       e.MilestoneCount,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
