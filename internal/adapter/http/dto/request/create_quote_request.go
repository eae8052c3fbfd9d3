package request

import (
	"strings"
	"time"

	"quoteforge/internal/domain/entities"
)

type BreakdownRequest struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Overhead  float64 `json:"overhead"`
	Shipping  float64 `json:"shipping"`
	Taxes     float64 `json:"taxes"`
}

func (r BreakdownRequest) ToEntity() entities.PricingBreakdown {
	return entities.PricingBreakdown{
		Materials: r.Materials,
		Labor:     r.Labor,
		Overhead:  r.Overhead,
		Shipping:  r.Shipping,
		Taxes:     r.Taxes,
	}
}

// CreateQuoteRequest opens a quote against an order. Price is never part of
// the payload: it is derived from the breakdown. TemplateID optionally fills
// defaults for any field left zero.

type CreateQuoteRequest struct {
	OrderID        string           `json:"order_id" binding:"required"`
	ManufacturerID string           `json:"manufacturer_id" binding:"required"`
	TemplateID     string           `json:"template_id"`
	Status         string           `json:"status"`
	Currency       string           `json:"currency"`
	DeliveryDays   int              `json:"delivery_days"`
	ValidUntil     time.Time        `json:"valid_until"`
	Breakdown      BreakdownRequest `json:"breakdown"`
	Description    string           `json:"description"`
	PaymentTerms   string           `json:"payment_terms"`
	Warranty       string           `json:"warranty"`
	Material       string           `json:"material"`
	Process        string           `json:"process"`
	Finish         string           `json:"finish"`
	Tolerance      string           `json:"tolerance"`
	Quantity       int              `json:"quantity"`
	Notes          string           `json:"notes"`
}

func (r CreateQuoteRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
