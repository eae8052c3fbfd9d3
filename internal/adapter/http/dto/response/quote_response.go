package response

import (
	"time"

	"quoteforge/internal/domain/entities"
)

// BreakdownResponse carries the cost components together with each one's
// share of the total, formatted to one decimal place.

type BreakdownResponse struct {
	Materials    float64 `json:"materials"`
	Labor        float64 `json:"labor"`
	Overhead     float64 `json:"overhead"`
	Shipping     float64 `json:"shipping"`
	Taxes        float64 `json:"taxes"`
	MaterialsPct string  `json:"materials_pct"`
	LaborPct     string  `json:"labor_pct"`
	OverheadPct  string  `json:"overhead_pct"`
	ShippingPct  string  `json:"shipping_pct"`
	TaxesPct     string  `json:"taxes_pct"`
}

func FromBreakdown(b entities.PricingBreakdown) BreakdownResponse {
	total := b.Total()
	return BreakdownResponse{
		Materials:    b.Materials,
		Labor:        b.Labor,
		Overhead:     b.Overhead,
		Shipping:     b.Shipping,
		Taxes:        b.Taxes,
		MaterialsPct: entities.PercentageOf(b.Materials, total),
		LaborPct:     entities.PercentageOf(b.Labor, total),
		OverheadPct:  entities.PercentageOf(b.Overhead, total),
		ShippingPct:  entities.PercentageOf(b.Shipping, total),
		TaxesPct:     entities.PercentageOf(b.Taxes, total),
	}
}

type QuoteResponse struct {
	ID             string            `json:"id"`
	OrderID        string            `json:"order_id"`
	ManufacturerID string            `json:"manufacturer_id"`
	Status         string            `json:"status"`
	Price          float64           `json:"price"`
	Currency       string            `json:"currency,omitempty"`
	DeliveryDays   int               `json:"delivery_days"`
	ValidUntil     time.Time         `json:"valid_until"`
	Breakdown      BreakdownResponse `json:"breakdown"`
	Description    string            `json:"description,omitempty"`
	PaymentTerms   string            `json:"payment_terms,omitempty"`
	Warranty       string            `json:"warranty,omitempty"`
	Material       string            `json:"material,omitempty"`
	Process        string            `json:"process,omitempty"`
	Finish         string            `json:"finish,omitempty"`
	Tolerance      string            `json:"tolerance,omitempty"`
	Quantity       int               `json:"quantity,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	CurrentVersion int               `json:"current_version"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		OrderID:        q.OrderID,
		ManufacturerID: q.ManufacturerID,
		Status:         string(q.Status),
		Price:          q.Price,
		Currency:       q.Currency,
		DeliveryDays:   q.DeliveryDays,
		ValidUntil:     q.ValidUntil,
		Breakdown:      FromBreakdown(q.Breakdown),
		Description:    q.Description,
		PaymentTerms:   q.PaymentTerms,
		Warranty:       q.Warranty,
		Material:       q.Material,
		Process:        q.Process,
		Finish:         q.Finish,
		Tolerance:      q.Tolerance,
		Quantity:       q.Quantity,
		Notes:          q.Notes,
		CurrentVersion: q.CurrentVersion,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}
