package response

import (
	"time"

	"quoteforge/internal/domain/entities"
)

type ChangeResponse struct {
	Field      string `json:"field"`
	OldValue   string `json:"old_value,omitempty"`
	NewValue   string `json:"new_value,omitempty"`
	ChangeType string `json:"change_type"`
}

func FromChanges(changes []entities.Change) []ChangeResponse {
	out := make([]ChangeResponse, 0, len(changes))
	for _, c := range changes {
		out = append(out, ChangeResponse{
			Field:      c.Field,
			OldValue:   c.OldValue,
			NewValue:   c.NewValue,
			ChangeType: string(c.ChangeType),
		})
	}
	return out
}

type QuoteSnapshotResponse struct {
	Status       string            `json:"status"`
	Price        float64           `json:"price"`
	Currency     string            `json:"currency,omitempty"`
	DeliveryDays int               `json:"delivery_days"`
	ValidUntil   time.Time         `json:"valid_until"`
	Breakdown    BreakdownResponse `json:"breakdown"`
	Description  string            `json:"description,omitempty"`
	PaymentTerms string            `json:"payment_terms,omitempty"`
	Warranty     string            `json:"warranty,omitempty"`
	Material     string            `json:"material,omitempty"`
	Process      string            `json:"process,omitempty"`
	Finish       string            `json:"finish,omitempty"`
	Tolerance    string            `json:"tolerance,omitempty"`
	Quantity     int               `json:"quantity,omitempty"`
	Notes        string            `json:"notes,omitempty"`
}

type QuoteVersionResponse struct {
	ID            string                `json:"id"`
	QuoteID       string                `json:"quote_id"`
	VersionNumber int                   `json:"version_number"`
	CreatedAt     time.Time             `json:"created_at"`
	CreatedBy     ChangedByResponse     `json:"created_by"`
	Snapshot      QuoteSnapshotResponse `json:"snapshot"`
	Changes       []ChangeResponse      `json:"changes"`
	IsCurrent     bool                  `json:"is_current"`
	ChangeSummary string                `json:"change_summary,omitempty"`
}

type ChangedByResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

func FromQuoteVersion(v entities.QuoteVersion) QuoteVersionResponse {
	return QuoteVersionResponse{
		ID:            v.ID,
		QuoteID:       v.QuoteID,
		VersionNumber: v.VersionNumber,
		CreatedAt:     v.CreatedAt,
		CreatedBy:     ChangedByResponse(v.CreatedBy),
		Snapshot: QuoteSnapshotResponse{
			Status:       string(v.Snapshot.Status),
			Price:        v.Snapshot.Price,
			Currency:     v.Snapshot.Currency,
			DeliveryDays: v.Snapshot.DeliveryDays,
			ValidUntil:   v.Snapshot.ValidUntil,
			Breakdown:    FromBreakdown(v.Snapshot.Breakdown),
			Description:  v.Snapshot.Description,
			PaymentTerms: v.Snapshot.PaymentTerms,
			Warranty:     v.Snapshot.Warranty,
			Material:     v.Snapshot.Material,
			Process:      v.Snapshot.Process,
			Finish:       v.Snapshot.Finish,
			Tolerance:    v.Snapshot.Tolerance,
			Quantity:     v.Snapshot.Quantity,
			Notes:        v.Snapshot.Notes,
		},
		Changes:       FromChanges(v.Changes),
		IsCurrent:     v.IsCurrent,
		ChangeSummary: v.ChangeSummary,
	}
}

func FromQuoteVersions(versions []entities.QuoteVersion) []QuoteVersionResponse {
	out := make([]QuoteVersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, FromQuoteVersion(v))
	}
	return out
}
