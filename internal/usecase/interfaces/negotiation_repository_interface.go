package interfaces

import (
	"context"
	"time"

	"quoteforge/internal/domain/entities"
)

// INegotiationRepository abstracts DynamoDB persistence for Negotiation.

type INegotiationRepository interface {
	Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error)
	GetByID(ctx context.Context, id string) (entities.Negotiation, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Negotiation, error)
	// UpdateStatus resolves a pending negotiation; returns a zero-value
	// entity when the negotiation does not exist or is no longer pending.
	UpdateStatus(ctx context.Context, id string, status entities.NegotiationStatus, resolvedAt time.Time) (entities.Negotiation, error)
}
