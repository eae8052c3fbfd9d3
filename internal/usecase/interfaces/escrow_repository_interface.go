package interfaces

import (
	"context"

	"quoteforge/internal/domain/entities"
)

// IEscrowRepository abstracts DynamoDB persistence for Escrow.
//
// Create is conditional on no escrow existing for the quote yet; on a lost
// race it returns a zero-value entity so the caller re-reads the winner.
// That is what keeps Enforce idempotent under concurrent accept triggers.

type IEscrowRepository interface {
	Create(ctx context.Context, e entities.Escrow) (entities.Escrow, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Escrow, error)
	GetByEscrowID(ctx context.Context, escrowID string) (entities.Escrow, error)
	// MarkCompleted transitions a pending escrow to completed and unblocks
	// communication; returns a zero-value entity when the escrow is not
	// pending anymore.
	MarkCompleted(ctx context.Context, escrowID string) (entities.Escrow, error)
}
