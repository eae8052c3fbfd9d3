package interfaces

import (
	"context"
	"time"

	"quoteforge/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Repositories return a zero-value entity (ID == "") for "not found";
// usecases translate that into their sentinel errors. All status/price
// mutations go through IQuoteVersionRepository.Commit so the version ledger
// and the quote row advance together.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Quote, error)
	// ListExpirable returns quotes in an expirable status whose validUntil
	// has elapsed, for the external sweep.
	ListExpirable(ctx context.Context, now time.Time) ([]entities.Quote, error)
}
