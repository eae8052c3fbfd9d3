package interfaces

import (
	"context"
	"errors"

	"quoteforge/internal/domain/entities"
)

// ErrVersionCommitConflict is returned by Commit when the quote's current
// version advanced past the expected one between read and write.
var ErrVersionCommitConflict = errors.New("quote version advanced since read")

// IQuoteVersionRepository abstracts DynamoDB persistence for the version
// ledger.
//
// Commit must be atomic across the new version item, the previous current
// version's is_current flag and the quote row itself: either all three
// update or none do, so at no point are two versions current (or none).

type IQuoteVersionRepository interface {
	// Commit appends version v (already carrying the next version number and
	// is_current = true), flips the previous current version off, and writes
	// the updated quote guarded by expectedVersion.
	Commit(ctx context.Context, q entities.Quote, v entities.QuoteVersion, expectedVersion int) error
	GetByNumber(ctx context.Context, quoteID string, versionNumber int) (entities.QuoteVersion, error)
	GetByID(ctx context.Context, versionID string) (entities.QuoteVersion, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteVersion, error)
}
