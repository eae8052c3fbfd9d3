package interfaces

import (
	"context"

	"quoteforge/internal/domain/entities"
)

// IQuoteTemplateRepository reads the reusable default-value bundles consumed
// by quote creation. Template management is out of scope; this port is
// read-only on purpose.

type IQuoteTemplateRepository interface {
	GetByID(ctx context.Context, id string) (entities.QuoteTemplate, error)
}
