package interfaces

import (
	"context"

	"quoteforge/internal/domain/entities"
)

// IOrderService abstracts the external order lookup consumed at quote
// creation (order existence, currency, target price).

type IOrderService interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
}
