package interfaces

import (
	"context"
	"encoding/json"
)

// IEscrowGateway abstracts the external payment provider holding the escrow
// (e.g. Mercado Pago).
//
// The service only asks the provider to open an escrow and records the
// returned identifier/payload; fund movement and the eventual
// payment-completed signal are entirely the provider's.

type IEscrowGateway interface {
	OpenEscrow(ctx context.Context, requestPayload json.RawMessage) (providerEscrowID string, providerStatus string, providerResponse json.RawMessage, err error)
}
