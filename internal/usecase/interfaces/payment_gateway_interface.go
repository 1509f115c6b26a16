package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The deposit flow uses it to capture the deposit amount from the client's
// card before crediting the ledger balance; the provider response payload is
// kept for traceability. CancelPayment compensates a capture whose ledger
// credit could not be applied, so no money stays captured at the provider
// without a matching balance credit.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	CancelPayment(ctx context.Context, providerPaymentID string) error
}
