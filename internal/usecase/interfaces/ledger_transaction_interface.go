package interfaces

import (
	"context"
	"errors"

	"freelance_ledger/internal/domain/entities"
)

// Typed failures surfaced by the ledger transaction. The DynamoDB
// implementation decodes transaction cancellation reasons into these values;
// use cases translate them into their own sentinels.
var (
	// ErrJobAlreadyPaid: the paid=false condition on the job failed, i.e. a
	// concurrent payment won the race.
	ErrJobAlreadyPaid = errors.New("job is already paid")
	// ErrInsufficientBalance: the balance >= price condition on the client
	// profile failed at commit time.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrStaleProfileVersion: the version guard on a deposit credit failed
	// because the profile was written concurrently.
	ErrStaleProfileVersion = errors.New("profile version is stale")
	// ErrTransactionConflict: the store rejected the transaction for any other
	// concurrency reason.
	ErrTransactionConflict = errors.New("transaction conflict")
)

// ILedgerTransaction is the atomic money-movement port.
//
// Both operations are all-or-nothing: either every mutation commits or none
// does, and concurrent writers to the same rows serialize at the store.

type ILedgerTransaction interface {
	// ExecutePayment atomically debits the client by the job price, credits
	// the contractor by the same amount, and marks the job paid with the given
	// payment date. Conditions enforced at commit: job still unpaid, client
	// balance still covers the price.
	ExecutePayment(ctx context.Context, ins entities.PaymentInstruction) error

	// CreditBalance adds amount to the profile balance, guarded by the profile
	// version observed when the deposit cap was computed. Returns the new
	// balance.
	CreditBalance(ctx context.Context, profileID string, amount entities.Cents, expectedVersion int64) (entities.Cents, error)
}
