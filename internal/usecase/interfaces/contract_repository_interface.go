package interfaces

import (
	"context"
	"freelance_ledger/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// ListByProfileID returns every contract where the profile is either the
// client or the contractor (both GSIs); status filtering is a use-case
// concern.

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	ListByProfileID(ctx context.Context, profileID string) ([]entities.Contract, error)
}
