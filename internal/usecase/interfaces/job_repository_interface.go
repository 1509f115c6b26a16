package interfaces

import (
	"context"
	"time"

	"freelance_ledger/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// ListUnpaidByContractIDs fans out over the contract_id GSI; it is used both
// for the unpaid-jobs listing and for the deposit exposure computation.
// ListPaidBetween queries the paid-index for jobs whose payment date falls in
// the inclusive [start, end] window.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListUnpaidByContractIDs(ctx context.Context, contractIDs []string) ([]entities.Job, error)
	ListPaidBetween(ctx context.Context, start, end time.Time) ([]entities.Job, error)
}
