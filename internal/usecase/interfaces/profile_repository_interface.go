package interfaces

import (
	"context"
	"freelance_ledger/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile.
//
// GetByID returns a zero-value Profile (empty ID) when the profile does not
// exist; repositories never translate "not found" into an error themselves.

type IProfileRepository interface {
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByID(ctx context.Context, id string) (entities.Profile, error)
}
