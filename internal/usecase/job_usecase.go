package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoUnpaidJobs    = errors.New("no unpaid jobs found for this profile")
	ErrInvalidJobInput = errors.New("invalid job input")
)

// IJobUseCase exposes job reads scoped to the calling profile plus job
// creation under an existing contract.

type IJobUseCase interface {
	ListUnpaid(ctx context.Context, requester entities.Profile) ([]entities.Job, error)
	Create(ctx context.Context, contractID, description string, price float64) (entities.Job, error)
}

type JobUseCase struct {
	jobRepo      interfaces.IJobRepository
	contractRepo interfaces.IContractRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobRepo interfaces.IJobRepository, contractRepo interfaces.IContractRepository) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, contractRepo: contractRepo}
}

// ListUnpaid returns unpaid jobs on the requester's in_progress contracts.
// The requester may be either party to the contract.
func (u *JobUseCase) ListUnpaid(ctx context.Context, requester entities.Profile) ([]entities.Job, error) {
	contracts, err := u.contractRepo.ListByProfileID(ctx, requester.ID)
	if err != nil {
		log.Printf("[job][usecase] contract list failed profile_id=%s err=%v", requester.ID, err)
		return nil, err
	}

	var contractIDs []string
	for _, c := range contracts {
		if c.Status == entities.ContractStatusInProgress {
			contractIDs = append(contractIDs, c.ID)
		}
	}
	if len(contractIDs) == 0 {
		return nil, ErrNoUnpaidJobs
	}

	jobs, err := u.jobRepo.ListUnpaidByContractIDs(ctx, contractIDs)
	if err != nil {
		log.Printf("[job][usecase] unpaid list failed profile_id=%s err=%v", requester.ID, err)
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, ErrNoUnpaidJobs
	}
	return jobs, nil
}

func (u *JobUseCase) Create(ctx context.Context, contractID, description string, price float64) (entities.Job, error) {
	contractID = strings.TrimSpace(contractID)
	description = strings.TrimSpace(description)
	if contractID == "" || description == "" {
		return entities.Job{}, ErrInvalidJobInput
	}
	cents, err := entities.ParseAmount(price)
	if err != nil {
		return entities.Job{}, ErrInvalidJobInput
	}

	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return entities.Job{}, err
	}
	if contract.ID == "" {
		return entities.Job{}, ErrContractNotFound
	}

	j := entities.Job{
		ID:          uuid.NewString(),
		Description: description,
		Price:       cents,
		ContractID:  contractID,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.jobRepo.Create(ctx, j)
	if err != nil {
		log.Printf("[job][usecase] create failed contract_id=%s err=%v", contractID, err)
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] create success job_id=%s contract_id=%s price=%s", created.ID, contractID, cents)
	return created, nil
}
