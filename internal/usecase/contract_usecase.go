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
	ErrInvalidContractID    = errors.New("invalid contract id")
	ErrContractNotFound     = errors.New("contract not found")
	ErrInvalidContractInput = errors.New("invalid contract input")
)

// IContractUseCase exposes contract reads scoped to the calling profile plus
// contract creation.
//
// Visibility rule: a contract is only visible to its client or contractor;
// anything else reads as "not found".

type IContractUseCase interface {
	GetByID(ctx context.Context, id string, requester entities.Profile) (entities.Contract, error)
	ListActive(ctx context.Context, requester entities.Profile) ([]entities.Contract, error)
	Create(ctx context.Context, terms, clientID, contractorID string, status entities.ContractStatus) (entities.Contract, error)
}

type ContractUseCase struct {
	contractRepo interfaces.IContractRepository
	profileRepo  interfaces.IProfileRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(contractRepo interfaces.IContractRepository, profileRepo interfaces.IProfileRepository) *ContractUseCase {
	return &ContractUseCase{contractRepo: contractRepo, profileRepo: profileRepo}
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string, requester entities.Profile) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	contract, err := u.contractRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[contract][usecase] lookup failed contract_id=%s err=%v", id, err)
		return entities.Contract{}, err
	}
	if contract.ID == "" || !contract.InvolvesProfile(requester.ID) {
		return entities.Contract{}, ErrContractNotFound
	}
	return contract, nil
}

// ListActive returns the requester's non-terminated contracts.
func (u *ContractUseCase) ListActive(ctx context.Context, requester entities.Profile) ([]entities.Contract, error) {
	contracts, err := u.contractRepo.ListByProfileID(ctx, requester.ID)
	if err != nil {
		log.Printf("[contract][usecase] list failed profile_id=%s err=%v", requester.ID, err)
		return nil, err
	}

	active := make([]entities.Contract, 0, len(contracts))
	for _, c := range contracts {
		if c.Status != entities.ContractStatusTerminated {
			active = append(active, c)
		}
	}
	return active, nil
}

func (u *ContractUseCase) Create(ctx context.Context, terms, clientID, contractorID string, status entities.ContractStatus) (entities.Contract, error) {
	terms = strings.TrimSpace(terms)
	clientID = strings.TrimSpace(clientID)
	contractorID = strings.TrimSpace(contractorID)
	if terms == "" || clientID == "" || contractorID == "" || clientID == contractorID {
		return entities.Contract{}, ErrInvalidContractInput
	}
	switch status {
	case entities.ContractStatusNew, entities.ContractStatusInProgress, entities.ContractStatusTerminated:
	case "":
		status = entities.ContractStatusNew
	default:
		return entities.Contract{}, ErrInvalidContractInput
	}

	client, err := u.profileRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Contract{}, err
	}
	if client.ID == "" || client.Type != entities.ProfileTypeClient {
		return entities.Contract{}, ErrInvalidContractInput
	}
	contractor, err := u.profileRepo.GetByID(ctx, contractorID)
	if err != nil {
		return entities.Contract{}, err
	}
	if contractor.ID == "" || contractor.Type != entities.ProfileTypeContractor {
		return entities.Contract{}, ErrInvalidContractInput
	}

	c := entities.Contract{
		ID:           uuid.NewString(),
		Terms:        terms,
		Status:       status,
		ClientID:     clientID,
		ContractorID: contractorID,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.contractRepo.Create(ctx, c)
	if err != nil {
		log.Printf("[contract][usecase] create failed client_id=%s contractor_id=%s err=%v", clientID, contractorID, err)
		return entities.Contract{}, err
	}
	log.Printf("[contract][usecase] create success contract_id=%s client_id=%s contractor_id=%s", created.ID, clientID, contractorID)
	return created, nil
}
