package usecase

import (
	"context"
	"errors"
	"testing"

	"freelance_ledger/internal/domain/entities"
	mock_interfaces "freelance_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContractUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ", client("c1", 0))
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("visible to client party", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", ClientID: "c1", ContractorID: "w1"}, nil)

		contract, err := uc.GetByID(context.Background(), "ct-1", client("c1", 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contract.ID != "ct-1" {
			t.Fatalf("unexpected contract: %+v", contract)
		}
	})

	t.Run("hidden from a non-party", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", ClientID: "c1", ContractorID: "w1"}, nil)

		_, err := uc.GetByID(context.Background(), "ct-1", client("c2", 0))
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("missing contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ct-404").Return(entities.Contract{}, nil)

		_, err := uc.GetByID(context.Background(), "ct-404", client("c1", 0))
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

func TestContractUseCase_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	uc := NewContractUseCase(repo, nil)
	repo.EXPECT().ListByProfileID(gomock.Any(), "c1").Return([]entities.Contract{
		{ID: "ct-1", ClientID: "c1", Status: entities.ContractStatusNew},
		{ID: "ct-2", ClientID: "c1", Status: entities.ContractStatusInProgress},
		{ID: "ct-3", ClientID: "c1", Status: entities.ContractStatusTerminated},
	}, nil)

	contracts, err := uc.ListActive(context.Background(), client("c1", 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contracts) != 2 {
		t.Fatalf("expected terminated contracts filtered out, got %d", len(contracts))
	}
	for _, c := range contracts {
		if c.Status == entities.ContractStatusTerminated {
			t.Fatalf("terminated contract leaked: %+v", c)
		}
	}
}

func TestContractUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "", "c1", "w1", entities.ContractStatusNew)
		if !errors.Is(err, ErrInvalidContractInput) {
			t.Fatalf("expected ErrInvalidContractInput, got %v", err)
		}
	})

	t.Run("client and contractor must differ", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "terms", "c1", "c1", entities.ContractStatusNew)
		if !errors.Is(err, ErrInvalidContractInput) {
			t.Fatalf("expected ErrInvalidContractInput, got %v", err)
		}
	})

	t.Run("roles must match the contract sides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewContractUseCase(contracts, profiles)
		profiles.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Profile{ID: "w1", Type: entities.ProfileTypeContractor}, nil)

		_, err := uc.Create(context.Background(), "terms", "w1", "c1", entities.ContractStatusNew)
		if !errors.Is(err, ErrInvalidContractInput) {
			t.Fatalf("expected ErrInvalidContractInput, got %v", err)
		}
	})

	t.Run("success defaults status to new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewContractUseCase(contracts, profiles)
		profiles.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Profile{ID: "c1", Type: entities.ProfileTypeClient}, nil)
		profiles.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Profile{ID: "w1", Type: entities.ProfileTypeContractor}, nil)
		contracts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.ID == "" || c.Status != entities.ContractStatusNew || c.ClientID != "c1" || c.ContractorID != "w1" {
					t.Fatalf("unexpected contract: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Create(context.Background(), "terms", "c1", "w1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
