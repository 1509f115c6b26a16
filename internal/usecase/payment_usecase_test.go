package usecase

import (
	"context"
	"errors"
	"testing"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"
	mock_interfaces "freelance_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	jobs      *mock_interfaces.MockIJobRepository
	contracts *mock_interfaces.MockIContractRepository
	profiles  *mock_interfaces.MockIProfileRepository
	ledger    *mock_interfaces.MockILedgerTransaction
}

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, paymentMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		jobs:      mock_interfaces.NewMockIJobRepository(ctrl),
		contracts: mock_interfaces.NewMockIContractRepository(ctrl),
		profiles:  mock_interfaces.NewMockIProfileRepository(ctrl),
		ledger:    mock_interfaces.NewMockILedgerTransaction(ctrl),
	}
	return NewPaymentUseCase(m.jobs, m.contracts, m.profiles, m.ledger), m, ctrl
}

func client(id string, balance entities.Cents) entities.Profile {
	return entities.Profile{ID: id, FirstName: "Harry", LastName: "Potter", Type: entities.ProfileTypeClient, Balance: balance}
}

func TestPaymentUseCase_PayJob_Preconditions(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		err := uc.PayJob(context.Background(), "   ", client("c1", 0))
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("contractor cannot pay", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		requester := entities.Profile{ID: "p2", Type: entities.ProfileTypeContractor}
		err := uc.PayJob(context.Background(), "job-1", requester)
		if !errors.Is(err, ErrOnlyClientsCanPay) {
			t.Fatalf("expected ErrOnlyClientsCanPay, got %v", err)
		}
	})

	t.Run("job does not exist", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		err := uc.PayJob(context.Background(), "job-1", client("c1", 1000))
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("contract belongs to another client", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", ContractID: "ct-1", Price: 100}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
			ID: "ct-1", ClientID: "other", ContractorID: "w1", Status: entities.ContractStatusInProgress,
		}, nil)

		err := uc.PayJob(context.Background(), "job-1", client("c1", 1000))
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("contract not in progress", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", ContractID: "ct-1", Price: 100}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
			ID: "ct-1", ClientID: "c1", ContractorID: "w1", Status: entities.ContractStatusTerminated,
		}, nil)

		err := uc.PayJob(context.Background(), "job-1", client("c1", 1000))
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("job already paid", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", ContractID: "ct-1", Price: 100, Paid: true}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
			ID: "ct-1", ClientID: "c1", ContractorID: "w1", Status: entities.ContractStatusInProgress,
		}, nil)

		err := uc.PayJob(context.Background(), "job-1", client("c1", 1000))
		if !errors.Is(err, ErrJobAlreadyPaid) {
			t.Fatalf("expected ErrJobAlreadyPaid, got %v", err)
		}
	})

	t.Run("insufficient balance", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", ContractID: "ct-1", Price: 20100}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
			ID: "ct-1", ClientID: "c1", ContractorID: "w1", Status: entities.ContractStatusInProgress,
		}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "c1").Return(client("c1", 20099), nil)

		err := uc.PayJob(context.Background(), "job-1", client("c1", 20099))
		if !errors.Is(err, ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
	})
}

func TestPaymentUseCase_PayJob_Success(t *testing.T) {
	uc, m, ctrl := newPaymentUseCaseForTest(t)
	defer ctrl.Finish()

	// Client balance 1214.00, job price 201.00.
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", ContractID: "ct-1", Price: 20100}, nil)
	m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
		ID: "ct-1", ClientID: "c1", ContractorID: "w1", Status: entities.ContractStatusInProgress,
	}, nil)
	m.profiles.EXPECT().GetByID(gomock.Any(), "c1").Return(client("c1", 121400), nil)
	m.ledger.EXPECT().ExecutePayment(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentInstruction{})).DoAndReturn(
		func(_ context.Context, ins entities.PaymentInstruction) error {
			if ins.JobID != "job-1" || ins.ClientID != "c1" || ins.ContractorID != "w1" {
				t.Fatalf("unexpected parties: %+v", ins)
			}
			if ins.Price != 20100 {
				t.Fatalf("expected price 20100 cents, got %d", ins.Price)
			}
			if ins.PaymentDate.IsZero() {
				t.Fatalf("expected payment date")
			}
			return nil
		},
	)

	if err := uc.PayJob(context.Background(), "job-1", client("c1", 121400)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentUseCase_PayJob_LedgerRaces(t *testing.T) {
	cases := []struct {
		name      string
		ledgerErr error
		want      error
	}{
		{name: "concurrent payment won", ledgerErr: interfaces.ErrJobAlreadyPaid, want: ErrJobAlreadyPaid},
		{name: "balance drained concurrently", ledgerErr: interfaces.ErrInsufficientBalance, want: ErrInsufficientBalance},
		{name: "store conflict", ledgerErr: interfaces.ErrTransactionConflict, want: ErrPaymentConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m, ctrl := newPaymentUseCaseForTest(t)
			defer ctrl.Finish()
			m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", ContractID: "ct-1", Price: 100}, nil)
			m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
				ID: "ct-1", ClientID: "c1", ContractorID: "w1", Status: entities.ContractStatusInProgress,
			}, nil)
			m.profiles.EXPECT().GetByID(gomock.Any(), "c1").Return(client("c1", 1000), nil)
			m.ledger.EXPECT().ExecutePayment(gomock.Any(), gomock.Any()).Return(tc.ledgerErr)

			err := uc.PayJob(context.Background(), "job-1", client("c1", 1000))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentUseCase_PayJob_RepoError(t *testing.T) {
	uc, m, ctrl := newPaymentUseCaseForTest(t)
	defer ctrl.Finish()
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, errors.New("db"))

	err := uc.PayJob(context.Background(), "job-1", client("c1", 1000))
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
