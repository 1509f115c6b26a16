package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"freelance_ledger/internal/domain/entities"
	mock_interfaces "freelance_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	jobs      *mock_interfaces.MockIJobRepository
	contracts *mock_interfaces.MockIContractRepository
	profiles  *mock_interfaces.MockIProfileRepository
}

func newReportUseCaseForTest(t *testing.T) (*ReportUseCase, reportMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := reportMocks{
		jobs:      mock_interfaces.NewMockIJobRepository(ctrl),
		contracts: mock_interfaces.NewMockIContractRepository(ctrl),
		profiles:  mock_interfaces.NewMockIProfileRepository(ctrl),
	}
	return NewReportUseCase(m.jobs, m.contracts, m.profiles), m, ctrl
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestReportUseCase_BestProfession(t *testing.T) {
	start, end := day("2020-08-10"), day("2020-08-20")

	t.Run("inverted range", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil)
		_, err := uc.BestProfession(context.Background(), end, start)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("no paid jobs in range", func(t *testing.T) {
		uc, m, ctrl := newReportUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().ListPaidBetween(gomock.Any(), start, end).Return(nil, nil)

		_, err := uc.BestProfession(context.Background(), start, end)
		if !errors.Is(err, ErrNoReportData) {
			t.Fatalf("expected ErrNoReportData, got %v", err)
		}
	})

	t.Run("single paid job", func(t *testing.T) {
		uc, m, ctrl := newReportUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().ListPaidBetween(gomock.Any(), start, end).Return([]entities.Job{
			{ID: "job-1", ContractID: "ct-1", Price: 20000, Paid: true},
		}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", ClientID: "c1", ContractorID: "w1"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Profile{ID: "w1", Profession: "Programmer"}, nil)

		best, err := uc.BestProfession(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if best.Profession != "Programmer" || best.TotalEarned != 20000 {
			t.Fatalf("unexpected result: %+v", best)
		}
	})

	t.Run("picks the profession with the highest sum", func(t *testing.T) {
		uc, m, ctrl := newReportUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().ListPaidBetween(gomock.Any(), start, end).Return([]entities.Job{
			{ID: "job-1", ContractID: "ct-1", Price: 10000, Paid: true},
			{ID: "job-2", ContractID: "ct-1", Price: 5000, Paid: true},
			{ID: "job-3", ContractID: "ct-2", Price: 12000, Paid: true},
		}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", ContractorID: "w1"}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-2").Return(entities.Contract{ID: "ct-2", ContractorID: "w2"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "w1").Return(entities.Profile{ID: "w1", Profession: "Programmer"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "w2").Return(entities.Profile{ID: "w2", Profession: "Musician"}, nil)

		best, err := uc.BestProfession(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Programmer: 150.00, Musician: 120.00.
		if best.Profession != "Programmer" || best.TotalEarned != 15000 {
			t.Fatalf("unexpected result: %+v", best)
		}
	})
}

func TestReportUseCase_BestClients(t *testing.T) {
	start, end := day("2020-08-10"), day("2020-08-20")

	listJobs := func(m reportMocks) {
		m.jobs.EXPECT().ListPaidBetween(gomock.Any(), start, end).Return([]entities.Job{
			{ID: "job-1", ContractID: "ct-1", Price: 10000, Paid: true},
			{ID: "job-2", ContractID: "ct-2", Price: 30000, Paid: true},
			{ID: "job-3", ContractID: "ct-3", Price: 20000, Paid: true},
		}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", ClientID: "c1"}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-2").Return(entities.Contract{ID: "ct-2", ClientID: "c2"}, nil)
		m.contracts.EXPECT().GetByID(gomock.Any(), "ct-3").Return(entities.Contract{ID: "ct-3", ClientID: "c3"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Profile{ID: "c1", FirstName: "Harry", LastName: "Potter"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "c2").Return(entities.Profile{ID: "c2", FirstName: "Ash", LastName: "Ketchum"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "c3").Return(entities.Profile{ID: "c3", FirstName: "John", LastName: "Snow"}, nil)
	}

	t.Run("orders by paid descending and truncates to limit", func(t *testing.T) {
		uc, m, ctrl := newReportUseCaseForTest(t)
		defer ctrl.Finish()
		listJobs(m)

		clients, err := uc.BestClients(context.Background(), start, end, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(clients) != 2 {
			t.Fatalf("expected 2 clients, got %d", len(clients))
		}
		if clients[0].ID != "c2" || clients[0].Paid != 30000 || clients[0].FullName != "Ash Ketchum" {
			t.Fatalf("unexpected top client: %+v", clients[0])
		}
		if clients[1].ID != "c3" || clients[1].Paid != 20000 {
			t.Fatalf("unexpected second client: %+v", clients[1])
		}
	})

	t.Run("non-positive limit resets to default", func(t *testing.T) {
		uc, m, ctrl := newReportUseCaseForTest(t)
		defer ctrl.Finish()
		listJobs(m)

		clients, err := uc.BestClients(context.Background(), start, end, -3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(clients) != 2 {
			t.Fatalf("expected default limit of 2, got %d", len(clients))
		}
	})

	t.Run("no data", func(t *testing.T) {
		uc, m, ctrl := newReportUseCaseForTest(t)
		defer ctrl.Finish()
		m.jobs.EXPECT().ListPaidBetween(gomock.Any(), start, end).Return([]entities.Job{}, nil)

		_, err := uc.BestClients(context.Background(), start, end, 2)
		if !errors.Is(err, ErrNoReportData) {
			t.Fatalf("expected ErrNoReportData, got %v", err)
		}
	})
}
