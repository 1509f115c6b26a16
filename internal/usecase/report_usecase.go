package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrNoReportData     = errors.New("no data found for the given date range")
)

const defaultBestClientsLimit = 2

// ProfessionEarnings is the best-profession report row.
type ProfessionEarnings struct {
	Profession  string
	TotalEarned entities.Cents
}

// ClientSpend is a best-clients report row.
type ClientSpend struct {
	ID       string
	FullName string
	Paid     entities.Cents
}

// IReportUseCase runs the read-only admin aggregations. Reports never lock
// anything and may run concurrently with payments; they see whatever the
// store's eventually-consistent index reads return.

type IReportUseCase interface {
	BestProfession(ctx context.Context, start, end time.Time) (ProfessionEarnings, error)
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]ClientSpend, error)
}

type ReportUseCase struct {
	jobRepo      interfaces.IJobRepository
	contractRepo interfaces.IContractRepository
	profileRepo  interfaces.IProfileRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	jobRepo interfaces.IJobRepository,
	contractRepo interfaces.IContractRepository,
	profileRepo interfaces.IProfileRepository,
) *ReportUseCase {
	return &ReportUseCase{jobRepo: jobRepo, contractRepo: contractRepo, profileRepo: profileRepo}
}

// BestProfession sums paid-job prices in the inclusive window grouped by the
// contractor's profession and returns the top group. Equal sums tie-break
// arbitrarily.
func (u *ReportUseCase) BestProfession(ctx context.Context, start, end time.Time) (ProfessionEarnings, error) {
	if err := validateRange(start, end); err != nil {
		return ProfessionEarnings{}, err
	}
	log.Printf("[report][usecase] best-profession start=%s end=%s", start.Format("2006-01-02"), end.Format("2006-01-02"))

	jobs, err := u.jobRepo.ListPaidBetween(ctx, start, end)
	if err != nil {
		return ProfessionEarnings{}, err
	}
	if len(jobs) == 0 {
		return ProfessionEarnings{}, ErrNoReportData
	}

	totals := map[string]entities.Cents{}
	contracts := map[string]entities.Contract{}
	professions := map[string]string{}
	for _, j := range jobs {
		contract, ok := contracts[j.ContractID]
		if !ok {
			contract, err = u.contractRepo.GetByID(ctx, j.ContractID)
			if err != nil {
				return ProfessionEarnings{}, err
			}
			contracts[j.ContractID] = contract
		}
		profession, ok := professions[contract.ContractorID]
		if !ok {
			contractor, err := u.profileRepo.GetByID(ctx, contract.ContractorID)
			if err != nil {
				return ProfessionEarnings{}, err
			}
			profession = contractor.Profession
			professions[contract.ContractorID] = profession
		}
		totals[profession] += j.Price
	}

	var best ProfessionEarnings
	for profession, total := range totals {
		if total > best.TotalEarned || best.Profession == "" {
			best = ProfessionEarnings{Profession: profession, TotalEarned: total}
		}
	}
	return best, nil
}

// BestClients sums paid-job prices in the inclusive window grouped by the
// paying client and returns the top `limit` clients by descending spend.
// A non-positive limit silently resets to the default of 2.
func (u *ReportUseCase) BestClients(ctx context.Context, start, end time.Time, limit int) ([]ClientSpend, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultBestClientsLimit
	}
	log.Printf("[report][usecase] best-clients start=%s end=%s limit=%d", start.Format("2006-01-02"), end.Format("2006-01-02"), limit)

	jobs, err := u.jobRepo.ListPaidBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, ErrNoReportData
	}

	totals := map[string]entities.Cents{}
	names := map[string]string{}
	contracts := map[string]entities.Contract{}
	for _, j := range jobs {
		contract, ok := contracts[j.ContractID]
		if !ok {
			contract, err = u.contractRepo.GetByID(ctx, j.ContractID)
			if err != nil {
				return nil, err
			}
			contracts[j.ContractID] = contract
		}
		if _, ok := names[contract.ClientID]; !ok {
			client, err := u.profileRepo.GetByID(ctx, contract.ClientID)
			if err != nil {
				return nil, err
			}
			names[contract.ClientID] = client.FullName()
		}
		totals[contract.ClientID] += j.Price
	}

	clients := make([]ClientSpend, 0, len(totals))
	for id, total := range totals {
		clients = append(clients, ClientSpend{ID: id, FullName: names[id], Paid: total})
	}
	sort.SliceStable(clients, func(i, k int) bool {
		return clients[i].Paid > clients[k].Paid
	})
	if len(clients) > limit {
		clients = clients[:limit]
	}
	return clients, nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}
