package response

import (
	"testing"
	"time"

	"freelance_ledger/internal/domain/entities"
)

func TestFromJob(t *testing.T) {
	now := time.Now().UTC()
	j := entities.Job{
		ID:          "job-1",
		Description: "work",
		Price:       20100,
		Paid:        true,
		PaymentDate: &now,
		ContractID:  "ct-1",
		CreatedAt:   now,
	}

	res := FromJob(j)
	if res.ID != "job-1" || res.ContractID != "ct-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Price != 201.00 {
		t.Fatalf("expected decimal price 201.00, got %v", res.Price)
	}
	if !res.Paid || res.PaymentDate == nil || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected payment fields: %+v", res)
	}
}

func TestFromJobs_UnpaidHasNoPaymentDate(t *testing.T) {
	jobs := FromJobs([]entities.Job{{ID: "job-1", Price: 5001}})
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].PaymentDate != nil {
		t.Fatalf("unpaid job must not expose a payment date")
	}
	if jobs[0].Price != 50.01 {
		t.Fatalf("expected 50.01, got %v", jobs[0].Price)
	}
}
