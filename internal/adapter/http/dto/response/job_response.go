package response

import (
	"time"

	"freelance_ledger/internal/domain/entities"
)

type JobResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	ContractID  string     `json:"contractId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Description: j.Description,
		Price:       j.Price.Float(),
		Paid:        j.Paid,
		PaymentDate: j.PaymentDate,
		ContractID:  j.ContractID,
		CreatedAt:   j.CreatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
