package entities

import "time"

// Job is a priced unit of work under a contract, payable exactly once.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI contract_id-index (PK: contract_id)
//   - GSI paid-index (PK: paid_flag, SK: payment_date) — paid_flag is only set
//     when the job is paid, so the index holds paid jobs ordered by payment
//     date and serves the admin report windows.
//
// Invariants: Paid flips false->true exactly once; PaymentDate is non-nil iff
// Paid is true.

type Job struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Price       Cents      `json:"price"`
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	ContractID  string     `json:"contract_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PaymentInstruction carries the resolved parties and price of a job payment
// into the ledger transaction.

type PaymentInstruction struct {
	JobID        string
	ClientID     string
	ContractorID string
	Price        Cents
	PaymentDate  time.Time
}
