package entities

import "time"

// ContractStatus is the contract lifecycle. Progression is monotonic
// (new -> in_progress -> terminated); only in_progress contracts accept
// payments and count toward deposit exposure.

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract links exactly one client and one contractor and owns jobs.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI client_id-index (PK: client_id)
//   - GSI contractor_id-index (PK: contractor_id)

type Contract struct {
	ID           string         `json:"id"`
	Terms        string         `json:"terms"`
	Status       ContractStatus `json:"status"`
	ClientID     string         `json:"client_id"`
	ContractorID string         `json:"contractor_id"`
	CreatedAt    time.Time      `json:"created_at"`
}

// InvolvesProfile reports whether the profile is a party to the contract.
func (c Contract) InvolvesProfile(profileID string) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}
