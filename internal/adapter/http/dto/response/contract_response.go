package response

import (
	"time"

	"freelance_ledger/internal/domain/entities"
)

type ContractResponse struct {
	ID           string    `json:"id"`
	Terms        string    `json:"terms"`
	Status       string    `json:"status"`
	ClientID     string    `json:"clientId"`
	ContractorID string    `json:"contractorId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:           c.ID,
		Terms:        c.Terms,
		Status:       string(c.Status),
		ClientID:     c.ClientID,
		ContractorID: c.ContractorID,
		CreatedAt:    c.CreatedAt,
	}
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}
