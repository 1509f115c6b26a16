package response

import (
	"time"

	"freelance_ledger/internal/domain/entities"
)

type ProfileResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Profession string    `json:"profession"`
	Balance    float64   `json:"balance"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Profession: p.Profession,
		Balance:    p.Balance.Float(),
		Type:       string(p.Type),
		CreatedAt:  p.CreatedAt,
	}
}
