package response

import "freelance_ledger/internal/usecase"

// snake_case total_earned next to camelCase fullName is intentional: clients
// of the admin API already consume these exact field names.

type BestProfessionResponse struct {
	Profession  string  `json:"profession"`
	TotalEarned float64 `json:"total_earned"`
}

type BestClientResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Paid     float64 `json:"paid"`
}

func FromProfessionEarnings(p usecase.ProfessionEarnings) BestProfessionResponse {
	return BestProfessionResponse{
		Profession:  p.Profession,
		TotalEarned: p.TotalEarned.Float(),
	}
}

func FromClientSpends(clients []usecase.ClientSpend) []BestClientResponse {
	out := make([]BestClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, BestClientResponse{
			ID:       c.ID,
			FullName: c.FullName,
			Paid:     c.Paid.Float(),
		})
	}
	return out
}
