package entities

import "time"

// ProfileType distinguishes the two marketplace roles. The role is fixed at
// profile creation and never changes.

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

// Profile is a client or contractor account with a money balance.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Balance is mutated only through LedgerTransaction (payment/deposit); Version
// is the optimistic-lock counter bumped on every balance write, used by the
// deposit flow to guard its read-then-credit sequence.

type Profile struct {
	ID         string      `json:"id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Profession string      `json:"profession"`
	Balance    Cents       `json:"balance"`
	Type       ProfileType `json:"type"`
	Version    int64       `json:"-"`
	CreatedAt  time.Time   `json:"created_at"`
}

// FullName concatenates first and last name the way the admin reports expose it.
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}
