package request

// ProfileRequest creates a profile. Type must be "client" or "contractor" and
// is fixed at creation. Balance is an optional opening balance in decimal
// currency units.
type ProfileRequest struct {
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	Profession string  `json:"profession" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Balance    float64 `json:"balance"`
}
