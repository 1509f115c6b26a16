package response

// MessageResponse is the body of mutation endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

// DepositResponse acknowledges a deposit and echoes the resulting balance.
type DepositResponse struct {
	Message string  `json:"message"`
	Balance float64 `json:"balance"`
}
