package request

// DepositRequest funds a client balance. Amount is a decimal currency amount;
// validation (positive, finite, within the cap) happens in the use case.
type DepositRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}
