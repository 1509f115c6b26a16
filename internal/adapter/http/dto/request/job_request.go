package request

// JobRequest creates a job under an existing contract. Price is a decimal
// currency amount.
type JobRequest struct {
	ContractID  string  `json:"contractId" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}
