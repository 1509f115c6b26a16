package request

// ContractRequest creates a contract between a client and a contractor.
// Status defaults to "new" when omitted.
type ContractRequest struct {
	Terms        string `json:"terms" binding:"required"`
	ClientID     string `json:"clientId" binding:"required"`
	ContractorID string `json:"contractorId" binding:"required"`
	Status       string `json:"status"`
}
