package handlers

import (
	"errors"
	"log"
	"net/http"

	"freelance_ledger/internal/adapter/http/dto/request"
	"freelance_ledger/internal/adapter/http/dto/response"
	"freelance_ledger/internal/adapter/http/middleware"
	"freelance_ledger/internal/usecase"
	"freelance_ledger/pkg"

	"github.com/gin-gonic/gin"
)

// JobHandler handles HTTP requests for jobs, including the payment operation
// that moves money from the client to the contractor.

type JobHandler struct {
	jobs     usecase.IJobUseCase
	payments usecase.IPaymentUseCase
}

func NewJobHandler(jobs usecase.IJobUseCase, payments usecase.IPaymentUseCase) *JobHandler {
	return &JobHandler{jobs: jobs, payments: payments}
}

// ListUnpaidJobs returns unpaid jobs under the caller's in-progress contracts.
func (h *JobHandler) ListUnpaidJobs(c *gin.Context) {
	requester, ok := middleware.ProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("PROFILE_REQUIRED", "A valid profile_id header is required", http.StatusUnauthorized).ToHTTPError())
		return
	}
	log.Printf("[job][handler] list-unpaid start profile_id=%s", requester.ID)

	jobs, err := h.jobs.ListUnpaid(c.Request.Context(), requester)
	if err != nil {
		log.Printf("[job][handler] list-unpaid failed profile_id=%s err=%v", requester.ID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// PayJob pays for a job. The caller must be the client on the job's contract
// and hold a balance of at least the job price; the transfer and the paid flag
// flip atomically.
func (h *JobHandler) PayJob(c *gin.Context) {
	requester, ok := middleware.ProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("PROFILE_REQUIRED", "A valid profile_id header is required", http.StatusUnauthorized).ToHTTPError())
		return
	}
	jobID := c.Param("job_id")
	log.Printf("[job][handler] pay start job_id=%s profile_id=%s", jobID, requester.ID)

	if err := h.payments.PayJob(c.Request.Context(), jobID, requester); err != nil {
		log.Printf("[job][handler] pay failed job_id=%s profile_id=%s err=%v", jobID, requester.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] pay success job_id=%s profile_id=%s", jobID, requester.ID)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Payment successful."})
}

// CreateJob registers a new unpaid job under an existing contract.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req request.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[job][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.jobs.Create(c.Request.Context(), req.ContractID, req.Description, req.Price)
	if err != nil {
		log.Printf("[job][handler] create failed contract_id=%s err=%v", req.ContractID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] create success job_id=%s contract_id=%s", created.ID, created.ContractID)

	c.JSON(http.StatusCreated, response.FromJob(created))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid job input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoUnpaidJobs):
		return pkg.NewDomainErrorSimple("NO_UNPAID_JOBS", "No unpaid jobs found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid job id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOnlyClientsCanPay):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only clients can pay for jobs.", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobAlreadyPaid):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_PAID", "Job is already paid.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientBalance):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Insufficient balance.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_CONFLICT", "Payment rejected by a concurrent transaction, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
