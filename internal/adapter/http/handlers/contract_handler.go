package handlers

import (
	"errors"
	"log"
	"net/http"

	"freelance_ledger/internal/adapter/http/dto/request"
	"freelance_ledger/internal/adapter/http/dto/response"
	"freelance_ledger/internal/adapter/http/middleware"
	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase"
	"freelance_ledger/pkg"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles HTTP requests for contracts. Reads are scoped to the
// calling profile: a contract is only visible to its client or contractor.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// GetContractByID returns the contract with the given id when the caller is a
// party to it. Contracts belonging to other profiles read as not found.
func (h *ContractHandler) GetContractByID(c *gin.Context) {
	requester, ok := middleware.ProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("PROFILE_REQUIRED", "A valid profile_id header is required", http.StatusUnauthorized).ToHTTPError())
		return
	}
	contractID := c.Param("id")
	log.Printf("[contract][handler] get start contract_id=%s profile_id=%s", contractID, requester.ID)

	contract, err := h.usecase.GetByID(c.Request.Context(), contractID, requester)
	if err != nil {
		log.Printf("[contract][handler] get failed contract_id=%s err=%v", contractID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

// ListContracts returns the caller's non-terminated contracts.
func (h *ContractHandler) ListContracts(c *gin.Context) {
	requester, ok := middleware.ProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("PROFILE_REQUIRED", "A valid profile_id header is required", http.StatusUnauthorized).ToHTTPError())
		return
	}
	log.Printf("[contract][handler] list start profile_id=%s", requester.ID)

	contracts, err := h.usecase.ListActive(c.Request.Context(), requester)
	if err != nil {
		log.Printf("[contract][handler] list failed profile_id=%s err=%v", requester.ID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

// CreateContract registers a new contract between a client and a contractor.
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req request.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[contract][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), req.Terms, req.ClientID, req.ContractorID, entities.ContractStatus(req.Status))
	if err != nil {
		log.Printf("[contract][handler] create failed client_id=%s contractor_id=%s err=%v", req.ClientID, req.ContractorID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] create success contract_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromContract(created))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidContractInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid contract input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
