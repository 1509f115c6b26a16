package handlers

import (
	"errors"
	"fmt"
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

// BalanceHandler handles HTTP requests for client balance deposits.

type BalanceHandler struct {
	usecase usecase.IDepositUseCase
}

func NewBalanceHandler(uc usecase.IDepositUseCase) *BalanceHandler {
	return &BalanceHandler{usecase: uc}
}

// Deposit credits the client's own balance. The amount is capped at 25% of the
// client's unpaid jobs total at the time of the deposit.
func (h *BalanceHandler) Deposit(c *gin.Context) {
	requester, ok := middleware.ProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("PROFILE_REQUIRED", "A valid profile_id header is required", http.StatusUnauthorized).ToHTTPError())
		return
	}
	userID := c.Param("userId")
	log.Printf("[deposit][handler] start user_id=%s profile_id=%s", userID, requester.ID)

	var req request.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[deposit][handler] invalid payload user_id=%s err=%v", userID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	balance, err := h.usecase.Deposit(c.Request.Context(), userID, requester, req.Amount)
	if err != nil {
		log.Printf("[deposit][handler] failed user_id=%s profile_id=%s err=%v", userID, requester.ID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] success user_id=%s balance=%s", userID, balance)

	c.JSON(http.StatusOK, response.DepositResponse{Message: "Deposit successful.", Balance: balance.Float()})
}

func mapDepositError(err error) *pkg.AppError {
	var capErr *usecase.DepositCapExceededError
	switch {
	case errors.As(err, &capErr):
		msg := fmt.Sprintf("Deposit amount exceeds the maximum allowed (%s).", capErr.Cap)
		return pkg.NewDomainErrorSimple("DEPOSIT_CAP_EXCEEDED", msg, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOnlyClientsCanDeposit), errors.Is(err, usecase.ErrDepositNotOwnAccount):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Clients can only deposit into their own account.", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidDepositAmount), errors.Is(err, entities.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Deposit amount must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDepositConflict):
		return pkg.NewDomainErrorSimple("DEPOSIT_CONFLICT", "Deposit rejected by a concurrent transaction, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
