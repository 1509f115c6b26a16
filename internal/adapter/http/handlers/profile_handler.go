package handlers

import (
	"errors"
	"log"
	"net/http"

	"freelance_ledger/internal/adapter/http/dto/request"
	"freelance_ledger/internal/adapter/http/dto/response"
	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase"
	"freelance_ledger/pkg"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for profiles.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// CreateProfile registers a new client or contractor profile.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req request.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[profile][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), req.FirstName, req.LastName, req.Profession, entities.ProfileType(req.Type), req.Balance)
	if err != nil {
		log.Printf("[profile][handler] create failed err=%v", err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[profile][handler] create success profile_id=%s type=%s", created.ID, created.Type)

	c.JSON(http.StatusCreated, response.FromProfile(created))
}

// GetProfileByID returns a profile by id.
func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	profileID := c.Param("id")
	log.Printf("[profile][handler] get start profile_id=%s", profileID)

	profile, err := h.usecase.GetByID(c.Request.Context(), profileID)
	if err != nil {
		log.Printf("[profile][handler] get failed profile_id=%s err=%v", profileID, err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfileInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid profile input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
