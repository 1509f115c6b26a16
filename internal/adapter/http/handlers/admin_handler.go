package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"freelance_ledger/internal/adapter/http/dto/response"
	"freelance_ledger/internal/usecase"
	"freelance_ledger/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the reporting endpoints. Both endpoints take a date
// window via start/end query params in YYYY-MM-DD form; the window is
// inclusive on both ends.

type AdminHandler struct {
	usecase usecase.IReportUseCase
}

func NewAdminHandler(uc usecase.IReportUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// BestProfession returns the profession that earned the most from paid jobs
// inside the window.
func (h *AdminHandler) BestProfession(c *gin.Context) {
	start, end, appErr := parseDateRange(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] best-profession start=%s end=%s", c.Query("start"), c.Query("end"))

	top, err := h.usecase.BestProfession(c.Request.Context(), start, end)
	if err != nil {
		log.Printf("[report][handler] best-profession failed err=%v", err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfessionEarnings(top))
}

// BestClients returns the clients that paid the most inside the window,
// highest spender first. An invalid or missing limit falls back to the
// default of 2.
func (h *AdminHandler) BestClients(c *gin.Context) {
	start, end, appErr := parseDateRange(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}
	log.Printf("[report][handler] best-clients start=%s end=%s limit=%d", c.Query("start"), c.Query("end"), limit)

	clients, err := h.usecase.BestClients(c.Request.Context(), start, end, limit)
	if err != nil {
		log.Printf("[report][handler] best-clients failed err=%v", err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientSpends(clients))
}

const dateLayout = "2006-01-02"

// parseDateRange reads start/end and widens end to the last instant of that
// day, so a window like start=2020-08-10&end=2020-08-10 covers the whole day.
func parseDateRange(c *gin.Context) (time.Time, time.Time, *pkg.AppError) {
	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		log.Printf("[report][handler] invalid start date value=%q err=%v", c.Query("start"), err)
		return time.Time{}, time.Time{}, pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range.", http.StatusBadRequest)
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		log.Printf("[report][handler] invalid end date value=%q err=%v", c.Query("end"), err)
		return time.Time{}, time.Time{}, pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range.", http.StatusBadRequest)
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoReportData):
		return pkg.NewDomainErrorSimple("NO_REPORT_DATA", "No data found for the given date range.", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
