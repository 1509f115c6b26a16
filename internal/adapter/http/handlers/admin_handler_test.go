package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freelance_ledger/internal/adapter/http/handlers/mocks"
	"freelance_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_BestProfession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIReportUseCase) *gin.Engine {
		h := NewAdminHandler(uc)
		r := gin.New()
		r.GET("/admin/best-profession", h.BestProfession)
		return r
	}

	t.Run("invalid date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/admin/best-profession?start=2020-08-10&end=not-a-date", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("end date widened to end of day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().BestProfession(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, start, end time.Time) (usecase.ProfessionEarnings, error) {
				if start.Format("2006-01-02") != "2020-08-10" {
					t.Fatalf("unexpected start: %v", start)
				}
				if end.Before(start.Add(24*time.Hour - time.Second)) {
					t.Fatalf("end not widened to end of day: %v", end)
				}
				return usecase.ProfessionEarnings{Profession: "Programmer", TotalEarned: 241400}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/admin/best-profession?start=2020-08-10&end=2020-08-10", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["profession"] != "Programmer" || body["total_earned"] != 2414.00 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().BestProfession(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ProfessionEarnings{}, usecase.ErrNoReportData)

		req := httptest.NewRequest(http.MethodGet, "/admin/best-profession?start=2020-08-10&end=2020-08-11", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "No data found for the given date range." {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
	})
}

func TestAdminHandler_BestClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIReportUseCase) *gin.Engine {
		h := NewAdminHandler(uc)
		r := gin.New()
		r.GET("/admin/best-clients", h.BestClients)
		return r
	}

	t.Run("success with explicit limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().BestClients(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return([]usecase.ClientSpend{
			{ID: "client-1", FullName: "Harry Potter", Paid: 242000},
			{ID: "client-2", FullName: "Mr Robot", Paid: 10100},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/best-clients?start=2020-08-01&end=2020-08-31&limit=3", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 clients, got %d", len(body))
		}
		if body[0]["fullName"] != "Harry Potter" || body[0]["paid"] != 2420.00 {
			t.Fatalf("unexpected first client: %s", w.Body.String())
		}
	})

	t.Run("non-numeric limit falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().BestClients(gomock.Any(), gomock.Any(), gomock.Any(), 0).Return([]usecase.ClientSpend{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/best-clients?start=2020-08-01&end=2020-08-31&limit=abc", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
