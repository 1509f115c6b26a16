package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance_ledger/internal/adapter/http/handlers/mocks"
	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBalanceHandler_Deposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIDepositUseCase) *gin.Engine {
		h := NewBalanceHandler(uc)
		r := gin.New()
		r.POST("/balances/deposit/:userId", withProfile(testClient("client-1")), h.Deposit)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/balances/deposit/client-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().Deposit(gomock.Any(), "client-1", gomock.Any(), 50.0).Return(entities.Cents(16150), nil)

		w := post(newRouter(uc), `{"amount":50}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Deposit successful." || body["balance"] != 161.50 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)

		w := post(newRouter(uc), `{}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cap exceeded carries the cap in the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().Deposit(gomock.Any(), "client-1", gomock.Any(), 50.01).Return(entities.Cents(0), &usecase.DepositCapExceededError{Cap: 5000})

		w := post(newRouter(uc), `{"amount":50.01}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Deposit amount exceeds the maximum allowed (50.00)." {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
	})

	t.Run("not own account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().Deposit(gomock.Any(), "client-1", gomock.Any(), 50.0).Return(entities.Cents(0), usecase.ErrDepositNotOwnAccount)

		w := post(newRouter(uc), `{"amount":50}`)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("concurrent transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().Deposit(gomock.Any(), "client-1", gomock.Any(), 50.0).Return(entities.Cents(0), usecase.ErrDepositConflict)

		w := post(newRouter(uc), `{"amount":50}`)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
