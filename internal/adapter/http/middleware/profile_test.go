package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance_ledger/internal/adapter/http/handlers/mocks"
	"freelance_ledger/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProfileLoader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(profiles *mocks.MockIProfileUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/contracts", ProfileLoader(profiles), func(c *gin.Context) {
			profile, ok := ProfileFromContext(c)
			if !ok {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": profile.ID})
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileUseCase(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
		w := httptest.NewRecorder()
		newRouter(profiles).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileUseCase(ctrl)
		profiles.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Profile{}, errors.New("profile not found"))

		req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
		req.Header.Set(HeaderProfileID, "ghost")
		w := httptest.NewRecorder()
		newRouter(profiles).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("known profile reaches the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileUseCase(ctrl)
		profiles.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Profile{ID: "client-1", Type: entities.ProfileTypeClient}, nil)

		req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
		req.Header.Set(HeaderProfileID, "client-1")
		w := httptest.NewRecorder()
		newRouter(profiles).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}
