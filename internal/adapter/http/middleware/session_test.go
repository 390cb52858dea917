package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beneficios_saude/internal/adapter/http/handlers/mocks"
	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProtectedRouter(sessions usecase.ISessionUseCase, role entities.Role) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", RequireSession(sessions))
	if role != "" {
		g.Use(RequireRole(role))
	}
	g.GET("/me", func(c *gin.Context) {
		sess, _ := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": sess.UserID})
	})
	return r
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockISessionUseCase(ctrl)
		r := newProtectedRouter(sessions, "")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockISessionUseCase(ctrl)
		r := newProtectedRouter(sessions, "")

		sessions.EXPECT().Resolve(gomock.Any(), "s-1").Return(entities.Session{}, usecase.ErrInvalidSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer s-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("store down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockISessionUseCase(ctrl)
		r := newProtectedRouter(sessions, "")

		sessions.EXPECT().Resolve(gomock.Any(), "s-1").Return(entities.Session{}, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer s-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("live session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockISessionUseCase(ctrl)
		r := newProtectedRouter(sessions, "")

		sessions.EXPECT().Resolve(gomock.Any(), "s-1").Return(entities.Session{ID: "s-1", UserID: "cli-1", Role: entities.RoleClient, ExpiresAt: time.Now().Add(time.Hour)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "bearer s-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client on staff route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockISessionUseCase(ctrl)
		r := newProtectedRouter(sessions, entities.RoleStaff)

		sessions.EXPECT().Resolve(gomock.Any(), "s-1").Return(entities.Session{ID: "s-1", UserID: "cli-1", Role: entities.RoleClient}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer s-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("staff on staff route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockISessionUseCase(ctrl)
		r := newProtectedRouter(sessions, entities.RoleStaff)

		sessions.EXPECT().Resolve(gomock.Any(), "s-2").Return(entities.Session{ID: "s-2", UserID: "stf-1", Role: entities.RoleStaff}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer s-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
