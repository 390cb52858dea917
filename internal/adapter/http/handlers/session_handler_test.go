package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/adapter/http/handlers/mocks"
	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestSessionHandler_OpenSession(t *testing.T) {
	t.Run("opened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().Open(gomock.Any(), "id-token").Return(entities.Session{
			ID: "s-1", UserID: "cli-1", Role: entities.RoleClient, ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		r := newTestRouter(entities.Session{})
		r.POST("/v1/sessions", h.OpenSession)

		w := doRequest(r, http.MethodPost, "/v1/sessions", `{"identity_token":" id-token "}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.SessionResponse
		decodeBody(t, w, &body)
		if body.SessionID != "s-1" || body.Role != "client" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("invalid identity token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().Open(gomock.Any(), "bad").Return(entities.Session{}, usecase.ErrInvalidIdentityToken)

		r := newTestRouter(entities.Session{})
		r.POST("/v1/sessions", h.OpenSession)

		w := doRequest(r, http.MethodPost, "/v1/sessions", `{"identity_token":"bad"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestSessionHandler_CloseSession(t *testing.T) {
	t.Run("no bearer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewSessionHandler(mocks.NewMockISessionUseCase(ctrl))

		r := newTestRouter(entities.Session{})
		r.DELETE("/v1/sessions", h.CloseSession)

		w := doRequest(r, http.MethodDelete, "/v1/sessions", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().Close(gomock.Any(), "s-1").Return(nil)

		r := newTestRouter(entities.Session{})
		r.DELETE("/v1/sessions", h.CloseSession)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sessions", nil)
		req.Header.Set("Authorization", "Bearer s-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
