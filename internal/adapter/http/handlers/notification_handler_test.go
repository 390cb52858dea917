package handlers

import (
	"net/http"
	"testing"

	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/adapter/http/handlers/mocks"
	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestNotificationHandler(t *testing.T) {
	t.Run("list for session user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().ListForUser(gomock.Any(), clientSession).Return([]entities.Notification{
			{ID: "n-1", UserID: "cli-1", Title: "Consulta confirmada", Kind: entities.NotificationKindSuccess},
		}, nil)

		r := newTestRouter(clientSession)
		r.GET("/v1/notifications", h.ListNotifications)

		w := doRequest(r, http.MethodGet, "/v1/notifications", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.NotificationResponse
		decodeBody(t, w, &body)
		if len(body) != 1 || body[0].ID != "n-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("mark read of another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().MarkRead(gomock.Any(), clientSession, "n-2").Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		r := newTestRouter(clientSession)
		r.PATCH("/v1/notifications/:id/read", h.MarkNotificationRead)

		w := doRequest(r, http.MethodPatch, "/v1/notifications/n-2/read", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
