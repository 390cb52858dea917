package handlers

import (
	"net/http"

	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	items, err := h.usecase.ListForUser(c.Request.Context(), sess)
	if err != nil {
		respondError(c, "notification", err)
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(items))
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	n, err := h.usecase.MarkRead(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, "notification", err)
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}
