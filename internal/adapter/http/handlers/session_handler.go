package handlers

import (
	"log"
	"net/http"

	request "beneficios_saude/internal/adapter/http/dto/request"
	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/adapter/http/middleware"
	"beneficios_saude/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler opens and closes sessions. The returned session_id is sent
// back as "Authorization: Bearer <session_id>" on every other route.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) OpenSession(c *gin.Context) {
	var payload request.SessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	sess, err := h.usecase.Open(c.Request.Context(), payload.ResolveIdentityToken())
	if err != nil {
		respondError(c, "session", err)
		return
	}

	log.Printf("[session][handler] opened user_id=%s role=%s", sess.UserID, sess.Role)
	c.JSON(http.StatusCreated, response.FromSession(sess))
}

func (h *SessionHandler) CloseSession(c *gin.Context) {
	id := middleware.BearerToken(c)
	if id == "" {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	if err := h.usecase.Close(c.Request.Context(), id); err != nil {
		respondError(c, "session", err)
		return
	}

	c.Status(http.StatusNoContent)
}
