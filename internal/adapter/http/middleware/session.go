package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase"
	"beneficios_saude/pkg"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid session", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this role", http.StatusForbidden)
)

// RequireSession resolves "Authorization: Bearer <session-id>" and stores the
// session in the gin context.
func RequireSession(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := BearerToken(c)
		if id == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, usecase.ErrInvalidSession) {
				log.Printf("[session][middleware] resolve failed err=%v", err)
				appErr := pkg.NewDomainError("SESSION_STORE_UNAVAILABLE", "Session store unavailable", err, http.StatusServiceUnavailable)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		SetSession(c, sess)
		c.Next()
	}
}

// RequireRole must run after RequireSession.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if sess.Role != role {
			log.Printf("[session][middleware] role denied user_id=%s role=%s required=%s path=%s", sess.UserID, sess.Role, role, c.FullPath())
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetSession(c *gin.Context, sess entities.Session) {
	c.Set(sessionContextKey, sess)
}

func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return entities.Session{}, false
	}
	sess, ok := v.(entities.Session)
	return sess, ok
}

func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
