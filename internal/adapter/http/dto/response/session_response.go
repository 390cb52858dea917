package response

import (
	"time"

	"beneficios_saude/internal/domain/entities"
)

// SessionResponse returns the session id the client sends back as
// "Authorization: Bearer <session_id>".
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Name      string    `json:"name,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		SessionID: s.ID,
		UserID:    s.UserID,
		Role:      string(s.Role),
		Name:      s.Name,
		ExpiresAt: s.ExpiresAt,
	}
}
