package entities

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleStaff
}

// Session is the authenticated actor of one request. It is created when a
// user logs in, destroyed on logout, and passed explicitly to every
// state-machine operation.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name,omitempty"`
	CPF       string    `json:"cpf,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) IsStaff() bool  { return s.Role == RoleStaff }
func (s Session) IsClient() bool { return s.Role == RoleClient }

// Owns reports whether the session belongs to the client clientID.
func (s Session) Owns(clientID string) bool {
	return s.IsClient() && s.UserID != "" && s.UserID == clientID
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
