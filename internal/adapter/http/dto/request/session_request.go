package request

import "strings"

// SessionRequest opens a session from the identity token issued by the auth
// provider.
type SessionRequest struct {
	IdentityToken string `json:"identity_token"`
}

func (r SessionRequest) ResolveIdentityToken() string {
	return strings.TrimSpace(r.IdentityToken)
}
