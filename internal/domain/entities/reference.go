package entities

import "time"

// Establishment is reference data: a clinic/lab in the benefit network.
// The state machines read it but never mutate it; referral approval is the
// only writer.
type Establishment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Specialty is reference data. CoparticipationValue is the fixed amount the
// client pays for an appointment in this specialty (0 means "use default").
type Specialty struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	CoparticipationValue float64 `json:"coparticipation_value"`
	Active               bool    `json:"active"`
}
