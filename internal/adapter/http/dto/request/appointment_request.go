package request

import (
	"strings"
	"time"
)

type AppointmentRequest struct {
	SpecialtyID     string `json:"specialty_id" binding:"required"`
	EstablishmentID string `json:"establishment_id"`
	PreferredDate   string `json:"preferred_date"`
	Notes           string `json:"notes"`
}

func (r AppointmentRequest) ResolvePreferredDate() (*time.Time, error) {
	return parseOptionalDate(r.PreferredDate)
}

// ConfirmAppointmentRequest is sent by staff when scheduling a pending
// appointment. Required fields are checked by the use case.
type ConfirmAppointmentRequest struct {
	ScheduledAt     string `json:"scheduled_at"`
	EstablishmentID string `json:"establishment_id"`
	StaffNotes      string `json:"staff_notes"`
}

func (r ConfirmAppointmentRequest) ResolveScheduledAt() (*time.Time, error) {
	return parseOptionalDate(r.ScheduledAt)
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}

func (r ReasonRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
