package entities

import "time"

// AppointmentStatus represents the lifecycle of a subsidized appointment request.
//
// Transitions:
//   - pending   -> confirmed | cancelled
//   - confirmed -> performed | cancelled
//   - performed, cancelled are terminal

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPerformed AppointmentStatus = "performed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusPerformed, AppointmentStatusCancelled},
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusPerformed, AppointmentStatusCancelled:
		return true
	}
	return false
}

func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusPerformed || s == AppointmentStatusCancelled
}

// CanTransitionTo reports whether next is a documented successor of s.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, candidate := range appointmentTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// AppointmentSources returns every status from which next can be reached.
func AppointmentSources(next AppointmentStatus) []AppointmentStatus {
	var out []AppointmentStatus
	for _, from := range []AppointmentStatus{AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusPerformed, AppointmentStatusCancelled} {
		if from.CanTransitionTo(next) {
			out = append(out, from)
		}
	}
	return out
}

// Appointment is a client request for a subsidized medical appointment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id, sort created_at
//   - GSI2 (status-index): status, sort created_at
//
// Invariants:
//   - ScheduledAt is nil while Status is pending.
//   - Paid implies PaidAt != nil.
//   - Paid and ClientClaimedPayment are independent signals; only staff sets Paid.
type Appointment struct {
	ID              string            `json:"id"`
	ClientID        string            `json:"client_id"`
	ClientName      string            `json:"client_name"`
	ClientEmail     string            `json:"client_email"`
	SpecialtyID     string            `json:"specialty_id"`
	EstablishmentID string            `json:"establishment_id,omitempty"`
	Status          AppointmentStatus `json:"status"`

	PreferredDate *time.Time `json:"preferred_date,omitempty"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`

	CoparticipationValue float64 `json:"coparticipation_value"`

	Paid                 bool       `json:"paid"`
	PaidAt               *time.Time `json:"paid_at,omitempty"`
	ClientClaimedPayment bool       `json:"client_claimed_payment"`
	ClientClaimedAt      *time.Time `json:"client_claimed_at,omitempty"`

	PixPayload  string `json:"pix_payload,omitempty"`
	PixQRImage  string `json:"pix_qr_image,omitempty"`
	PaymentLink string `json:"payment_link,omitempty"`

	ClientNotes        string     `json:"client_notes,omitempty"`
	StaffNotes         string     `json:"staff_notes,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`
	PerformedAt        *time.Time `json:"performed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasChargeArtifact reports whether a PIX artifact was already attached.
func (a Appointment) HasChargeArtifact() bool {
	return a.PixPayload != "" || a.PixQRImage != ""
}

// AppointmentUpdate is a partial write. Nil fields are left untouched.
type AppointmentUpdate struct {
	Status               *AppointmentStatus
	ScheduledAt          *time.Time
	EstablishmentID      *string
	StaffNotes           *string
	CancellationReason   *string
	ConfirmedAt          *time.Time
	PerformedAt          *time.Time
	CancelledAt          *time.Time
	Paid                 *bool
	PaidAt               *time.Time
	ClientClaimedPayment *bool
	ClientClaimedAt      *time.Time
	PixPayload           *string
	PixQRImage           *string
	PaymentLink          *string
}
