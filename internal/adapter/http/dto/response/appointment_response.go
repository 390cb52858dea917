package response

import (
	"time"

	"beneficios_saude/internal/domain/entities"
)

type PixResponse struct {
	Payload     string `json:"payload,omitempty"`
	QRImage     string `json:"qr_image,omitempty"`
	PaymentLink string `json:"payment_link,omitempty"`
}

type AppointmentResponse struct {
	ID                   string       `json:"id"`
	ClientID             string       `json:"client_id"`
	ClientName           string       `json:"client_name,omitempty"`
	SpecialtyID          string       `json:"specialty_id"`
	EstablishmentID      string       `json:"establishment_id,omitempty"`
	Status               string       `json:"status"`
	PreferredDate        *time.Time   `json:"preferred_date,omitempty"`
	ScheduledAt          *time.Time   `json:"scheduled_at,omitempty"`
	CoparticipationValue float64      `json:"coparticipation_value"`
	Paid                 bool         `json:"paid"`
	PaidAt               *time.Time   `json:"paid_at,omitempty"`
	ClientClaimedPayment bool         `json:"client_claimed_payment"`
	Pix                  *PixResponse `json:"pix,omitempty"`
	ClientNotes          string       `json:"client_notes,omitempty"`
	StaffNotes           string       `json:"staff_notes,omitempty"`
	CancellationReason   string       `json:"cancellation_reason,omitempty"`
	Warning              string       `json:"warning,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	res := AppointmentResponse{
		ID:                   a.ID,
		ClientID:             a.ClientID,
		ClientName:           a.ClientName,
		SpecialtyID:          a.SpecialtyID,
		EstablishmentID:      a.EstablishmentID,
		Status:               string(a.Status),
		PreferredDate:        a.PreferredDate,
		ScheduledAt:          a.ScheduledAt,
		CoparticipationValue: a.CoparticipationValue,
		Paid:                 a.Paid,
		PaidAt:               a.PaidAt,
		ClientClaimedPayment: a.ClientClaimedPayment,
		ClientNotes:          a.ClientNotes,
		StaffNotes:           a.StaffNotes,
		CancellationReason:   a.CancellationReason,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
	if a.HasChargeArtifact() || a.PaymentLink != "" {
		res.Pix = &PixResponse{Payload: a.PixPayload, QRImage: a.PixQRImage, PaymentLink: a.PaymentLink}
	}
	return res
}

// FromAppointmentOutcome adds the non-blocking charge warning, if any.
func FromAppointmentOutcome(a entities.Appointment, warning string) AppointmentResponse {
	res := FromAppointment(a)
	res.Warning = warning
	return res
}

func FromAppointments(items []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAppointment(a))
	}
	return out
}

type PaymentVerificationResponse struct {
	AppointmentID string `json:"appointment_id"`
	Confirmed     bool   `json:"confirmed"`
}
