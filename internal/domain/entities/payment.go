package entities

import "time"

// PaymentStatus mirrors the paid flag of the owning appointment.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment is the coparticipation charge of one appointment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (appointment_id-index): appointment_id
//
// ProviderPaymentID is only known when the charge provider returns one
// (Mercado Pago does, the webhook does not).
type Payment struct {
	ID                string        `json:"id"`
	AppointmentID     string        `json:"appointment_id"`
	Amount            float64       `json:"amount"`
	Status            PaymentStatus `json:"status"`
	ProviderLink      string        `json:"provider_link,omitempty"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`
}

// PixArtifact is what a charge provider hands back for a PIX coparticipation.
// Both fields may be empty when the provider is unavailable.
type PixArtifact struct {
	QRImage           string `json:"qr_image,omitempty"`
	CopyPastePayload  string `json:"copy_paste_payload,omitempty"`
	PaymentLink       string `json:"payment_link,omitempty"`
	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
}

func (a PixArtifact) Empty() bool {
	return a.QRImage == "" && a.CopyPastePayload == ""
}

// ChargeRequest asks a provider to generate a PIX charge.
type ChargeRequest struct {
	PaymentID     string
	AppointmentID string
	Amount        float64
	Description   string
	PayerEmail    string
}

// ChargeVerification asks a provider whether a charge was settled.
type ChargeVerification struct {
	AppointmentID     string
	ClientID          string
	Amount            float64
	ProviderPaymentID string
}

// PayoutRequest asks a provider to transfer an approved reimbursement.
type PayoutRequest struct {
	ReimbursementID string
	Amount          float64
	PixKey          string
	PixKeyType      PixKeyType
	ClientID        string
	ClientName      string
	ClientCPF       string
	ClientEmail     string
	ClaimType       ClaimType
	ApprovedAt      time.Time
}

type PayoutStatus string

const (
	// PayoutStatusOK means the provider accepted the payout.
	PayoutStatusOK PayoutStatus = "ok"
	// PayoutStatusWarning means the approval is in the ledger but the payout
	// must be verified or retried manually.
	PayoutStatusWarning PayoutStatus = "warning"
)

type PayoutResult struct {
	Status  PayoutStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// PaymentUpdate is a partial write. Nil fields are left untouched.
type PaymentUpdate struct {
	Status            *PaymentStatus
	PaidAt            *time.Time
	ProviderLink      *string
	ProviderPaymentID *string
}
