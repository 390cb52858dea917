package response

import (
	"time"

	"beneficios_saude/internal/domain/entities"
)

type ReimbursementResponse struct {
	ID              string     `json:"id"`
	ClientID        string     `json:"client_id"`
	ClientName      string     `json:"client_name,omitempty"`
	ClaimType       string     `json:"claim_type"`
	Status          string     `json:"status"`
	Description     string     `json:"description,omitempty"`
	ExpenseDate     *time.Time `json:"expense_date,omitempty"`
	EstimatedValue  float64    `json:"estimated_value"`
	ApprovedValue   *float64   `json:"approved_value,omitempty"`
	PixKey          string     `json:"pix_key"`
	PixKeyType      string     `json:"pix_key_type"`
	Documents       []string   `json:"documents,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	PaymentNotes    string     `json:"payment_notes,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromReimbursement(r entities.Reimbursement) ReimbursementResponse {
	return ReimbursementResponse{
		ID:              r.ID,
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		ClaimType:       string(r.ClaimType),
		Status:          string(r.Status),
		Description:     r.Description,
		ExpenseDate:     r.ExpenseDate,
		EstimatedValue:  r.EstimatedValue,
		ApprovedValue:   r.ApprovedValue,
		PixKey:          r.PixKey,
		PixKeyType:      string(r.PixKeyType),
		Documents:       r.Documents,
		RejectionReason: r.RejectionReason,
		PaymentNotes:    r.PaymentNotes,
		ApprovedAt:      r.ApprovedAt,
		PaidAt:          r.PaidAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromReimbursements(items []entities.Reimbursement) []ReimbursementResponse {
	out := make([]ReimbursementResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromReimbursement(r))
	}
	return out
}

type PayoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ApprovalResponse is returned by approve and payout retry. A warning
// payout still means the approval was committed.
type ApprovalResponse struct {
	Reimbursement ReimbursementResponse `json:"reimbursement"`
	Payout        PayoutResponse        `json:"payout"`
}

func FromApproval(r entities.Reimbursement, payout entities.PayoutResult) ApprovalResponse {
	return ApprovalResponse{
		Reimbursement: FromReimbursement(r),
		Payout:        PayoutResponse{Status: string(payout.Status), Message: payout.Message},
	}
}
