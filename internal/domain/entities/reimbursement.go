package entities

import "time"

// ReimbursementStatus represents the lifecycle of a reimbursement claim.
//
// Transitions:
//   - pending   -> in_review | rejected | cancelled
//   - in_review -> pending | approved | rejected | cancelled
//   - approved  -> paid
//   - paid, rejected, cancelled are terminal

type ReimbursementStatus string

const (
	ReimbursementStatusPending   ReimbursementStatus = "pending"
	ReimbursementStatusInReview  ReimbursementStatus = "in_review"
	ReimbursementStatusApproved  ReimbursementStatus = "approved"
	ReimbursementStatusRejected  ReimbursementStatus = "rejected"
	ReimbursementStatusPaid      ReimbursementStatus = "paid"
	ReimbursementStatusCancelled ReimbursementStatus = "cancelled"
)

var allReimbursementStatuses = []ReimbursementStatus{
	ReimbursementStatusPending,
	ReimbursementStatusInReview,
	ReimbursementStatusApproved,
	ReimbursementStatusRejected,
	ReimbursementStatusPaid,
	ReimbursementStatusCancelled,
}

var reimbursementTransitions = map[ReimbursementStatus][]ReimbursementStatus{
	ReimbursementStatusPending: {
		ReimbursementStatusInReview,
		ReimbursementStatusApproved,
		ReimbursementStatusRejected,
		ReimbursementStatusCancelled,
	},
	ReimbursementStatusInReview: {
		ReimbursementStatusPending,
		ReimbursementStatusApproved,
		ReimbursementStatusRejected,
		ReimbursementStatusCancelled,
	},
	ReimbursementStatusApproved: {ReimbursementStatusPaid},
}

func (s ReimbursementStatus) Valid() bool {
	for _, v := range allReimbursementStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s ReimbursementStatus) Terminal() bool {
	return s == ReimbursementStatusPaid || s == ReimbursementStatusRejected || s == ReimbursementStatusCancelled
}

// CanTransitionTo reports whether next is a documented successor of s.
func (s ReimbursementStatus) CanTransitionTo(next ReimbursementStatus) bool {
	for _, candidate := range reimbursementTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ReimbursementSources returns every status from which next can be reached.
func ReimbursementSources(next ReimbursementStatus) []ReimbursementStatus {
	var out []ReimbursementStatus
	for _, from := range allReimbursementStatuses {
		if from.CanTransitionTo(next) {
			out = append(out, from)
		}
	}
	return out
}

type ClaimType string

const (
	ClaimTypeConsultation ClaimType = "consultation"
	ClaimTypeExam         ClaimType = "exam"
	ClaimTypeProcedure    ClaimType = "procedure"
	ClaimTypeMedication   ClaimType = "medication"
)

func (t ClaimType) Valid() bool {
	switch t {
	case ClaimTypeConsultation, ClaimTypeExam, ClaimTypeProcedure, ClaimTypeMedication:
		return true
	}
	return false
}

type PixKeyType string

const (
	PixKeyTypeCPF    PixKeyType = "cpf"
	PixKeyTypeEmail  PixKeyType = "email"
	PixKeyTypePhone  PixKeyType = "phone"
	PixKeyTypeRandom PixKeyType = "random"
)

func (t PixKeyType) Valid() bool {
	switch t {
	case PixKeyTypeCPF, PixKeyTypeEmail, PixKeyTypePhone, PixKeyTypeRandom:
		return true
	}
	return false
}

// Reimbursement is a client claim for repayment of an out-of-network expense.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id, sort created_at
//   - GSI2 (status-index): status, sort created_at
//
// Monetary representation:
//   - EstimatedValue is computed when the claim is submitted.
//   - ApprovedValue is set iff Status is approved or paid, and equals
//     EstimatedValue at two-decimal precision at approval time.
type Reimbursement struct {
	ID          string              `json:"id"`
	ClientID    string              `json:"client_id"`
	ClientName  string              `json:"client_name"`
	ClientCPF   string              `json:"client_cpf"`
	ClientEmail string              `json:"client_email"`
	ClaimType   ClaimType           `json:"claim_type"`
	Status      ReimbursementStatus `json:"status"`

	Description string     `json:"description,omitempty"`
	ExpenseDate *time.Time `json:"expense_date,omitempty"`

	EstimatedValue float64  `json:"estimated_value"`
	ApprovedValue  *float64 `json:"approved_value,omitempty"`

	PixKey     string     `json:"pix_key"`
	PixKeyType PixKeyType `json:"pix_key_type"`
	Documents  []string   `json:"documents,omitempty"`

	RejectionReason string     `json:"rejection_reason,omitempty"`
	PaymentNotes    string     `json:"payment_notes,omitempty"`
	ReviewStartedAt *time.Time `json:"review_started_at,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReimbursementUpdate is a partial write. Nil fields are left untouched;
// ClearApprovedValue removes approved_value.
type ReimbursementUpdate struct {
	Status             *ReimbursementStatus
	ApprovedValue      *float64
	ClearApprovedValue bool
	RejectionReason    *string
	PaymentNotes       *string
	ReviewStartedAt    *time.Time
	ApprovedAt         *time.Time
	PaidAt             *time.Time
	CancelledAt        *time.Time
}
