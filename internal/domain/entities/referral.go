package entities

import "time"

// ReferralStatus represents the lifecycle of an establishment nomination.
// pending -> approved | rejected; both are terminal.

type ReferralStatus string

const (
	ReferralStatusPending  ReferralStatus = "pending"
	ReferralStatusApproved ReferralStatus = "approved"
	ReferralStatusRejected ReferralStatus = "rejected"
)

func (s ReferralStatus) Valid() bool {
	switch s {
	case ReferralStatusPending, ReferralStatusApproved, ReferralStatusRejected:
		return true
	}
	return false
}

// Referral (indicação) is a client nomination of an establishment that is not
// yet in the network. Approval creates the Establishment in the same write.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id, sort created_at
//   - GSI2 (status-index): status, sort created_at
type Referral struct {
	ID                string         `json:"id"`
	ClientID          string         `json:"client_id"`
	EstablishmentName string         `json:"establishment_name"`
	Address           string         `json:"address,omitempty"`
	City              string         `json:"city,omitempty"`
	State             string         `json:"state,omitempty"`
	Phone             string         `json:"phone,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	Status            ReferralStatus `json:"status"`
	RejectionReason   string         `json:"rejection_reason,omitempty"`
	EstablishmentID   string         `json:"establishment_id,omitempty"`
	ReviewedAt        *time.Time     `json:"reviewed_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// ToEstablishment builds the network entry created when the referral is approved.
func (r Referral) ToEstablishment(id string, now time.Time) Establishment {
	return Establishment{
		ID:        id,
		Name:      r.EstablishmentName,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Phone:     r.Phone,
		Active:    true,
		CreatedAt: now,
	}
}

// ReferralUpdate is a partial write. Nil fields are left untouched.
type ReferralUpdate struct {
	Status          *ReferralStatus
	RejectionReason *string
	ReviewedAt      *time.Time
}
