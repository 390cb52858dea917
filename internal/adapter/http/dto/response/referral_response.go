package response

import (
	"time"

	"beneficios_saude/internal/domain/entities"
)

type ReferralResponse struct {
	ID                string     `json:"id"`
	ClientID          string     `json:"client_id"`
	EstablishmentName string     `json:"establishment_name"`
	Address           string     `json:"address,omitempty"`
	City              string     `json:"city,omitempty"`
	State             string     `json:"state,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	Status            string     `json:"status"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	EstablishmentID   string     `json:"establishment_id,omitempty"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func FromReferral(r entities.Referral) ReferralResponse {
	return ReferralResponse{
		ID:                r.ID,
		ClientID:          r.ClientID,
		EstablishmentName: r.EstablishmentName,
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		Phone:             r.Phone,
		Notes:             r.Notes,
		Status:            string(r.Status),
		RejectionReason:   r.RejectionReason,
		EstablishmentID:   r.EstablishmentID,
		ReviewedAt:        r.ReviewedAt,
		CreatedAt:         r.CreatedAt,
	}
}

func FromReferrals(items []entities.Referral) []ReferralResponse {
	out := make([]ReferralResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromReferral(r))
	}
	return out
}
