package interfaces

import (
	"context"
	"time"

	"beneficios_saude/internal/domain/entities"
)

// IReferralRepository abstracts DynamoDB persistence for Referral.
//
// ApproveWithEstablishment moves a pending referral to approved and inserts
// the new establishment in one transaction. When the referral is no longer
// pending it returns a zero-value Referral and a nil error.

type IReferralRepository interface {
	Create(ctx context.Context, r entities.Referral) (entities.Referral, error)
	GetByID(ctx context.Context, id string) (entities.Referral, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Referral, error)
	ListByStatus(ctx context.Context, status entities.ReferralStatus) ([]entities.Referral, error)
	Update(ctx context.Context, id string, expected []entities.ReferralStatus, upd entities.ReferralUpdate) (entities.Referral, error)
	ApproveWithEstablishment(ctx context.Context, id string, est entities.Establishment, reviewedAt time.Time) (entities.Referral, error)
}
