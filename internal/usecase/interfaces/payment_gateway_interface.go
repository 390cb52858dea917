package interfaces

import (
	"context"

	"beneficios_saude/internal/domain/entities"
)

// IChargeGateway abstracts the external provider that generates and verifies
// PIX charges for appointment coparticipation (webhook or Mercado Pago).
type IChargeGateway interface {
	CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.PixArtifact, error)
	VerifyCharge(ctx context.Context, req entities.ChargeVerification) (bool, error)
}

// IPayoutGateway abstracts the external provider that transfers approved
// reimbursements to the client's PIX key.
type IPayoutGateway interface {
	RequestPayout(ctx context.Context, req entities.PayoutRequest) error
}
