package interfaces

import (
	"context"

	"beneficios_saude/internal/domain/entities"
)

// INotificationEmitter is the fire-and-forget side channel used by the state
// machines. Emit never fails the caller.
type INotificationEmitter interface {
	Emit(ctx context.Context, n entities.Notification)
}

// IPaymentReconciler is the payment side of the state machines. It is only
// invoked after the authoritative status write.
type IPaymentReconciler interface {
	GenerateCharge(ctx context.Context, appointmentID string, amount float64) (entities.PixArtifact, error)
	VerifyCharge(ctx context.Context, appointmentID string, amount float64, clientID string) (bool, error)
	TriggerPayout(ctx context.Context, req entities.PayoutRequest) entities.PayoutResult
}
