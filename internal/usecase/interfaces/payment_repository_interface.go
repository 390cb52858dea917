package interfaces

import (
	"context"

	"beneficios_saude/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
// There is at most one payment per appointment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (entities.Payment, error)
	Update(ctx context.Context, id string, upd entities.PaymentUpdate) (entities.Payment, error)
}
