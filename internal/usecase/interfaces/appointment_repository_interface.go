package interfaces

import (
	"context"

	"beneficios_saude/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
//
// Update is a compare-and-swap on status: the write only happens when the
// stored status is one of expected (any status when expected is empty).
// A failed condition or a missing row returns a zero-value Appointment and
// a nil error; callers treat that as "zero rows affected".

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Appointment, error)
	ListByStatus(ctx context.Context, status entities.AppointmentStatus) ([]entities.Appointment, error)
	Update(ctx context.Context, id string, expected []entities.AppointmentStatus, upd entities.AppointmentUpdate) (entities.Appointment, error)
}
