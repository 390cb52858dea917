package interfaces

import (
	"context"

	"beneficios_saude/internal/domain/entities"
)

// IReimbursementRepository abstracts DynamoDB persistence for Reimbursement.
// Update follows the same compare-and-swap contract as IAppointmentRepository.

type IReimbursementRepository interface {
	Create(ctx context.Context, r entities.Reimbursement) (entities.Reimbursement, error)
	GetByID(ctx context.Context, id string) (entities.Reimbursement, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Reimbursement, error)
	ListByStatus(ctx context.Context, status entities.ReimbursementStatus) ([]entities.Reimbursement, error)
	Update(ctx context.Context, id string, expected []entities.ReimbursementStatus, upd entities.ReimbursementUpdate) (entities.Reimbursement, error)
}
