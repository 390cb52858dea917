package interfaces

import (
	"context"

	"beneficios_saude/internal/domain/entities"
)

// IEstablishmentRepository reads network establishments.
type IEstablishmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Establishment, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Establishment, error)
}

// ISpecialtyRepository reads medical specialties.
type ISpecialtyRepository interface {
	GetByID(ctx context.Context, id string) (entities.Specialty, error)
	List(ctx context.Context) ([]entities.Specialty, error)
}
