package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"
)

var (
	ErrEstablishmentNotFound  = errors.New("establishment not found")
	ErrInvalidEstablishmentID = errors.New("invalid establishment id")
)

type IReferenceUseCase interface {
	ListEstablishments(ctx context.Context, activeOnly bool) ([]entities.Establishment, error)
	GetEstablishment(ctx context.Context, id string) (entities.Establishment, error)
	ListSpecialties(ctx context.Context) ([]entities.Specialty, error)
}

type ReferenceUseCase struct {
	establishments interfaces.IEstablishmentRepository
	specialties    interfaces.ISpecialtyRepository
}

var _ IReferenceUseCase = (*ReferenceUseCase)(nil)

func NewReferenceUseCase(establishments interfaces.IEstablishmentRepository, specialties interfaces.ISpecialtyRepository) *ReferenceUseCase {
	return &ReferenceUseCase{establishments: establishments, specialties: specialties}
}

func (u *ReferenceUseCase) ListEstablishments(ctx context.Context, activeOnly bool) ([]entities.Establishment, error) {
	items, err := u.establishments.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (u *ReferenceUseCase) GetEstablishment(ctx context.Context, id string) (entities.Establishment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Establishment{}, ErrInvalidEstablishmentID
	}
	est, err := u.establishments.GetByID(ctx, id)
	if err != nil {
		return entities.Establishment{}, err
	}
	if est.ID == "" {
		return entities.Establishment{}, ErrEstablishmentNotFound
	}
	return est, nil
}

// ListSpecialties returns active specialties only, sorted by name.
func (u *ReferenceUseCase) ListSpecialties(ctx context.Context) ([]entities.Specialty, error) {
	all, err := u.specialties.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Specialty, 0, len(all))
	for _, s := range all {
		if s.Active {
			items = append(items, s)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
