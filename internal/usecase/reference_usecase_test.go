package usecase

import (
	"context"
	"errors"
	"testing"

	"beneficios_saude/internal/domain/entities"
	mock_interfaces "beneficios_saude/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReferenceUseCase(t *testing.T) {
	t.Run("specialties are active only and sorted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specialties := mock_interfaces.NewMockISpecialtyRepository(ctrl)
		uc := NewReferenceUseCase(nil, specialties)

		specialties.EXPECT().List(gomock.Any()).Return([]entities.Specialty{
			{ID: "2", Name: "Pediatria", Active: true},
			{ID: "3", Name: "Dermatologia", Active: false},
			{ID: "1", Name: "Cardiologia", Active: true},
		}, nil)

		items, err := uc.ListSpecialties(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 2 || items[0].Name != "Cardiologia" || items[1].Name != "Pediatria" {
			t.Fatalf("unexpected specialties: %+v", items)
		}
	})

	t.Run("establishment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		establishments := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewReferenceUseCase(establishments, nil)

		establishments.EXPECT().GetByID(gomock.Any(), "est-9").Return(entities.Establishment{}, nil)

		_, err := uc.GetEstablishment(context.Background(), "est-9")
		if !errors.Is(err, ErrEstablishmentNotFound) {
			t.Fatalf("expected ErrEstablishmentNotFound, got %v", err)
		}
	})

	t.Run("establishments forwarded with active filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		establishments := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewReferenceUseCase(establishments, nil)

		establishments.EXPECT().List(gomock.Any(), true).Return([]entities.Establishment{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}}, nil)

		items, err := uc.ListEstablishments(context.Background(), true)
		if err != nil || len(items) != 2 || items[0].ID != "a" {
			t.Fatalf("unexpected result: %+v err=%v", items, err)
		}
	})
}
