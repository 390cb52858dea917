package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"beneficios_saude/internal/domain/entities"
	mock_interfaces "beneficios_saude/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func clientSession() entities.Session {
	return entities.Session{ID: "sess-c", UserID: "cli-1", Role: entities.RoleClient, Name: "Ana Souza", CPF: "12345678900", Email: "ana@example.com"}
}

func staffSession() entities.Session {
	return entities.Session{ID: "sess-s", UserID: "staff-1", Role: entities.RoleStaff, Name: "Equipe"}
}

type appointmentMocks struct {
	repo           *mock_interfaces.MockIAppointmentRepository
	payments       *mock_interfaces.MockIPaymentRepository
	establishments *mock_interfaces.MockIEstablishmentRepository
	specialties    *mock_interfaces.MockISpecialtyRepository
	reconciler     *mock_interfaces.MockIPaymentReconciler
	notifier       *mock_interfaces.MockINotificationEmitter
}

func newAppointmentUseCaseWithMocks(t *testing.T) (*AppointmentUseCase, appointmentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appointmentMocks{
		repo:           mock_interfaces.NewMockIAppointmentRepository(ctrl),
		payments:       mock_interfaces.NewMockIPaymentRepository(ctrl),
		establishments: mock_interfaces.NewMockIEstablishmentRepository(ctrl),
		specialties:    mock_interfaces.NewMockISpecialtyRepository(ctrl),
		reconciler:     mock_interfaces.NewMockIPaymentReconciler(ctrl),
		notifier:       mock_interfaces.NewMockINotificationEmitter(ctrl),
	}
	uc := NewAppointmentUseCase(m.repo, m.payments, m.establishments, m.specialties, m.reconciler, m.notifier, 25)
	return uc, m
}

func TestAppointmentUseCase_Request(t *testing.T) {
	t.Run("staff cannot request", func(t *testing.T) {
		uc, _ := newAppointmentUseCaseWithMocks(t)
		_, err := uc.Request(context.Background(), staffSession(), RequestAppointmentInput{SpecialtyID: "sp-1"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing specialty", func(t *testing.T) {
		uc, _ := newAppointmentUseCaseWithMocks(t)
		_, err := uc.Request(context.Background(), clientSession(), RequestAppointmentInput{SpecialtyID: "  "})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("inactive specialty", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.specialties.EXPECT().GetByID(gomock.Any(), "sp-1").Return(entities.Specialty{ID: "sp-1", Active: false}, nil)

		_, err := uc.Request(context.Background(), clientSession(), RequestAppointmentInput{SpecialtyID: "sp-1"})
		if !errors.Is(err, ErrSpecialtyUnavailable) {
			t.Fatalf("expected ErrSpecialtyUnavailable, got %v", err)
		}
	})

	t.Run("creates pending appointment and attaches pix artifact", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.specialties.EXPECT().GetByID(gomock.Any(), "sp-1").Return(entities.Specialty{ID: "sp-1", Active: true, CoparticipationValue: 30}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
			if a.Status != entities.AppointmentStatusPending || a.ScheduledAt != nil {
				t.Fatalf("unexpected appointment on create: %+v", a)
			}
			if a.ClientID != "cli-1" || a.ClientEmail != "ana@example.com" {
				t.Fatalf("expected client snapshot, got %+v", a)
			}
			return a, nil
		})
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.Amount != 30 || p.Status != entities.PaymentStatusPending {
				t.Fatalf("unexpected payment on create: %+v", p)
			}
			return p, nil
		})
		m.reconciler.EXPECT().GenerateCharge(gomock.Any(), gomock.Any(), 30.0).Return(entities.PixArtifact{QRImage: "qr", CopyPastePayload: "000201"}, nil)
		m.notifier.EXPECT().Emit(gomock.Any(), gomock.Any())

		out, err := uc.Request(context.Background(), clientSession(), RequestAppointmentInput{SpecialtyID: "sp-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Warning != "" {
			t.Fatalf("expected no warning, got %q", out.Warning)
		}
		if out.Appointment.PixPayload != "000201" || out.Appointment.PixQRImage != "qr" {
			t.Fatalf("expected artifact attached, got %+v", out.Appointment)
		}
		if out.Appointment.CoparticipationValue != 30 {
			t.Fatalf("expected coparticipation 30, got %v", out.Appointment.CoparticipationValue)
		}
	})

	t.Run("provider failure is a warning and falls back to default value", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.specialties.EXPECT().GetByID(gomock.Any(), "sp-2").Return(entities.Specialty{ID: "sp-2", Active: true}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
			return a, nil
		})
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})
		m.reconciler.EXPECT().GenerateCharge(gomock.Any(), gomock.Any(), 25.0).Return(entities.PixArtifact{}, ErrExternalService)
		m.notifier.EXPECT().Emit(gomock.Any(), gomock.Any())

		out, err := uc.Request(context.Background(), clientSession(), RequestAppointmentInput{SpecialtyID: "sp-2"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Warning != ChargeUnavailableWarning {
			t.Fatalf("expected charge warning, got %q", out.Warning)
		}
		if out.Appointment.HasChargeArtifact() {
			t.Fatalf("expected empty artifact, got %+v", out.Appointment)
		}
	})

	t.Run("payment record failure still returns the appointment", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.specialties.EXPECT().GetByID(gomock.Any(), "sp-1").Return(entities.Specialty{ID: "sp-1", Active: true, CoparticipationValue: 30}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
			return a, nil
		})
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("payments table throttled"))
		m.reconciler.EXPECT().GenerateCharge(gomock.Any(), gomock.Any(), 30.0).Return(entities.PixArtifact{CopyPastePayload: "000201", QRImage: "qr"}, nil)
		m.notifier.EXPECT().Emit(gomock.Any(), gomock.Any())

		out, err := uc.Request(context.Background(), clientSession(), RequestAppointmentInput{SpecialtyID: "sp-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Appointment.ID == "" || out.Appointment.Status != entities.AppointmentStatusPending {
			t.Fatalf("expected persisted pending appointment, got %+v", out.Appointment)
		}
		if out.Appointment.PixPayload != "000201" {
			t.Fatalf("expected artifact attached, got %+v", out.Appointment)
		}
	})

	t.Run("store error aborts before notification", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.specialties.EXPECT().GetByID(gomock.Any(), "sp-1").Return(entities.Specialty{ID: "sp-1", Active: true, CoparticipationValue: 30}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, errors.New("db"))

		_, err := uc.Request(context.Background(), clientSession(), RequestAppointmentInput{SpecialtyID: "sp-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAppointmentUseCase_Confirm(t *testing.T) {
	when := time.Date(2026, 11, 3, 14, 0, 0, 0, time.UTC)

	t.Run("missing establishment leaves appointment untouched", func(t *testing.T) {
		uc, _ := newAppointmentUseCaseWithMocks(t)
		_, err := uc.Confirm(context.Background(), staffSession(), "ap-1", ConfirmAppointmentInput{ScheduledAt: &when})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("missing schedule", func(t *testing.T) {
		uc, _ := newAppointmentUseCaseWithMocks(t)
		_, err := uc.Confirm(context.Background(), staffSession(), "ap-1", ConfirmAppointmentInput{EstablishmentID: "est-1"})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("client cannot confirm", func(t *testing.T) {
		uc, _ := newAppointmentUseCaseWithMocks(t)
		_, err := uc.Confirm(context.Background(), clientSession(), "ap-1", ConfirmAppointmentInput{ScheduledAt: &when, EstablishmentID: "est-1"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("cancelled appointment cannot be confirmed", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusCancelled}, nil)

		_, err := uc.Confirm(context.Background(), staffSession(), "ap-1", ConfirmAppointmentInput{ScheduledAt: &when, EstablishmentID: "est-1"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{}, nil)

		_, err := uc.Confirm(context.Background(), staffSession(), "ap-1", ConfirmAppointmentInput{ScheduledAt: &when, EstablishmentID: "est-1"})
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("inactive establishment", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusPending}, nil)
		m.establishments.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{ID: "est-1", Active: false}, nil)

		_, err := uc.Confirm(context.Background(), staffSession(), "ap-1", ConfirmAppointmentInput{ScheduledAt: &when, EstablishmentID: "est-1"})
		if !errors.Is(err, ErrEstablishmentUnavailable) {
			t.Fatalf("expected ErrEstablishmentUnavailable, got %v", err)
		}
	})

	t.Run("confirms with status guard and retries missing charge", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", ClientID: "cli-1", Status: entities.AppointmentStatusPending, CoparticipationValue: 30}, nil)
		m.establishments.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{ID: "est-1", Active: true}, nil)
		m.repo.EXPECT().Update(gomock.Any(), "ap-1", []entities.AppointmentStatus{entities.AppointmentStatusPending}, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, _ []entities.AppointmentStatus, upd entities.AppointmentUpdate) (entities.Appointment, error) {
				if upd.Status == nil || *upd.Status != entities.AppointmentStatusConfirmed {
					t.Fatalf("expected confirmed status, got %+v", upd.Status)
				}
				if upd.ScheduledAt == nil || !upd.ScheduledAt.Equal(when) {
					t.Fatalf("expected scheduled_at %v, got %v", when, upd.ScheduledAt)
				}
				return entities.Appointment{ID: id, ClientID: "cli-1", Status: *upd.Status, ScheduledAt: upd.ScheduledAt, EstablishmentID: *upd.EstablishmentID, CoparticipationValue: 30}, nil
			})
		m.reconciler.EXPECT().GenerateCharge(gomock.Any(), "ap-1", 30.0).Return(entities.PixArtifact{QRImage: "qr", CopyPastePayload: "000201"}, nil)
		m.notifier.EXPECT().Emit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n entities.Notification) {
			if n.UserID != "cli-1" {
				t.Fatalf("expected notification for cli-1, got %q", n.UserID)
			}
		})

		out, err := uc.Confirm(context.Background(), staffSession(), "ap-1", ConfirmAppointmentInput{ScheduledAt: &when, EstablishmentID: "est-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Appointment.Status != entities.AppointmentStatusConfirmed || out.Appointment.PixPayload != "000201" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("zero rows on guarded write is an invalid transition", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusPending}, nil)
		m.establishments.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{ID: "est-1", Active: true}, nil)
		m.repo.EXPECT().Update(gomock.Any(), "ap-1", gomock.Any(), gomock.Any()).Return(entities.Appointment{}, nil)

		_, err := uc.Confirm(context.Background(), staffSession(), "ap-1", ConfirmAppointmentInput{ScheduledAt: &when, EstablishmentID: "est-1"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestAppointmentUseCase_RejectCancelPerform(t *testing.T) {
	t.Run("reject requires reason", func(t *testing.T) {
		uc, _ := newAppointmentUseCaseWithMocks(t)
		_, err := uc.Reject(context.Background(), staffSession(), "ap-1", " ")
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("reject only from pending", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusConfirmed}, nil)
		_, err := uc.Reject(context.Background(), staffSession(), "ap-1", "sem vaga")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("reject cancels and stores reason", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", ClientID: "cli-1", Status: entities.AppointmentStatusPending}, nil)
		m.repo.EXPECT().Update(gomock.Any(), "ap-1", []entities.AppointmentStatus{entities.AppointmentStatusPending}, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, _ []entities.AppointmentStatus, upd entities.AppointmentUpdate) (entities.Appointment, error) {
				return entities.Appointment{ID: id, ClientID: "cli-1", Status: *upd.Status, CancellationReason: *upd.CancellationReason}, nil
			})
		m.notifier.EXPECT().Emit(gomock.Any(), gomock.Any())

		got, err := uc.Reject(context.Background(), staffSession(), "ap-1", "sem vaga")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.AppointmentStatusCancelled || got.CancellationReason != "sem vaga" {
			t.Fatalf("unexpected appointment: %+v", got)
		}
	})

	t.Run("another client cannot cancel", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", ClientID: "cli-2", Status: entities.AppointmentStatusPending}, nil)
		_, err := uc.Cancel(context.Background(), clientSession(), "ap-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("owner cancels confirmed appointment", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", ClientID: "cli-1", Status: entities.AppointmentStatusConfirmed}, nil)
		m.repo.EXPECT().Update(gomock.Any(), "ap-1", []entities.AppointmentStatus{entities.AppointmentStatusPending, entities.AppointmentStatusConfirmed}, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, _ []entities.AppointmentStatus, upd entities.AppointmentUpdate) (entities.Appointment, error) {
				return entities.Appointment{ID: id, ClientID: "cli-1", Status: *upd.Status, CancelledAt: upd.CancelledAt}, nil
			})
		m.notifier.EXPECT().Emit(gomock.Any(), gomock.Any())

		got, err := uc.Cancel(context.Background(), clientSession(), "ap-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.AppointmentStatusCancelled || got.CancelledAt == nil {
			t.Fatalf("unexpected appointment: %+v", got)
		}
	})

	t.Run("performed appointment cannot be cancelled", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", ClientID: "cli-1", Status: entities.AppointmentStatusPerformed}, nil)
		_, err := uc.Cancel(context.Background(), staffSession(), "ap-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("perform requires confirmed", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusPending}, nil)
		_, err := uc.Perform(context.Background(), staffSession(), "ap-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestAppointmentUseCase_PaymentSignals(t *testing.T) {
	t.Run("mark paid is idempotent", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		paidAt := time.Now().UTC()
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusConfirmed, Paid: true, PaidAt: &paidAt}, nil)

		got, err := uc.MarkPaid(context.Background(), staffSession(), "ap-1")
		if err != nil || !got.Paid {
			t.Fatalf("expected paid appointment unchanged, got %+v err=%v", got, err)
		}
	})

	t.Run("mark paid on cancelled is illegal", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusCancelled}, nil)
		_, err := uc.MarkPaid(context.Background(), staffSession(), "ap-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("mark paid mirrors payment record", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", ClientID: "cli-1", Status: entities.AppointmentStatusConfirmed}, nil)
		m.repo.EXPECT().Update(gomock.Any(), "ap-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, _ []entities.AppointmentStatus, upd entities.AppointmentUpdate) (entities.Appointment, error) {
				if upd.Paid == nil || !*upd.Paid || upd.PaidAt == nil {
					t.Fatalf("expected paid flag and timestamp, got %+v", upd)
				}
				if upd.Status != nil {
					t.Fatalf("mark paid must not change status, got %v", *upd.Status)
				}
				return entities.Appointment{ID: id, ClientID: "cli-1", Status: entities.AppointmentStatusConfirmed, Paid: true, PaidAt: upd.PaidAt}, nil
			})
		m.payments.EXPECT().GetByAppointmentID(gomock.Any(), "ap-1").Return(entities.Payment{ID: "pay-1", AppointmentID: "ap-1"}, nil)
		m.payments.EXPECT().Update(gomock.Any(), "pay-1", gomock.Any()).DoAndReturn(func(_ context.Context, id string, upd entities.PaymentUpdate) (entities.Payment, error) {
			if upd.Status == nil || *upd.Status != entities.PaymentStatusPaid {
				t.Fatalf("expected payment status paid, got %+v", upd.Status)
			}
			return entities.Payment{ID: id, Status: *upd.Status}, nil
		})
		m.notifier.EXPECT().Emit(gomock.Any(), gomock.Any())

		got, err := uc.MarkPaid(context.Background(), staffSession(), "ap-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.Paid || got.PaidAt == nil {
			t.Fatalf("expected paid appointment, got %+v", got)
		}
	})

	t.Run("report payment only records the claim", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", ClientID: "cli-1", Status: entities.AppointmentStatusPending}, nil)
		m.repo.EXPECT().Update(gomock.Any(), "ap-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, _ []entities.AppointmentStatus, upd entities.AppointmentUpdate) (entities.Appointment, error) {
				if upd.Paid != nil || upd.PaidAt != nil {
					t.Fatalf("report payment must not touch paid, got %+v", upd)
				}
				return entities.Appointment{ID: id, ClientID: "cli-1", Status: entities.AppointmentStatusPending, ClientClaimedPayment: *upd.ClientClaimedPayment, ClientClaimedAt: upd.ClientClaimedAt}, nil
			})

		got, err := uc.ReportPayment(context.Background(), clientSession(), "ap-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Paid || !got.ClientClaimedPayment {
			t.Fatalf("expected claim without paid, got %+v", got)
		}
	})

	t.Run("verify payment twice never writes", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		appt := entities.Appointment{ID: "ap-1", ClientID: "cli-1", Status: entities.AppointmentStatusConfirmed, CoparticipationValue: 30}
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(appt, nil).Times(2)
		m.reconciler.EXPECT().VerifyCharge(gomock.Any(), "ap-1", 30.0, "cli-1").Return(true, nil).Times(2)

		for i := 0; i < 2; i++ {
			ok, err := uc.VerifyPayment(context.Background(), staffSession(), "ap-1")
			if err != nil || !ok {
				t.Fatalf("call %d: expected confirmation, got ok=%v err=%v", i, ok, err)
			}
		}
	})

	t.Run("regenerate charge on paid appointment is illegal", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusConfirmed, Paid: true, CoparticipationValue: 30}, nil)
		_, err := uc.RegenerateCharge(context.Background(), staffSession(), "ap-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("regenerate charge surfaces provider errors", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusConfirmed, CoparticipationValue: 30}, nil)
		m.reconciler.EXPECT().GenerateCharge(gomock.Any(), "ap-1", 30.0).Return(entities.PixArtifact{}, externalService("generate_charge", errors.New("502")))

		_, err := uc.RegenerateCharge(context.Background(), staffSession(), "ap-1")
		if !errors.Is(err, ErrExternalService) {
			t.Fatalf("expected ErrExternalService, got %v", err)
		}
	})
}

func TestAppointmentUseCase_ReadAccess(t *testing.T) {
	t.Run("client cannot read someone else's appointment", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ap-1").Return(entities.Appointment{ID: "ap-1", ClientID: "cli-2"}, nil)
		_, err := uc.GetByID(context.Background(), clientSession(), "ap-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("client list filters by status, newest first", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		m.repo.EXPECT().ListByClientID(gomock.Any(), "cli-1").Return([]entities.Appointment{
			{ID: "a", Status: entities.AppointmentStatusPending, CreatedAt: base},
			{ID: "b", Status: entities.AppointmentStatusCancelled, CreatedAt: base.Add(time.Hour)},
			{ID: "c", Status: entities.AppointmentStatusPending, CreatedAt: base.Add(2 * time.Hour)},
		}, nil)

		items, err := uc.List(context.Background(), clientSession(), "pending")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 2 || items[0].ID != "c" || items[1].ID != "a" {
			t.Fatalf("unexpected list: %+v", items)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		uc, _ := newAppointmentUseCaseWithMocks(t)
		_, err := uc.List(context.Background(), staffSession(), "done")
		if !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})

	t.Run("staff list queries by status", func(t *testing.T) {
		uc, m := newAppointmentUseCaseWithMocks(t)
		m.repo.EXPECT().ListByStatus(gomock.Any(), entities.AppointmentStatusPending).Return([]entities.Appointment{{ID: "a"}}, nil)

		items, err := uc.List(context.Background(), staffSession(), "pending")
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result: %+v err=%v", items, err)
		}
	})
}
