package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/adapter/http/handlers/mocks"
	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestAppointmentHandler_RequestAppointment(t *testing.T) {
	t.Run("missing session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAppointmentHandler(mocks.NewMockIAppointmentUseCase(ctrl))

		r := newTestRouter(entities.Session{})
		r.POST("/v1/appointments", h.RequestAppointment)

		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"specialty_id":"sp-1"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAppointmentHandler(mocks.NewMockIAppointmentUseCase(ctrl))

		r := newTestRouter(clientSession)
		r.POST("/v1/appointments", h.RequestAppointment)

		w := doRequest(r, http.MethodPost, "/v1/appointments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid preferred date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAppointmentHandler(mocks.NewMockIAppointmentUseCase(ctrl))

		r := newTestRouter(clientSession)
		r.POST("/v1/appointments", h.RequestAppointment)

		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"specialty_id":"sp-1","preferred_date":"15/07/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().
			Request(gomock.Any(), clientSession, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Session, in usecase.RequestAppointmentInput) (usecase.AppointmentOutcome, error) {
				if in.SpecialtyID != "sp-1" || in.PreferredDate == nil || in.PreferredDate.Day() != 15 {
					t.Errorf("unexpected input: %+v", in)
				}
				return usecase.AppointmentOutcome{Appointment: entities.Appointment{ID: "ap-1", ClientID: "cli-1", Status: entities.AppointmentStatusPending}}, nil
			})

		r := newTestRouter(clientSession)
		r.POST("/v1/appointments", h.RequestAppointment)

		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"specialty_id":"sp-1","preferred_date":"2024-07-15"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.AppointmentResponse
		decodeBody(t, w, &body)
		if body.ID != "ap-1" || body.Status != "pending" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestAppointmentHandler_ConfirmAppointment(t *testing.T) {
	t.Run("charge warning is returned with 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		scheduled := time.Date(2024, 7, 20, 14, 0, 0, 0, time.UTC)
		uc.EXPECT().
			Confirm(gomock.Any(), staffSession, "ap-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Session, _ string, in usecase.ConfirmAppointmentInput) (usecase.AppointmentOutcome, error) {
				if in.ScheduledAt == nil || !in.ScheduledAt.Equal(scheduled) || in.EstablishmentID != "est-1" {
					t.Errorf("unexpected input: %+v", in)
				}
				return usecase.AppointmentOutcome{
					Appointment: entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusConfirmed, ScheduledAt: &scheduled},
					Warning:     "charge generation failed",
				}, nil
			})

		r := newTestRouter(staffSession)
		r.PATCH("/v1/appointments/:id/confirm", h.ConfirmAppointment)

		w := doRequest(r, http.MethodPatch, "/v1/appointments/ap-1/confirm", `{"scheduled_at":"2024-07-20T14:00:00Z","establishment_id":"est-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.AppointmentResponse
		decodeBody(t, w, &body)
		if body.Status != "confirmed" || body.Warning == "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("illegal transition is 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().Confirm(gomock.Any(), staffSession, "ap-1", gomock.Any()).Return(usecase.AppointmentOutcome{}, usecase.ErrInvalidTransition)

		r := newTestRouter(staffSession)
		r.PATCH("/v1/appointments/:id/confirm", h.ConfirmAppointment)

		w := doRequest(r, http.MethodPatch, "/v1/appointments/ap-1/confirm", `{"scheduled_at":"2024-07-20"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_Transitions(t *testing.T) {
	t.Run("reject without body passes empty reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().Reject(gomock.Any(), staffSession, "ap-1", "").Return(entities.Appointment{}, usecase.ErrMissingField)

		r := newTestRouter(staffSession)
		r.PATCH("/v1/appointments/:id/reject", h.RejectAppointment)

		w := doRequest(r, http.MethodPatch, "/v1/appointments/ap-1/reject", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().Reject(gomock.Any(), staffSession, "ap-1", "sem agenda").
			Return(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusCancelled, CancellationReason: "sem agenda"}, nil)

		r := newTestRouter(staffSession)
		r.PATCH("/v1/appointments/:id/reject", h.RejectAppointment)

		w := doRequest(r, http.MethodPatch, "/v1/appointments/ap-1/reject", `{"reason":"  sem agenda "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("client cancel forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), clientSession, "ap-2").Return(entities.Appointment{}, usecase.ErrForbidden)

		r := newTestRouter(clientSession)
		r.PATCH("/v1/appointments/:id/cancel", h.CancelAppointment)

		w := doRequest(r, http.MethodPatch, "/v1/appointments/ap-2/cancel", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("regenerate charge provider failure is 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().RegenerateCharge(gomock.Any(), staffSession, "ap-1").Return(entities.Appointment{}, errors.Join(usecase.ErrExternalService, errors.New("timeout")))

		r := newTestRouter(staffSession)
		r.POST("/v1/appointments/:id/charge", h.RegenerateCharge)

		w := doRequest(r, http.MethodPost, "/v1/appointments/ap-1/charge", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("verify payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().VerifyPayment(gomock.Any(), staffSession, "ap-1").Return(true, nil)

		r := newTestRouter(staffSession)
		r.POST("/v1/appointments/:id/verify-payment", h.VerifyPayment)

		w := doRequest(r, http.MethodPost, "/v1/appointments/ap-1/verify-payment", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.PaymentVerificationResponse
		decodeBody(t, w, &body)
		if !body.Confirmed || body.AppointmentID != "ap-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("list forwards status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().List(gomock.Any(), staffSession, "confirmed").Return([]entities.Appointment{{ID: "ap-1"}, {ID: "ap-2"}}, nil)

		r := newTestRouter(staffSession)
		r.GET("/v1/appointments", h.ListAppointments)

		w := doRequest(r, http.MethodGet, "/v1/appointments?status=confirmed", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.AppointmentResponse
		decodeBody(t, w, &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 items, got %d", len(body))
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), clientSession, "ap-9").Return(entities.Appointment{}, usecase.ErrAppointmentNotFound)

		r := newTestRouter(clientSession)
		r.GET("/v1/appointments/:id", h.GetAppointment)

		w := doRequest(r, http.MethodGet, "/v1/appointments/ap-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
