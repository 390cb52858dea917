package handlers

import (
	"context"
	"log"
	"net/http"

	request "beneficios_saude/internal/adapter/http/dto/request"
	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the appointment state machine. Role checks are
// done by the use case so clients and staff share the same routes.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) RequestAppointment(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	preferred, err := payload.ResolvePreferredDate()
	if err != nil {
		respondError(c, "appointment", err)
		return
	}

	out, err := h.usecase.Request(c.Request.Context(), sess, usecase.RequestAppointmentInput{
		SpecialtyID:     payload.SpecialtyID,
		EstablishmentID: payload.EstablishmentID,
		PreferredDate:   preferred,
		Notes:           payload.Notes,
	})
	if err != nil {
		respondError(c, "appointment", err)
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointmentOutcome(out.Appointment, out.Warning))
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	items, err := h.usecase.List(c.Request.Context(), sess, c.Query("status"))
	if err != nil {
		respondError(c, "appointment", err)
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(items))
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	h.run(c, h.usecase.GetByID)
}

// ConfirmAppointment schedules a pending appointment and generates its PIX
// charge. A charge failure comes back as a warning next to the confirmed
// appointment.
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.ConfirmAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	scheduledAt, err := payload.ResolveScheduledAt()
	if err != nil {
		respondError(c, "appointment", err)
		return
	}

	id := c.Param("id")
	log.Printf("[appointment][handler] confirm start id=%s user_id=%s", id, sess.UserID)
	out, err := h.usecase.Confirm(c.Request.Context(), sess, id, usecase.ConfirmAppointmentInput{
		ScheduledAt:     scheduledAt,
		EstablishmentID: payload.EstablishmentID,
		StaffNotes:      payload.StaffNotes,
	})
	if err != nil {
		respondError(c, "appointment", err)
		return
	}

	c.JSON(http.StatusOK, response.FromAppointmentOutcome(out.Appointment, out.Warning))
}

func (h *AppointmentHandler) RejectAppointment(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.ReasonRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	a, err := h.usecase.Reject(c.Request.Context(), sess, c.Param("id"), payload.ResolveReason())
	if err != nil {
		respondError(c, "appointment", err)
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(a))
}

func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.run(c, h.usecase.Cancel)
}

func (h *AppointmentHandler) PerformAppointment(c *gin.Context) {
	h.run(c, h.usecase.Perform)
}

func (h *AppointmentHandler) MarkAppointmentPaid(c *gin.Context) {
	h.run(c, h.usecase.MarkPaid)
}

func (h *AppointmentHandler) ReportPayment(c *gin.Context) {
	h.run(c, h.usecase.ReportPayment)
}

func (h *AppointmentHandler) RegenerateCharge(c *gin.Context) {
	h.run(c, h.usecase.RegenerateCharge)
}

func (h *AppointmentHandler) VerifyPayment(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	id := c.Param("id")
	confirmed, err := h.usecase.VerifyPayment(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, "appointment", err)
		return
	}

	c.JSON(http.StatusOK, response.PaymentVerificationResponse{AppointmentID: id, Confirmed: confirmed})
}

func (h *AppointmentHandler) run(
	c *gin.Context,
	action func(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error),
) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	a, err := action(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, "appointment", err)
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(a))
}
