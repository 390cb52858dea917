package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentID     = errors.New("invalid appointment id")
	ErrInvalidStatusFilter      = errors.New("invalid status filter")
	ErrEstablishmentUnavailable = errors.New("establishment not found or inactive")
	ErrSpecialtyUnavailable     = errors.New("specialty not found or inactive")
)

// ChargeUnavailableWarning is surfaced when the PIX artifact could not be
// generated. The appointment itself is still created/confirmed.
const ChargeUnavailableWarning = "payment artifact unavailable"

type RequestAppointmentInput struct {
	SpecialtyID     string
	EstablishmentID string
	PreferredDate   *time.Time
	Notes           string
}

type ConfirmAppointmentInput struct {
	ScheduledAt     *time.Time
	EstablishmentID string
	StaffNotes      string
}

// AppointmentOutcome is an appointment write plus the non-blocking result of
// the charge generation that follows it.
type AppointmentOutcome struct {
	Appointment entities.Appointment
	Warning     string
}

// IAppointmentUseCase is the appointment state machine.
//
//   - pending -> confirmed -> performed
//   - pending -> cancelled, confirmed -> cancelled
//   - Paid and ClientClaimedPayment are independent flags, not transitions.

type IAppointmentUseCase interface {
	Request(ctx context.Context, sess entities.Session, in RequestAppointmentInput) (AppointmentOutcome, error)
	Confirm(ctx context.Context, sess entities.Session, id string, in ConfirmAppointmentInput) (AppointmentOutcome, error)
	Reject(ctx context.Context, sess entities.Session, id string, reason string) (entities.Appointment, error)
	Cancel(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error)
	Perform(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error)
	MarkPaid(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error)
	ReportPayment(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error)
	VerifyPayment(ctx context.Context, sess entities.Session, id string) (bool, error)
	RegenerateCharge(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error)
	GetByID(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error)
	List(ctx context.Context, sess entities.Session, status string) ([]entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo                   interfaces.IAppointmentRepository
	payments               interfaces.IPaymentRepository
	establishments         interfaces.IEstablishmentRepository
	specialties            interfaces.ISpecialtyRepository
	reconciler             interfaces.IPaymentReconciler
	notifier               interfaces.INotificationEmitter
	defaultCoparticipation float64
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(
	repo interfaces.IAppointmentRepository,
	payments interfaces.IPaymentRepository,
	establishments interfaces.IEstablishmentRepository,
	specialties interfaces.ISpecialtyRepository,
	reconciler interfaces.IPaymentReconciler,
	notifier interfaces.INotificationEmitter,
	defaultCoparticipation float64,
) *AppointmentUseCase {
	return &AppointmentUseCase{
		repo:                   repo,
		payments:               payments,
		establishments:         establishments,
		specialties:            specialties,
		reconciler:             reconciler,
		notifier:               notifier,
		defaultCoparticipation: defaultCoparticipation,
	}
}

func (u *AppointmentUseCase) Request(ctx context.Context, sess entities.Session, in RequestAppointmentInput) (AppointmentOutcome, error) {
	log.Printf("[appointment][usecase] request start client_id=%s specialty_id=%s", sess.UserID, in.SpecialtyID)
	if !sess.IsClient() || sess.UserID == "" {
		return AppointmentOutcome{}, ErrForbidden
	}
	specialtyID := strings.TrimSpace(in.SpecialtyID)
	if specialtyID == "" {
		return AppointmentOutcome{}, missingField("specialty_id")
	}

	specialty, err := u.specialties.GetByID(ctx, specialtyID)
	if err != nil {
		return AppointmentOutcome{}, err
	}
	if specialty.ID == "" || !specialty.Active {
		return AppointmentOutcome{}, ErrSpecialtyUnavailable
	}

	establishmentID := strings.TrimSpace(in.EstablishmentID)
	if establishmentID != "" {
		if err := u.requireActiveEstablishment(ctx, establishmentID); err != nil {
			return AppointmentOutcome{}, err
		}
	}

	amount := specialty.CoparticipationValue
	if amount <= 0 {
		amount = u.defaultCoparticipation
	}

	now := time.Now().UTC()
	a := entities.Appointment{
		ID:                   uuid.NewString(),
		ClientID:             sess.UserID,
		ClientName:           sess.Name,
		ClientEmail:          sess.Email,
		SpecialtyID:          specialtyID,
		EstablishmentID:      establishmentID,
		Status:               entities.AppointmentStatusPending,
		PreferredDate:        in.PreferredDate,
		CoparticipationValue: amount,
		ClientNotes:          strings.TrimSpace(in.Notes),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[appointment][usecase] create failed client_id=%s err=%v", sess.UserID, err)
		return AppointmentOutcome{}, err
	}

	if amount > 0 {
		if _, err := u.payments.Create(ctx, entities.Payment{
			ID:            uuid.NewString(),
			AppointmentID: created.ID,
			Amount:        amount,
			Status:        entities.PaymentStatusPending,
			CreatedAt:     now,
		}); err != nil {
			// the charge step recreates the record when it is missing
			log.Printf("[appointment][usecase] payment record failed appointment_id=%s err=%v", created.ID, err)
		}
	}

	out := AppointmentOutcome{Appointment: created}
	u.attachCharge(ctx, &out)

	u.notify(ctx, created, "Solicitação de agendamento recebida",
		"Sua solicitação foi registrada e será analisada pela equipe.", entities.NotificationKindInfo)
	log.Printf("[appointment][usecase] request success appointment_id=%s amount=%.2f warning=%q", created.ID, amount, out.Warning)
	return out, nil
}

func (u *AppointmentUseCase) Confirm(ctx context.Context, sess entities.Session, id string, in ConfirmAppointmentInput) (AppointmentOutcome, error) {
	log.Printf("[appointment][usecase] confirm start appointment_id=%s staff_id=%s", id, sess.UserID)
	if !sess.IsStaff() {
		return AppointmentOutcome{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return AppointmentOutcome{}, ErrInvalidAppointmentID
	}
	if in.ScheduledAt == nil || in.ScheduledAt.IsZero() {
		return AppointmentOutcome{}, missingField("scheduled_at")
	}
	establishmentID := strings.TrimSpace(in.EstablishmentID)
	if establishmentID == "" {
		return AppointmentOutcome{}, missingField("establishment_id")
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return AppointmentOutcome{}, err
	}
	if !current.Status.CanTransitionTo(entities.AppointmentStatusConfirmed) {
		return AppointmentOutcome{}, invalidTransition("appointment", id, string(current.Status), "confirm")
	}
	if err := u.requireActiveEstablishment(ctx, establishmentID); err != nil {
		return AppointmentOutcome{}, err
	}

	now := time.Now().UTC()
	status := entities.AppointmentStatusConfirmed
	scheduledAt := in.ScheduledAt.UTC()
	notes := strings.TrimSpace(in.StaffNotes)
	updated, err := u.transition(ctx, id, "confirm", entities.AppointmentUpdate{
		Status:          &status,
		ScheduledAt:     &scheduledAt,
		EstablishmentID: &establishmentID,
		StaffNotes:      &notes,
		ConfirmedAt:     &now,
	})
	if err != nil {
		return AppointmentOutcome{}, err
	}

	out := AppointmentOutcome{Appointment: updated}
	if !updated.HasChargeArtifact() && !updated.Paid {
		u.attachCharge(ctx, &out)
	}

	u.notify(ctx, updated, "Agendamento confirmado",
		fmt.Sprintf("Seu agendamento foi confirmado para %s.", scheduledAt.Format("02/01/2006 15:04")), entities.NotificationKindSuccess)
	log.Printf("[appointment][usecase] confirm success appointment_id=%s warning=%q", id, out.Warning)
	return out, nil
}

func (u *AppointmentUseCase) Reject(ctx context.Context, sess entities.Session, id string, reason string) (entities.Appointment, error) {
	log.Printf("[appointment][usecase] reject start appointment_id=%s staff_id=%s", id, sess.UserID)
	if !sess.IsStaff() {
		return entities.Appointment{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Appointment{}, missingField("reason")
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if current.Status != entities.AppointmentStatusPending {
		return entities.Appointment{}, invalidTransition("appointment", id, string(current.Status), "reject")
	}

	now := time.Now().UTC()
	status := entities.AppointmentStatusCancelled
	updated, err := u.transitionFrom(ctx, id, "reject", []entities.AppointmentStatus{entities.AppointmentStatusPending}, entities.AppointmentUpdate{
		Status:             &status,
		CancellationReason: &reason,
		CancelledAt:        &now,
	})
	if err != nil {
		return entities.Appointment{}, err
	}

	u.notify(ctx, updated, "Solicitação de agendamento recusada",
		fmt.Sprintf("Sua solicitação foi recusada. Motivo: %s", reason), entities.NotificationKindError)
	return updated, nil
}

// Cancel is allowed to the owning client and to staff. It never refunds a
// paid coparticipation; that stays a manual staff decision.
func (u *AppointmentUseCase) Cancel(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error) {
	log.Printf("[appointment][usecase] cancel start appointment_id=%s user_id=%s role=%s", id, sess.UserID, sess.Role)
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !sess.IsStaff() && !sess.Owns(current.ClientID) {
		return entities.Appointment{}, ErrForbidden
	}
	if !current.Status.CanTransitionTo(entities.AppointmentStatusCancelled) {
		return entities.Appointment{}, invalidTransition("appointment", id, string(current.Status), "cancel")
	}

	now := time.Now().UTC()
	status := entities.AppointmentStatusCancelled
	updated, err := u.transition(ctx, id, "cancel", entities.AppointmentUpdate{
		Status:      &status,
		CancelledAt: &now,
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.Paid {
		log.Printf("[appointment][usecase] cancelled paid appointment; refund requires manual handling appointment_id=%s", id)
	}

	u.notify(ctx, updated, "Agendamento cancelado", "Seu agendamento foi cancelado.", entities.NotificationKindWarning)
	return updated, nil
}

func (u *AppointmentUseCase) Perform(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error) {
	if !sess.IsStaff() {
		return entities.Appointment{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !current.Status.CanTransitionTo(entities.AppointmentStatusPerformed) {
		return entities.Appointment{}, invalidTransition("appointment", id, string(current.Status), "perform")
	}

	now := time.Now().UTC()
	status := entities.AppointmentStatusPerformed
	return u.transition(ctx, id, "perform", entities.AppointmentUpdate{
		Status:      &status,
		PerformedAt: &now,
	})
}

// MarkPaid is the staff-authoritative payment signal.
func (u *AppointmentUseCase) MarkPaid(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error) {
	log.Printf("[appointment][usecase] mark-paid start appointment_id=%s staff_id=%s", id, sess.UserID)
	if !sess.IsStaff() {
		return entities.Appointment{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if current.Status == entities.AppointmentStatusCancelled {
		return entities.Appointment{}, invalidTransition("appointment", id, string(current.Status), "mark paid")
	}
	if current.Paid {
		return current, nil
	}

	now := time.Now().UTC()
	paid := true
	updated, err := u.transitionFrom(ctx, id, "mark paid", payableAppointmentStatuses, entities.AppointmentUpdate{
		Paid:   &paid,
		PaidAt: &now,
	})
	if err != nil {
		return entities.Appointment{}, err
	}

	u.mirrorPayment(ctx, id, now)
	u.notify(ctx, updated, "Pagamento confirmado", "O pagamento da coparticipação foi confirmado.", entities.NotificationKindSuccess)
	return updated, nil
}

// ReportPayment records the client's claim only; Paid is untouched.
func (u *AppointmentUseCase) ReportPayment(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error) {
	log.Printf("[appointment][usecase] report-payment start appointment_id=%s client_id=%s", id, sess.UserID)
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !sess.Owns(current.ClientID) {
		return entities.Appointment{}, ErrForbidden
	}
	if current.Status == entities.AppointmentStatusCancelled {
		return entities.Appointment{}, invalidTransition("appointment", id, string(current.Status), "report payment")
	}
	if current.Paid || current.ClientClaimedPayment {
		return current, nil
	}

	now := time.Now().UTC()
	claimed := true
	return u.transitionFrom(ctx, id, "report payment", payableAppointmentStatuses, entities.AppointmentUpdate{
		ClientClaimedPayment: &claimed,
		ClientClaimedAt:      &now,
	})
}

// VerifyPayment re-checks the charge with the provider. A confirmation still
// requires an explicit MarkPaid.
func (u *AppointmentUseCase) VerifyPayment(ctx context.Context, sess entities.Session, id string) (bool, error) {
	if !sess.IsStaff() {
		return false, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidAppointmentID
	}
	current, err := u.load(ctx, id)
	if err != nil {
		return false, err
	}
	return u.reconciler.VerifyCharge(ctx, current.ID, current.CoparticipationValue, current.ClientID)
}

func (u *AppointmentUseCase) RegenerateCharge(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error) {
	if !sess.IsStaff() {
		return entities.Appointment{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if current.Status == entities.AppointmentStatusCancelled || current.Paid {
		return entities.Appointment{}, invalidTransition("appointment", id, string(current.Status), "generate a charge")
	}
	if current.CoparticipationValue <= 0 {
		return entities.Appointment{}, ErrInvalidAmount
	}

	artifact, err := u.reconciler.GenerateCharge(ctx, current.ID, current.CoparticipationValue)
	if err != nil {
		return entities.Appointment{}, err
	}
	applyArtifact(&current, artifact)
	return current, nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, sess entities.Session, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	a, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !sess.IsStaff() && !sess.Owns(a.ClientID) {
		return entities.Appointment{}, ErrForbidden
	}
	return a, nil
}

// List returns the caller's appointments (clients) or the staff queue,
// newest first. An empty status means every status.
func (u *AppointmentUseCase) List(ctx context.Context, sess entities.Session, status string) ([]entities.Appointment, error) {
	status = strings.TrimSpace(status)
	filter := entities.AppointmentStatus(status)
	if status != "" && !filter.Valid() {
		return nil, ErrInvalidStatusFilter
	}

	var items []entities.Appointment
	switch {
	case sess.IsClient() && sess.UserID != "":
		all, err := u.repo.ListByClientID(ctx, sess.UserID)
		if err != nil {
			return nil, err
		}
		for _, a := range all {
			if status == "" || a.Status == filter {
				items = append(items, a)
			}
		}
	case sess.IsStaff():
		statuses := []entities.AppointmentStatus{filter}
		if status == "" {
			statuses = []entities.AppointmentStatus{
				entities.AppointmentStatusPending,
				entities.AppointmentStatusConfirmed,
				entities.AppointmentStatusPerformed,
				entities.AppointmentStatusCancelled,
			}
		}
		for _, s := range statuses {
			part, err := u.repo.ListByStatus(ctx, s)
			if err != nil {
				return nil, err
			}
			items = append(items, part...)
		}
	default:
		return nil, ErrInvalidSession
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

var payableAppointmentStatuses = []entities.AppointmentStatus{
	entities.AppointmentStatusPending,
	entities.AppointmentStatusConfirmed,
	entities.AppointmentStatusPerformed,
}

func (u *AppointmentUseCase) load(ctx context.Context, id string) (entities.Appointment, error) {
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

// transition writes upd guarded by every status that may reach upd.Status.
func (u *AppointmentUseCase) transition(ctx context.Context, id, action string, upd entities.AppointmentUpdate) (entities.Appointment, error) {
	return u.transitionFrom(ctx, id, action, entities.AppointmentSources(*upd.Status), upd)
}

func (u *AppointmentUseCase) transitionFrom(ctx context.Context, id, action string, expected []entities.AppointmentStatus, upd entities.AppointmentUpdate) (entities.Appointment, error) {
	updated, err := u.repo.Update(ctx, id, expected, upd)
	if err != nil {
		log.Printf("[appointment][usecase] %s write failed appointment_id=%s err=%v", action, id, err)
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		log.Printf("[appointment][usecase] %s lost status race appointment_id=%s", action, id)
		return entities.Appointment{}, fmt.Errorf("%w: appointment %s changed concurrently, cannot %s", ErrInvalidTransition, id, action)
	}
	return updated, nil
}

func (u *AppointmentUseCase) requireActiveEstablishment(ctx context.Context, id string) error {
	est, err := u.establishments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if est.ID == "" || !est.Active {
		return ErrEstablishmentUnavailable
	}
	return nil
}

func (u *AppointmentUseCase) attachCharge(ctx context.Context, out *AppointmentOutcome) {
	a := &out.Appointment
	if a.CoparticipationValue <= 0 || u.reconciler == nil {
		return
	}
	artifact, err := u.reconciler.GenerateCharge(ctx, a.ID, a.CoparticipationValue)
	if err != nil {
		log.Printf("[appointment][usecase] charge unavailable appointment_id=%s err=%v", a.ID, err)
		out.Warning = ChargeUnavailableWarning
		return
	}
	applyArtifact(a, artifact)
}

func (u *AppointmentUseCase) mirrorPayment(ctx context.Context, appointmentID string, paidAt time.Time) {
	if u.payments == nil {
		return
	}
	p, err := u.payments.GetByAppointmentID(ctx, appointmentID)
	if err != nil || p.ID == "" {
		log.Printf("[appointment][usecase] payment record unavailable appointment_id=%s err=%v", appointmentID, err)
		return
	}
	status := entities.PaymentStatusPaid
	if _, err := u.payments.Update(ctx, p.ID, entities.PaymentUpdate{Status: &status, PaidAt: &paidAt}); err != nil {
		log.Printf("[appointment][usecase] payment mirror failed appointment_id=%s payment_id=%s err=%v", appointmentID, p.ID, err)
	}
}

func (u *AppointmentUseCase) notify(ctx context.Context, a entities.Appointment, title, message string, kind entities.NotificationKind) {
	if u.notifier == nil {
		return
	}
	u.notifier.Emit(ctx, entities.Notification{
		UserID:  a.ClientID,
		Title:   title,
		Message: message,
		Kind:    kind,
		Link:    "/appointments/" + a.ID,
	})
}

func applyArtifact(a *entities.Appointment, artifact entities.PixArtifact) {
	a.PixPayload = artifact.CopyPastePayload
	a.PixQRImage = artifact.QRImage
	if artifact.PaymentLink != "" {
		a.PaymentLink = artifact.PaymentLink
	}
}
