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
	"beneficios_saude/internal/domain/money"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrReimbursementNotFound  = errors.New("reimbursement not found")
	ErrInvalidReimbursementID = errors.New("invalid reimbursement id")
	ErrInvalidClaimType       = errors.New("invalid claim type")
	ErrInvalidPixKeyType      = errors.New("invalid pix key type")
	ErrInvalidEstimatedValue  = errors.New("estimated value must be greater than zero")
)

// PayoutInFlightWarning is returned when the caller stops waiting before the
// provider answered. The call keeps running and is not retried.
const PayoutInFlightWarning = "approved in the ledger; payout still in flight, verify with the provider before retrying"

type RequestReimbursementInput struct {
	ClaimType      string
	Description    string
	ExpenseDate    *time.Time
	EstimatedValue float64
	PixKey         string
	PixKeyType     string
	Documents      []string
}

// ApprovalOutcome is the committed reimbursement plus the result of the
// payout attempt that followed the commit.
type ApprovalOutcome struct {
	Reimbursement entities.Reimbursement
	Payout        entities.PayoutResult
}

// IReimbursementUseCase is the reimbursement state machine.
//
//   - pending <-> in_review
//   - pending | in_review -> approved -> paid
//   - pending | in_review -> rejected | cancelled
//
// Approval is the only transition gated by the monetary validator. The payout
// runs after the approval is committed and never rolls it back.

type IReimbursementUseCase interface {
	Request(ctx context.Context, sess entities.Session, in RequestReimbursementInput) (entities.Reimbursement, error)
	StartReview(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error)
	ReturnToPending(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error)
	Approve(ctx context.Context, sess entities.Session, id string, enteredValue string) (ApprovalOutcome, error)
	Reject(ctx context.Context, sess entities.Session, id string, reason string) (entities.Reimbursement, error)
	MarkPaid(ctx context.Context, sess entities.Session, id string, notes string) (entities.Reimbursement, error)
	Cancel(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error)
	RetryPayout(ctx context.Context, sess entities.Session, id string) (ApprovalOutcome, error)
	GetByID(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error)
	List(ctx context.Context, sess entities.Session, status string) ([]entities.Reimbursement, error)
}

type ReimbursementUseCase struct {
	repo       interfaces.IReimbursementRepository
	reconciler interfaces.IPaymentReconciler
	notifier   interfaces.INotificationEmitter
}

var _ IReimbursementUseCase = (*ReimbursementUseCase)(nil)

func NewReimbursementUseCase(repo interfaces.IReimbursementRepository, reconciler interfaces.IPaymentReconciler, notifier interfaces.INotificationEmitter) *ReimbursementUseCase {
	return &ReimbursementUseCase{repo: repo, reconciler: reconciler, notifier: notifier}
}

func (u *ReimbursementUseCase) Request(ctx context.Context, sess entities.Session, in RequestReimbursementInput) (entities.Reimbursement, error) {
	log.Printf("[reimbursement][usecase] request start client_id=%s claim_type=%s", sess.UserID, in.ClaimType)
	if !sess.IsClient() || sess.UserID == "" {
		return entities.Reimbursement{}, ErrForbidden
	}

	claimType := entities.ClaimType(strings.TrimSpace(in.ClaimType))
	if claimType == "" {
		return entities.Reimbursement{}, missingField("claim_type")
	}
	if !claimType.Valid() {
		return entities.Reimbursement{}, ErrInvalidClaimType
	}
	pixKey := strings.TrimSpace(in.PixKey)
	if pixKey == "" {
		return entities.Reimbursement{}, missingField("pix_key")
	}
	pixKeyType := entities.PixKeyType(strings.TrimSpace(in.PixKeyType))
	if pixKeyType == "" {
		return entities.Reimbursement{}, missingField("pix_key_type")
	}
	if !pixKeyType.Valid() {
		return entities.Reimbursement{}, ErrInvalidPixKeyType
	}
	estimated, _ := money.RoundCents(decimal.NewFromFloat(in.EstimatedValue)).Float64()
	if estimated <= 0 {
		return entities.Reimbursement{}, ErrInvalidEstimatedValue
	}

	var documents []string
	for _, d := range in.Documents {
		if d = strings.TrimSpace(d); d != "" {
			documents = append(documents, d)
		}
	}

	now := time.Now().UTC()
	r := entities.Reimbursement{
		ID:             uuid.NewString(),
		ClientID:       sess.UserID,
		ClientName:     sess.Name,
		ClientCPF:      sess.CPF,
		ClientEmail:    sess.Email,
		ClaimType:      claimType,
		Status:         entities.ReimbursementStatusPending,
		Description:    strings.TrimSpace(in.Description),
		ExpenseDate:    in.ExpenseDate,
		EstimatedValue: estimated,
		PixKey:         pixKey,
		PixKeyType:     pixKeyType,
		Documents:      documents,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[reimbursement][usecase] create failed client_id=%s err=%v", sess.UserID, err)
		return entities.Reimbursement{}, err
	}

	u.notify(ctx, created, "Solicitação de reembolso recebida",
		fmt.Sprintf("Seu pedido de reembolso de R$ %.2f foi registrado.", created.EstimatedValue), entities.NotificationKindInfo)
	log.Printf("[reimbursement][usecase] request success reimbursement_id=%s estimated=%.2f", created.ID, created.EstimatedValue)
	return created, nil
}

func (u *ReimbursementUseCase) StartReview(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error) {
	if !sess.IsStaff() {
		return entities.Reimbursement{}, ErrForbidden
	}
	current, err := u.loadByID(ctx, id)
	if err != nil {
		return entities.Reimbursement{}, err
	}
	if current.Status != entities.ReimbursementStatusPending {
		return entities.Reimbursement{}, invalidTransition("reimbursement", current.ID, string(current.Status), "start review")
	}

	now := time.Now().UTC()
	status := entities.ReimbursementStatusInReview
	updated, err := u.transitionFrom(ctx, current.ID, "start review", []entities.ReimbursementStatus{entities.ReimbursementStatusPending}, entities.ReimbursementUpdate{
		Status:          &status,
		ReviewStartedAt: &now,
	})
	if err != nil {
		return entities.Reimbursement{}, err
	}
	u.notify(ctx, updated, "Reembolso em análise", "Seu pedido de reembolso está em análise.", entities.NotificationKindInfo)
	return updated, nil
}

func (u *ReimbursementUseCase) ReturnToPending(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error) {
	if !sess.IsStaff() {
		return entities.Reimbursement{}, ErrForbidden
	}
	current, err := u.loadByID(ctx, id)
	if err != nil {
		return entities.Reimbursement{}, err
	}
	if current.Status != entities.ReimbursementStatusInReview {
		return entities.Reimbursement{}, invalidTransition("reimbursement", current.ID, string(current.Status), "return to pending")
	}

	status := entities.ReimbursementStatusPending
	return u.transitionFrom(ctx, current.ID, "return to pending", []entities.ReimbursementStatus{entities.ReimbursementStatusInReview}, entities.ReimbursementUpdate{
		Status: &status,
	})
}

// Approve validates the value typed by staff against the estimate, commits
// the approval and then attempts the payout. Validation failures never reach
// the store; payout failures never undo the approval.
func (u *ReimbursementUseCase) Approve(ctx context.Context, sess entities.Session, id string, enteredValue string) (ApprovalOutcome, error) {
	log.Printf("[reimbursement][usecase] approve start reimbursement_id=%s staff_id=%s", id, sess.UserID)
	if !sess.IsStaff() {
		return ApprovalOutcome{}, ErrForbidden
	}
	if strings.TrimSpace(enteredValue) == "" {
		return ApprovalOutcome{}, missingField("approved_value")
	}

	current, err := u.loadByID(ctx, id)
	if err != nil {
		return ApprovalOutcome{}, err
	}
	if !current.Status.CanTransitionTo(entities.ReimbursementStatusApproved) {
		return ApprovalOutcome{}, invalidTransition("reimbursement", current.ID, string(current.Status), "approve")
	}

	approvedValue, err := money.Validate(enteredValue, current.EstimatedValue)
	if err != nil {
		log.Printf("[reimbursement][usecase] approve rejected by validator reimbursement_id=%s err=%v", current.ID, err)
		return ApprovalOutcome{}, err
	}

	now := time.Now().UTC()
	status := entities.ReimbursementStatusApproved
	approved, err := u.transition(ctx, current.ID, "approve", entities.ReimbursementUpdate{
		Status:        &status,
		ApprovedValue: &approvedValue,
		ApprovedAt:    &now,
	})
	if err != nil {
		return ApprovalOutcome{}, err
	}

	u.notify(ctx, approved, "Reembolso aprovado",
		fmt.Sprintf("Seu reembolso de R$ %.2f foi aprovado.", approvedValue), entities.NotificationKindSuccess)

	outcome := ApprovalOutcome{Reimbursement: approved}
	outcome.Payout = u.awaitPayout(ctx, approved)
	log.Printf("[reimbursement][usecase] approve done reimbursement_id=%s approved_value=%.2f payout=%s", approved.ID, approvedValue, outcome.Payout.Status)
	return outcome, nil
}

func (u *ReimbursementUseCase) Reject(ctx context.Context, sess entities.Session, id string, reason string) (entities.Reimbursement, error) {
	log.Printf("[reimbursement][usecase] reject start reimbursement_id=%s staff_id=%s", id, sess.UserID)
	if !sess.IsStaff() {
		return entities.Reimbursement{}, ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Reimbursement{}, missingField("reason")
	}
	current, err := u.loadByID(ctx, id)
	if err != nil {
		return entities.Reimbursement{}, err
	}
	if !current.Status.CanTransitionTo(entities.ReimbursementStatusRejected) {
		return entities.Reimbursement{}, invalidTransition("reimbursement", current.ID, string(current.Status), "reject")
	}

	status := entities.ReimbursementStatusRejected
	updated, err := u.transition(ctx, current.ID, "reject", entities.ReimbursementUpdate{
		Status:          &status,
		RejectionReason: &reason,
	})
	if err != nil {
		return entities.Reimbursement{}, err
	}
	u.notify(ctx, updated, "Reembolso recusado",
		fmt.Sprintf("Seu pedido de reembolso foi recusado. Motivo: %s", reason), entities.NotificationKindError)
	return updated, nil
}

// MarkPaid records that the transfer reached the client.
func (u *ReimbursementUseCase) MarkPaid(ctx context.Context, sess entities.Session, id string, notes string) (entities.Reimbursement, error) {
	if !sess.IsStaff() {
		return entities.Reimbursement{}, ErrForbidden
	}
	current, err := u.loadByID(ctx, id)
	if err != nil {
		return entities.Reimbursement{}, err
	}
	if !current.Status.CanTransitionTo(entities.ReimbursementStatusPaid) {
		return entities.Reimbursement{}, invalidTransition("reimbursement", current.ID, string(current.Status), "mark paid")
	}

	now := time.Now().UTC()
	status := entities.ReimbursementStatusPaid
	upd := entities.ReimbursementUpdate{Status: &status, PaidAt: &now}
	if notes = strings.TrimSpace(notes); notes != "" {
		upd.PaymentNotes = &notes
	}
	updated, err := u.transition(ctx, current.ID, "mark paid", upd)
	if err != nil {
		return entities.Reimbursement{}, err
	}
	u.notify(ctx, updated, "Reembolso pago", "O valor do seu reembolso foi transferido.", entities.NotificationKindSuccess)
	return updated, nil
}

// Cancel is a client-only withdrawal of a claim that was not decided yet.
func (u *ReimbursementUseCase) Cancel(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error) {
	current, err := u.loadByID(ctx, id)
	if err != nil {
		return entities.Reimbursement{}, err
	}
	if !sess.Owns(current.ClientID) {
		return entities.Reimbursement{}, ErrForbidden
	}
	if !current.Status.CanTransitionTo(entities.ReimbursementStatusCancelled) {
		return entities.Reimbursement{}, invalidTransition("reimbursement", current.ID, string(current.Status), "cancel")
	}

	now := time.Now().UTC()
	status := entities.ReimbursementStatusCancelled
	return u.transition(ctx, current.ID, "cancel", entities.ReimbursementUpdate{
		Status:      &status,
		CancelledAt: &now,
	})
}

// RetryPayout is the staff re-click after a payout warning. It does not write.
func (u *ReimbursementUseCase) RetryPayout(ctx context.Context, sess entities.Session, id string) (ApprovalOutcome, error) {
	log.Printf("[reimbursement][usecase] retry payout start reimbursement_id=%s staff_id=%s", id, sess.UserID)
	if !sess.IsStaff() {
		return ApprovalOutcome{}, ErrForbidden
	}
	current, err := u.loadByID(ctx, id)
	if err != nil {
		return ApprovalOutcome{}, err
	}
	if current.Status != entities.ReimbursementStatusApproved {
		return ApprovalOutcome{}, invalidTransition("reimbursement", current.ID, string(current.Status), "retry payout")
	}
	return ApprovalOutcome{Reimbursement: current, Payout: u.awaitPayout(ctx, current)}, nil
}

func (u *ReimbursementUseCase) GetByID(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error) {
	r, err := u.loadByID(ctx, id)
	if err != nil {
		return entities.Reimbursement{}, err
	}
	if !sess.IsStaff() && !sess.Owns(r.ClientID) {
		return entities.Reimbursement{}, ErrForbidden
	}
	return r, nil
}

// List mirrors AppointmentUseCase.List.
func (u *ReimbursementUseCase) List(ctx context.Context, sess entities.Session, status string) ([]entities.Reimbursement, error) {
	status = strings.TrimSpace(status)
	filter := entities.ReimbursementStatus(status)
	if status != "" && !filter.Valid() {
		return nil, ErrInvalidStatusFilter
	}

	var items []entities.Reimbursement
	switch {
	case sess.IsClient() && sess.UserID != "":
		all, err := u.repo.ListByClientID(ctx, sess.UserID)
		if err != nil {
			return nil, err
		}
		for _, r := range all {
			if status == "" || r.Status == filter {
				items = append(items, r)
			}
		}
	case sess.IsStaff():
		statuses := []entities.ReimbursementStatus{filter}
		if status == "" {
			statuses = []entities.ReimbursementStatus{
				entities.ReimbursementStatusPending,
				entities.ReimbursementStatusInReview,
				entities.ReimbursementStatusApproved,
				entities.ReimbursementStatusRejected,
				entities.ReimbursementStatusPaid,
				entities.ReimbursementStatusCancelled,
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

// startPayout runs the payout as its own task. The channel is buffered so
// the task never blocks when nobody is waiting anymore.
func (u *ReimbursementUseCase) startPayout(ctx context.Context, r entities.Reimbursement) <-chan entities.PayoutResult {
	done := make(chan entities.PayoutResult, 1)
	req := payoutRequestFor(r)
	detached := context.WithoutCancel(ctx)
	go func() {
		done <- u.reconciler.TriggerPayout(detached, req)
	}()
	return done
}

func (u *ReimbursementUseCase) awaitPayout(ctx context.Context, r entities.Reimbursement) entities.PayoutResult {
	if u.reconciler == nil {
		return entities.PayoutResult{Status: entities.PayoutStatusWarning, Message: ErrPayoutGatewayNotConfigured.Error()}
	}
	select {
	case res := <-u.startPayout(ctx, r):
		if res.Status == entities.PayoutStatusWarning {
			log.Printf("[reimbursement][usecase] payout warning reimbursement_id=%s message=%q", r.ID, res.Message)
		}
		return res
	case <-ctx.Done():
		log.Printf("[reimbursement][usecase] stopped waiting for payout reimbursement_id=%s err=%v", r.ID, ctx.Err())
		return entities.PayoutResult{Status: entities.PayoutStatusWarning, Message: PayoutInFlightWarning}
	}
}

func payoutRequestFor(r entities.Reimbursement) entities.PayoutRequest {
	req := entities.PayoutRequest{
		ReimbursementID: r.ID,
		Amount:          r.EstimatedValue,
		PixKey:          r.PixKey,
		PixKeyType:      r.PixKeyType,
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		ClientCPF:       r.ClientCPF,
		ClientEmail:     r.ClientEmail,
		ClaimType:       r.ClaimType,
	}
	if r.ApprovedValue != nil {
		req.Amount = *r.ApprovedValue
	}
	if r.ApprovedAt != nil {
		req.ApprovedAt = *r.ApprovedAt
	}
	return req
}

func (u *ReimbursementUseCase) loadByID(ctx context.Context, id string) (entities.Reimbursement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Reimbursement{}, ErrInvalidReimbursementID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Reimbursement{}, err
	}
	if r.ID == "" {
		return entities.Reimbursement{}, ErrReimbursementNotFound
	}
	return r, nil
}

func (u *ReimbursementUseCase) transition(ctx context.Context, id, action string, upd entities.ReimbursementUpdate) (entities.Reimbursement, error) {
	return u.transitionFrom(ctx, id, action, entities.ReimbursementSources(*upd.Status), upd)
}

func (u *ReimbursementUseCase) transitionFrom(ctx context.Context, id, action string, expected []entities.ReimbursementStatus, upd entities.ReimbursementUpdate) (entities.Reimbursement, error) {
	updated, err := u.repo.Update(ctx, id, expected, upd)
	if err != nil {
		log.Printf("[reimbursement][usecase] %s write failed reimbursement_id=%s err=%v", action, id, err)
		return entities.Reimbursement{}, err
	}
	if updated.ID == "" {
		log.Printf("[reimbursement][usecase] %s lost status race reimbursement_id=%s", action, id)
		return entities.Reimbursement{}, fmt.Errorf("%w: reimbursement %s changed concurrently, cannot %s", ErrInvalidTransition, id, action)
	}
	return updated, nil
}

func (u *ReimbursementUseCase) notify(ctx context.Context, r entities.Reimbursement, title, message string, kind entities.NotificationKind) {
	if u.notifier == nil {
		return
	}
	u.notifier.Emit(ctx, entities.Notification{
		UserID:  r.ClientID,
		Title:   title,
		Message: message,
		Kind:    kind,
		Link:    "/reimbursements/" + r.ID,
	})
}
