package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrChargeGatewayNotConfigured = errors.New("charge gateway not configured")
	ErrPayoutGatewayNotConfigured = errors.New("payout gateway not configured")
	ErrEmptyChargeArtifact        = errors.New("charge provider returned no pix artifact")
	ErrInvalidAmount              = errors.New("invalid amount")
)

// IPaymentReconciliationUseCase talks to the external charge/payout provider.
//
// Every call is a single attempt; retries are staff re-clicks. Provider calls
// run on a context detached from the caller's cancellation, so a started
// webhook call is never aborted, only ignored.

type IPaymentReconciliationUseCase interface {
	interfaces.IPaymentReconciler
}

type PaymentReconciliationUseCase struct {
	appointments interfaces.IAppointmentRepository
	payments     interfaces.IPaymentRepository
	charges      interfaces.IChargeGateway
	payouts      interfaces.IPayoutGateway
}

var _ IPaymentReconciliationUseCase = (*PaymentReconciliationUseCase)(nil)

func NewPaymentReconciliationUseCase(appointments interfaces.IAppointmentRepository, payments interfaces.IPaymentRepository, charges interfaces.IChargeGateway, payouts interfaces.IPayoutGateway) *PaymentReconciliationUseCase {
	return &PaymentReconciliationUseCase{appointments: appointments, payments: payments, charges: charges, payouts: payouts}
}

// GenerateCharge asks the provider for a PIX charge and attaches the artifact
// to the appointment and its payment record.
func (u *PaymentReconciliationUseCase) GenerateCharge(ctx context.Context, appointmentID string, amount float64) (entities.PixArtifact, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	log.Printf("[payment][reconciliation] generate-charge start appointment_id=%s amount=%.2f", appointmentID, amount)
	if appointmentID == "" {
		return entities.PixArtifact{}, ErrInvalidAppointmentID
	}
	if amount <= 0 {
		return entities.PixArtifact{}, ErrInvalidAmount
	}
	if u.charges == nil {
		log.Printf("[payment][reconciliation] charge gateway not configured appointment_id=%s", appointmentID)
		return entities.PixArtifact{}, externalService("generate_charge", ErrChargeGatewayNotConfigured)
	}

	appt, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.PixArtifact{}, err
	}
	if appt.ID == "" {
		return entities.PixArtifact{}, ErrAppointmentNotFound
	}

	payment, err := u.ensurePayment(ctx, appointmentID, amount)
	if err != nil {
		log.Printf("[payment][reconciliation] payment record failed appointment_id=%s err=%v", appointmentID, err)
		return entities.PixArtifact{}, err
	}

	artifact, err := u.charges.CreateCharge(context.WithoutCancel(ctx), entities.ChargeRequest{
		PaymentID:     payment.ID,
		AppointmentID: appointmentID,
		Amount:        amount,
		Description:   fmt.Sprintf("Coparticipação agendamento %s", appointmentID),
		PayerEmail:    appt.ClientEmail,
	})
	if err != nil {
		log.Printf("[payment][reconciliation] provider charge failed appointment_id=%s payment_id=%s err=%v", appointmentID, payment.ID, err)
		return entities.PixArtifact{}, externalService("generate_charge", err)
	}
	if artifact.Empty() {
		log.Printf("[payment][reconciliation] provider returned empty artifact appointment_id=%s payment_id=%s", appointmentID, payment.ID)
		return entities.PixArtifact{}, externalService("generate_charge", ErrEmptyChargeArtifact)
	}

	upd := entities.AppointmentUpdate{
		PixPayload: &artifact.CopyPastePayload,
		PixQRImage: &artifact.QRImage,
	}
	if artifact.PaymentLink != "" {
		upd.PaymentLink = &artifact.PaymentLink
	}
	updated, err := u.appointments.Update(ctx, appointmentID, payableAppointmentStatuses, upd)
	if err != nil {
		log.Printf("[payment][reconciliation] persisting artifact failed appointment_id=%s err=%v", appointmentID, err)
		return artifact, err
	}
	if updated.ID == "" {
		log.Printf("[payment][reconciliation] appointment no longer payable appointment_id=%s", appointmentID)
		return entities.PixArtifact{}, fmt.Errorf("%w: appointment %s is not payable", ErrInvalidTransition, appointmentID)
	}

	pupd := entities.PaymentUpdate{}
	if artifact.PaymentLink != "" {
		pupd.ProviderLink = &artifact.PaymentLink
	}
	if artifact.ProviderPaymentID != "" {
		pupd.ProviderPaymentID = &artifact.ProviderPaymentID
	}
	if pupd.ProviderLink != nil || pupd.ProviderPaymentID != nil {
		if _, err := u.payments.Update(ctx, payment.ID, pupd); err != nil {
			log.Printf("[payment][reconciliation] persisting provider reference failed payment_id=%s err=%v", payment.ID, err)
			return artifact, err
		}
	}

	log.Printf("[payment][reconciliation] generate-charge success appointment_id=%s payment_id=%s", appointmentID, payment.ID)
	return artifact, nil
}

// VerifyCharge asks the provider whether the coparticipation was paid. It
// never changes the appointment's paid flag.
func (u *PaymentReconciliationUseCase) VerifyCharge(ctx context.Context, appointmentID string, amount float64, clientID string) (bool, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	log.Printf("[payment][reconciliation] verify-charge start appointment_id=%s amount=%.2f client_id=%s", appointmentID, amount, clientID)
	if appointmentID == "" {
		return false, ErrInvalidAppointmentID
	}
	if u.charges == nil {
		return false, externalService("verify_charge", ErrChargeGatewayNotConfigured)
	}

	providerPaymentID := ""
	if u.payments != nil {
		p, err := u.payments.GetByAppointmentID(ctx, appointmentID)
		if err != nil {
			return false, err
		}
		providerPaymentID = p.ProviderPaymentID
	}

	ok, err := u.charges.VerifyCharge(context.WithoutCancel(ctx), entities.ChargeVerification{
		AppointmentID:     appointmentID,
		ClientID:          clientID,
		Amount:            amount,
		ProviderPaymentID: providerPaymentID,
	})
	if err != nil {
		log.Printf("[payment][reconciliation] provider verify failed appointment_id=%s err=%v", appointmentID, err)
		return false, externalService("verify_charge", err)
	}
	log.Printf("[payment][reconciliation] verify-charge done appointment_id=%s confirmed=%t", appointmentID, ok)
	return ok, nil
}

// TriggerPayout requests the transfer of an approved reimbursement. Failures
// come back as a warning result, never as an error: the approval is already
// in the ledger.
func (u *PaymentReconciliationUseCase) TriggerPayout(ctx context.Context, req entities.PayoutRequest) entities.PayoutResult {
	log.Printf("[payment][reconciliation] payout start reimbursement_id=%s amount=%.2f pix_key_type=%s", req.ReimbursementID, req.Amount, req.PixKeyType)
	if strings.TrimSpace(req.ReimbursementID) == "" || req.Amount <= 0 || strings.TrimSpace(req.PixKey) == "" {
		log.Printf("[payment][reconciliation] payout request incomplete reimbursement_id=%s", req.ReimbursementID)
		return entities.PayoutResult{Status: entities.PayoutStatusWarning, Message: "payout request incomplete; verify the reimbursement data and retry"}
	}
	if u.payouts == nil {
		log.Printf("[payment][reconciliation] payout gateway not configured reimbursement_id=%s", req.ReimbursementID)
		return entities.PayoutResult{Status: entities.PayoutStatusWarning, Message: ErrPayoutGatewayNotConfigured.Error()}
	}
	if req.ApprovedAt.IsZero() {
		req.ApprovedAt = time.Now().UTC()
	}

	if err := u.payouts.RequestPayout(context.WithoutCancel(ctx), req); err != nil {
		log.Printf("[payment][reconciliation] payout failed reimbursement_id=%s err=%v", req.ReimbursementID, err)
		return entities.PayoutResult{
			Status:  entities.PayoutStatusWarning,
			Message: fmt.Sprintf("approved in the ledger; payout must be verified or retried manually: %v", err),
		}
	}
	log.Printf("[payment][reconciliation] payout success reimbursement_id=%s", req.ReimbursementID)
	return entities.PayoutResult{Status: entities.PayoutStatusOK}
}

func (u *PaymentReconciliationUseCase) ensurePayment(ctx context.Context, appointmentID string, amount float64) (entities.Payment, error) {
	existing, err := u.payments.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}
	return u.payments.Create(ctx, entities.Payment{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		Amount:        amount,
		Status:        entities.PaymentStatusPending,
		CreatedAt:     time.Now().UTC(),
	})
}
