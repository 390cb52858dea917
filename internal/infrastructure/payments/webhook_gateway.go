package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"
)

var (
	ErrMissingWebhookURL     = errors.New("missing PAYMENT_WEBHOOK_URL")
	ErrWebhookStatus         = errors.New("payment webhook returned non-2xx status")
	ErrMalformedWebhookReply = errors.New("payment webhook returned a malformed response")
	ErrPayoutRefused         = errors.New("payment webhook refused the payout")
)

const maxWebhookResponseBytes = 1 << 20

// WebhookGateway talks to the externally hosted payment webhook. The three
// operations share one URL and are told apart by payload shape.
type WebhookGateway struct {
	url      string
	client   *http.Client
	mockMode bool
}

var (
	_ interfaces.IChargeGateway = (*WebhookGateway)(nil)
	_ interfaces.IPayoutGateway = (*WebhookGateway)(nil)
)

// NewWebhookGateway builds the gateway. A zero timeout keeps the provider
// default, so a call only ends when the webhook answers.
func NewWebhookGateway(url string, timeout time.Duration) (*WebhookGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][webhook] mock mode enabled")
		return &WebhookGateway{mockMode: true}, nil
	}
	url = strings.TrimSpace(url)
	if url == "" {
		log.Printf("[payment][webhook] missing PAYMENT_WEBHOOK_URL")
		return nil, ErrMissingWebhookURL
	}
	log.Printf("[payment][webhook] client initialized timeout=%s", timeout)
	return &WebhookGateway{url: url, client: &http.Client{Timeout: timeout}}, nil
}

type chargePayload struct {
	Valor         float64 `json:"valor"`
	Descricao     string  `json:"descricao"`
	PaymentID     string  `json:"paymentId"`
	AgendamentoID string  `json:"agendamentoId"`
}

type chargeReply struct {
	EncodedImage string `json:"encodedImage"`
	Payload      string `json:"payload"`
	PaymentLink  string `json:"paymentLink,omitempty"`
}

type verifyPayload struct {
	AgendamentoID string  `json:"agendamentoId"`
	Valor         float64 `json:"valor"`
	PacienteID    string  `json:"pacienteId"`
}

type payoutPayload struct {
	ReembolsoID   string  `json:"reembolsoId"`
	Valor         float64 `json:"valor"`
	ChavePix      string  `json:"chavePix"`
	TipoPix       string  `json:"tipoPix"`
	ClienteID     string  `json:"clienteId"`
	ClienteNome   string  `json:"clienteNome"`
	ClienteCPF    string  `json:"clienteCPF"`
	ClienteEmail  string  `json:"clienteEmail"`
	Tipo          string  `json:"tipo"`
	DataAprovacao string  `json:"dataAprovacao"`
}

type okReply struct {
	OK *bool `json:"ok"`
}

func (g *WebhookGateway) CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.PixArtifact, error) {
	if g.mockMode {
		log.Printf("[payment][webhook] mock charge appointment_id=%s amount=%.2f", req.AppointmentID, req.Amount)
		return entities.PixArtifact{
			QRImage:          "bW9jay1xcg==",
			CopyPastePayload: fmt.Sprintf("00020126MOCK%s5204000053039865802BR", req.PaymentID),
		}, nil
	}

	log.Printf("[payment][webhook] charge start appointment_id=%s payment_id=%s amount=%.2f", req.AppointmentID, req.PaymentID, req.Amount)
	body, err := g.post(ctx, chargePayload{
		Valor:         req.Amount,
		Descricao:     req.Description,
		PaymentID:     req.PaymentID,
		AgendamentoID: req.AppointmentID,
	})
	if err != nil {
		log.Printf("[payment][webhook] charge failed appointment_id=%s err=%v", req.AppointmentID, err)
		return entities.PixArtifact{}, err
	}

	reply, err := decodeChargeReply(body)
	if err != nil {
		log.Printf("[payment][webhook] charge reply invalid appointment_id=%s err=%v", req.AppointmentID, err)
		return entities.PixArtifact{}, err
	}
	log.Printf("[payment][webhook] charge success appointment_id=%s has_qr=%t has_payload=%t", req.AppointmentID, reply.EncodedImage != "", reply.Payload != "")

	return entities.PixArtifact{
		QRImage:          reply.EncodedImage,
		CopyPastePayload: reply.Payload,
		PaymentLink:      reply.PaymentLink,
	}, nil
}

func (g *WebhookGateway) VerifyCharge(ctx context.Context, req entities.ChargeVerification) (bool, error) {
	if g.mockMode {
		log.Printf("[payment][webhook] mock verify appointment_id=%s", req.AppointmentID)
		return true, nil
	}

	log.Printf("[payment][webhook] verify start appointment_id=%s amount=%.2f", req.AppointmentID, req.Amount)
	body, err := g.post(ctx, verifyPayload{
		AgendamentoID: req.AppointmentID,
		Valor:         req.Amount,
		PacienteID:    req.ClientID,
	})
	if err != nil {
		log.Printf("[payment][webhook] verify failed appointment_id=%s err=%v", req.AppointmentID, err)
		return false, err
	}

	ok, err := decodeOK(body)
	if err != nil {
		log.Printf("[payment][webhook] verify reply invalid appointment_id=%s err=%v", req.AppointmentID, err)
		return false, err
	}
	log.Printf("[payment][webhook] verify done appointment_id=%s ok=%t", req.AppointmentID, ok)
	return ok, nil
}

func (g *WebhookGateway) RequestPayout(ctx context.Context, req entities.PayoutRequest) error {
	if g.mockMode {
		log.Printf("[payment][webhook] mock payout reimbursement_id=%s amount=%.2f", req.ReimbursementID, req.Amount)
		return nil
	}

	log.Printf("[payment][webhook] payout start reimbursement_id=%s amount=%.2f", req.ReimbursementID, req.Amount)
	body, err := g.post(ctx, payoutPayload{
		ReembolsoID:   req.ReimbursementID,
		Valor:         req.Amount,
		ChavePix:      req.PixKey,
		TipoPix:       string(req.PixKeyType),
		ClienteID:     req.ClientID,
		ClienteNome:   req.ClientName,
		ClienteCPF:    req.ClientCPF,
		ClienteEmail:  req.ClientEmail,
		Tipo:          string(req.ClaimType),
		DataAprovacao: req.ApprovedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("[payment][webhook] payout failed reimbursement_id=%s err=%v", req.ReimbursementID, err)
		return err
	}

	ok, err := decodeOK(body)
	if err != nil {
		log.Printf("[payment][webhook] payout reply invalid reimbursement_id=%s err=%v", req.ReimbursementID, err)
		return err
	}
	if !ok {
		log.Printf("[payment][webhook] payout refused reimbursement_id=%s", req.ReimbursementID)
		return ErrPayoutRefused
	}
	log.Printf("[payment][webhook] payout success reimbursement_id=%s", req.ReimbursementID)
	return nil
}

func (g *WebhookGateway) post(ctx context.Context, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWebhookResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrWebhookStatus, resp.StatusCode, truncate(string(body), 200))
	}
	return body, nil
}

// decodeChargeReply accepts either an object or a single-element array
// wrapping it.
func decodeChargeReply(body []byte) (chargeReply, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return chargeReply{}, ErrMalformedWebhookReply
	}

	var reply chargeReply
	if trimmed[0] == '[' {
		var wrapped []chargeReply
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return chargeReply{}, fmt.Errorf("%w: %v", ErrMalformedWebhookReply, err)
		}
		if len(wrapped) == 0 {
			return chargeReply{}, ErrMalformedWebhookReply
		}
		reply = wrapped[0]
	} else if err := json.Unmarshal(trimmed, &reply); err != nil {
		return chargeReply{}, fmt.Errorf("%w: %v", ErrMalformedWebhookReply, err)
	}
	return reply, nil
}

func decodeOK(body []byte) (bool, error) {
	var reply okReply
	if err := json.Unmarshal(bytes.TrimSpace(body), &reply); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedWebhookReply, err)
	}
	if reply.OK == nil {
		return false, fmt.Errorf("%w: missing ok", ErrMalformedWebhookReply)
	}
	return *reply.OK, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
