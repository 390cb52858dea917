package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMissingProviderPaymentID = errors.New("charge has no provider payment id")

// MercadoPagoGateway generates and verifies PIX coparticipation charges
// through Mercado Pago. Payouts are not supported by this provider.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IChargeGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// mpPixResponse is the subset of the Mercado Pago payment response the
// gateway reads.
type mpPixResponse struct {
	ID                 int64   `json:"id"`
	Status             string  `json:"status"`
	TransactionAmount  float64 `json:"transaction_amount"`
	ExternalReference  string  `json:"external_reference"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.PixArtifact, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create success appointment_id=%s provider_payment_id=%s", req.AppointmentID, id)
		return entities.PixArtifact{
			QRImage:           "bW9jay1xcg==",
			CopyPastePayload:  "00020126MOCK" + id,
			ProviderPaymentID: id,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PixArtifact{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start appointment_id=%s amount=%.2f", req.AppointmentID, req.Amount)

	mpReq, err := pixPaymentRequest(req)
	if err != nil {
		log.Printf("[payment][gateway] request build failed err=%v", err)
		return entities.PixArtifact{}, err
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed appointment_id=%s err=%v", req.AppointmentID, err)
		return entities.PixArtifact{}, err
	}

	pix, err := readPixResponse(resp)
	if err != nil {
		log.Printf("[payment][gateway] response decode failed err=%v", err)
		return entities.PixArtifact{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", pix.ID, pix.Status)

	td := pix.PointOfInteraction.TransactionData
	return entities.PixArtifact{
		QRImage:           td.QRCodeBase64,
		CopyPastePayload:  td.QRCode,
		PaymentLink:       td.TicketURL,
		ProviderPaymentID: strconv.FormatInt(pix.ID, 10),
	}, nil
}

// VerifyCharge reports whether the Mercado Pago payment is approved for the
// expected amount.
func (g *MercadoPagoGateway) VerifyCharge(ctx context.Context, req entities.ChargeVerification) (bool, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock verify appointment_id=%s", req.AppointmentID)
		return true, nil
	}
	if g == nil || g.client == nil {
		return false, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(req.ProviderPaymentID))
	if err != nil {
		log.Printf("[payment][gateway] verify without provider id appointment_id=%s", req.AppointmentID)
		return false, ErrMissingProviderPaymentID
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return false, err
	}
	pix, err := readPixResponse(resp)
	if err != nil {
		return false, err
	}

	ok := pix.Status == "approved" && math.Abs(pix.TransactionAmount-req.Amount) < 0.005
	log.Printf("[payment][gateway] verify done provider_payment_id=%d provider_status=%s ok=%t", id, pix.Status, ok)
	return ok, nil
}

func pixPaymentRequest(req entities.ChargeRequest) (payment.Request, error) {
	raw, err := json.Marshal(map[string]any{
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"payment_method_id":  "pix",
		"external_reference": req.AppointmentID,
		"payer":              map[string]any{"email": req.PayerEmail},
	})
	if err != nil {
		return payment.Request{}, err
	}

	var out payment.Request
	if err := json.Unmarshal(raw, &out); err != nil {
		return payment.Request{}, err
	}
	return out, nil
}

func readPixResponse(resp *payment.Response) (mpPixResponse, error) {
	if resp == nil {
		return mpPixResponse{}, fmt.Errorf("empty mercado pago response")
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return mpPixResponse{}, err
	}
	var out mpPixResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return mpPixResponse{}, err
	}
	return out, nil
}
