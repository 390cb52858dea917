package handlers

import (
	"net/http"
	"testing"

	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/adapter/http/handlers/mocks"
	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/domain/money"
	"beneficios_saude/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReimbursementHandler_RequestReimbursement(t *testing.T) {
	t.Run("claim type required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewReimbursementHandler(mocks.NewMockIReimbursementUseCase(ctrl))

		r := newTestRouter(clientSession)
		r.POST("/v1/reimbursements", h.RequestReimbursement)

		w := doRequest(r, http.MethodPost, "/v1/reimbursements", `{"estimated_value":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReimbursementUseCase(ctrl)
		h := NewReimbursementHandler(uc)

		uc.EXPECT().Request(gomock.Any(), clientSession, gomock.Any()).
			Return(entities.Reimbursement{ID: "rb-1", ClientID: "cli-1", Status: entities.ReimbursementStatusPending, EstimatedValue: 237.5}, nil)

		r := newTestRouter(clientSession)
		r.POST("/v1/reimbursements", h.RequestReimbursement)

		w := doRequest(r, http.MethodPost, "/v1/reimbursements", `{"claim_type":"consultation","estimated_value":237.5,"pix_key":"ana@example.com","pix_key_type":"email"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestReimbursementHandler_ApproveReimbursement(t *testing.T) {
	t.Run("typed value forwarded verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReimbursementUseCase(ctrl)
		h := NewReimbursementHandler(uc)

		approved := 237.5
		uc.EXPECT().Approve(gomock.Any(), staffSession, "rb-1", "237,50").
			Return(usecase.ApprovalOutcome{
				Reimbursement: entities.Reimbursement{ID: "rb-1", Status: entities.ReimbursementStatusApproved, ApprovedValue: &approved},
				Payout:        entities.PayoutResult{Status: entities.PayoutStatusWarning, Message: "payout webhook unavailable"},
			}, nil)

		r := newTestRouter(staffSession)
		r.PATCH("/v1/reimbursements/:id/approve", h.ApproveReimbursement)

		w := doRequest(r, http.MethodPatch, "/v1/reimbursements/rb-1/approve", `{"approved_value":"237,50"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.ApprovalResponse
		decodeBody(t, w, &body)
		if body.Reimbursement.Status != "approved" || body.Payout.Status != "warning" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("mismatch is 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReimbursementUseCase(ctrl)
		h := NewReimbursementHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), staffSession, "rb-1", "200").
			Return(usecase.ApprovalOutcome{}, &money.AmountMismatchError{Got: decimal.NewFromInt(200), Expected: decimal.NewFromFloat(237.5)})

		r := newTestRouter(staffSession)
		r.PATCH("/v1/reimbursements/:id/approve", h.ApproveReimbursement)

		w := doRequest(r, http.MethodPatch, "/v1/reimbursements/rb-1/approve", `{"approved_value":200}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewReimbursementHandler(mocks.NewMockIReimbursementUseCase(ctrl))

		r := newTestRouter(staffSession)
		r.PATCH("/v1/reimbursements/:id/approve", h.ApproveReimbursement)

		w := doRequest(r, http.MethodPatch, "/v1/reimbursements/rb-1/approve", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReimbursementHandler_Transitions(t *testing.T) {
	t.Run("start review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReimbursementUseCase(ctrl)
		h := NewReimbursementHandler(uc)

		uc.EXPECT().StartReview(gomock.Any(), staffSession, "rb-1").
			Return(entities.Reimbursement{ID: "rb-1", Status: entities.ReimbursementStatusInReview}, nil)

		r := newTestRouter(staffSession)
		r.PATCH("/v1/reimbursements/:id/review", h.StartReview)

		w := doRequest(r, http.MethodPatch, "/v1/reimbursements/rb-1/review", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mark paid forwards notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReimbursementUseCase(ctrl)
		h := NewReimbursementHandler(uc)

		uc.EXPECT().MarkPaid(gomock.Any(), staffSession, "rb-1", "pago via pix").
			Return(entities.Reimbursement{ID: "rb-1", Status: entities.ReimbursementStatusPaid}, nil)

		r := newTestRouter(staffSession)
		r.PATCH("/v1/reimbursements/:id/mark-paid", h.MarkReimbursementPaid)

		w := doRequest(r, http.MethodPatch, "/v1/reimbursements/rb-1/mark-paid", `{"notes":"pago via pix"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel after approval is 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReimbursementUseCase(ctrl)
		h := NewReimbursementHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), clientSession, "rb-1").Return(entities.Reimbursement{}, usecase.ErrInvalidTransition)

		r := newTestRouter(clientSession)
		r.PATCH("/v1/reimbursements/:id/cancel", h.CancelReimbursement)

		w := doRequest(r, http.MethodPatch, "/v1/reimbursements/rb-1/cancel", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("retry payout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReimbursementUseCase(ctrl)
		h := NewReimbursementHandler(uc)

		uc.EXPECT().RetryPayout(gomock.Any(), staffSession, "rb-1").
			Return(usecase.ApprovalOutcome{
				Reimbursement: entities.Reimbursement{ID: "rb-1", Status: entities.ReimbursementStatusApproved},
				Payout:        entities.PayoutResult{Status: entities.PayoutStatusOK},
			}, nil)

		r := newTestRouter(staffSession)
		r.POST("/v1/reimbursements/:id/payout", h.RetryPayout)

		w := doRequest(r, http.MethodPost, "/v1/reimbursements/rb-1/payout", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.ApprovalResponse
		decodeBody(t, w, &body)
		if body.Payout.Status != "ok" {
			t.Fatalf("unexpected payout: %+v", body.Payout)
		}
	})
}
