package handlers

import (
	"net/http"
	"testing"

	"beneficios_saude/internal/adapter/http/handlers/mocks"
	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestReferralHandler(t *testing.T) {
	t.Run("submit requires establishment name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewReferralHandler(mocks.NewMockIReferralUseCase(ctrl))

		r := newTestRouter(clientSession)
		r.POST("/v1/referrals", h.SubmitReferral)

		w := doRequest(r, http.MethodPost, "/v1/referrals", `{"city":"Recife"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReferralUseCase(ctrl)
		h := NewReferralHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), clientSession, usecase.SubmitReferralInput{EstablishmentName: "Clinica Boa Vista", City: "Recife", State: "PE"}).
			Return(entities.Referral{ID: "rf-1", Status: entities.ReferralStatusPending}, nil)

		r := newTestRouter(clientSession)
		r.POST("/v1/referrals", h.SubmitReferral)

		w := doRequest(r, http.MethodPost, "/v1/referrals", `{"establishment_name":"Clinica Boa Vista","city":"Recife","state":"PE"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("approve twice is 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReferralUseCase(ctrl)
		h := NewReferralHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), staffSession, "rf-1").Return(entities.Referral{}, usecase.ErrInvalidTransition)

		r := newTestRouter(staffSession)
		r.PATCH("/v1/referrals/:id/approve", h.ApproveReferral)

		w := doRequest(r, http.MethodPatch, "/v1/referrals/rf-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReferralUseCase(ctrl)
		h := NewReferralHandler(uc)

		uc.EXPECT().Reject(gomock.Any(), staffSession, "rf-1", "fora da area").
			Return(entities.Referral{ID: "rf-1", Status: entities.ReferralStatusRejected}, nil)

		r := newTestRouter(staffSession)
		r.PATCH("/v1/referrals/:id/reject", h.RejectReferral)

		w := doRequest(r, http.MethodPatch, "/v1/referrals/rf-1/reject", `{"reason":"fora da area"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReferralUseCase(ctrl)
		h := NewReferralHandler(uc)

		uc.EXPECT().List(gomock.Any(), staffSession, "").Return(nil, nil)

		r := newTestRouter(staffSession)
		r.GET("/v1/referrals", h.ListReferrals)

		w := doRequest(r, http.MethodGet, "/v1/referrals", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with empty list, got %d %s", w.Code, w.Body.String())
		}
	})
}
