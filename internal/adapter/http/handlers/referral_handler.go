package handlers

import (
	"net/http"

	request "beneficios_saude/internal/adapter/http/dto/request"
	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	usecase usecase.IReferralUseCase
}

func NewReferralHandler(uc usecase.IReferralUseCase) *ReferralHandler {
	return &ReferralHandler{usecase: uc}
}

func (h *ReferralHandler) SubmitReferral(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.ReferralRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	r, err := h.usecase.Submit(c.Request.Context(), sess, usecase.SubmitReferralInput{
		EstablishmentName: payload.EstablishmentName,
		Address:           payload.Address,
		City:              payload.City,
		State:             payload.State,
		Phone:             payload.Phone,
		Notes:             payload.Notes,
	})
	if err != nil {
		respondError(c, "referral", err)
		return
	}

	c.JSON(http.StatusCreated, response.FromReferral(r))
}

func (h *ReferralHandler) ListReferrals(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	items, err := h.usecase.List(c.Request.Context(), sess, c.Query("status"))
	if err != nil {
		respondError(c, "referral", err)
		return
	}

	c.JSON(http.StatusOK, response.FromReferrals(items))
}

func (h *ReferralHandler) ApproveReferral(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	r, err := h.usecase.Approve(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, "referral", err)
		return
	}

	c.JSON(http.StatusOK, response.FromReferral(r))
}

func (h *ReferralHandler) RejectReferral(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.ReasonRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	r, err := h.usecase.Reject(c.Request.Context(), sess, c.Param("id"), payload.ResolveReason())
	if err != nil {
		respondError(c, "referral", err)
		return
	}

	c.JSON(http.StatusOK, response.FromReferral(r))
}
