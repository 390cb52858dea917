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

// ReimbursementHandler exposes the reimbursement state machine.

type ReimbursementHandler struct {
	usecase usecase.IReimbursementUseCase
}

func NewReimbursementHandler(uc usecase.IReimbursementUseCase) *ReimbursementHandler {
	return &ReimbursementHandler{usecase: uc}
}

func (h *ReimbursementHandler) RequestReimbursement(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.ReimbursementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	expenseDate, err := payload.ResolveExpenseDate()
	if err != nil {
		respondError(c, "reimbursement", err)
		return
	}

	r, err := h.usecase.Request(c.Request.Context(), sess, usecase.RequestReimbursementInput{
		ClaimType:      payload.ClaimType,
		Description:    payload.Description,
		ExpenseDate:    expenseDate,
		EstimatedValue: payload.EstimatedValue,
		PixKey:         payload.PixKey,
		PixKeyType:     payload.PixKeyType,
		Documents:      payload.Documents,
	})
	if err != nil {
		respondError(c, "reimbursement", err)
		return
	}

	c.JSON(http.StatusCreated, response.FromReimbursement(r))
}

func (h *ReimbursementHandler) ListReimbursements(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	items, err := h.usecase.List(c.Request.Context(), sess, c.Query("status"))
	if err != nil {
		respondError(c, "reimbursement", err)
		return
	}

	c.JSON(http.StatusOK, response.FromReimbursements(items))
}

func (h *ReimbursementHandler) GetReimbursement(c *gin.Context) {
	h.run(c, h.usecase.GetByID)
}

func (h *ReimbursementHandler) StartReview(c *gin.Context) {
	h.run(c, h.usecase.StartReview)
}

func (h *ReimbursementHandler) ReturnToPending(c *gin.Context) {
	h.run(c, h.usecase.ReturnToPending)
}

func (h *ReimbursementHandler) CancelReimbursement(c *gin.Context) {
	h.run(c, h.usecase.Cancel)
}

// ApproveReimbursement validates the typed value against the estimate and,
// once the approval is committed, attempts the PIX payout. A payout failure
// is reported in the payout field with status 200.
func (h *ReimbursementHandler) ApproveReimbursement(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.ApproveReimbursementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	id := c.Param("id")
	log.Printf("[reimbursement][handler] approve start id=%s user_id=%s", id, sess.UserID)
	out, err := h.usecase.Approve(c.Request.Context(), sess, id, payload.ResolveApprovedValue())
	if err != nil {
		respondError(c, "reimbursement", err)
		return
	}

	c.JSON(http.StatusOK, response.FromApproval(out.Reimbursement, out.Payout))
}

func (h *ReimbursementHandler) RetryPayout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	out, err := h.usecase.RetryPayout(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, "reimbursement", err)
		return
	}

	c.JSON(http.StatusOK, response.FromApproval(out.Reimbursement, out.Payout))
}

func (h *ReimbursementHandler) RejectReimbursement(c *gin.Context) {
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
		respondError(c, "reimbursement", err)
		return
	}

	c.JSON(http.StatusOK, response.FromReimbursement(r))
}

func (h *ReimbursementHandler) MarkReimbursementPaid(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.MarkReimbursementPaidRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	r, err := h.usecase.MarkPaid(c.Request.Context(), sess, c.Param("id"), payload.Notes)
	if err != nil {
		respondError(c, "reimbursement", err)
		return
	}

	c.JSON(http.StatusOK, response.FromReimbursement(r))
}

func (h *ReimbursementHandler) run(
	c *gin.Context,
	action func(ctx context.Context, sess entities.Session, id string) (entities.Reimbursement, error),
) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	r, err := action(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, "reimbursement", err)
		return
	}

	c.JSON(http.StatusOK, response.FromReimbursement(r))
}
