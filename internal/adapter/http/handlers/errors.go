package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "beneficios_saude/internal/adapter/http/dto/request"
	"beneficios_saude/internal/adapter/http/middleware"
	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/domain/money"
	"beneficios_saude/internal/usecase"
	"beneficios_saude/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errNoSession      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid session", http.StatusUnauthorized)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Action not allowed in the current status", err, http.StatusConflict)
	case errors.Is(err, money.ErrAmountMismatch):
		return pkg.NewDomainError("AMOUNT_MISMATCH", "Entered value does not match the expected value", err, http.StatusUnprocessableEntity)
	case errors.Is(err, money.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid monetary value", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEstablishmentUnavailable), errors.Is(err, usecase.ErrSpecialtyUnavailable):
		return pkg.NewDomainError("VALIDATION_ERROR", "Referenced record is unavailable", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingField):
		return pkg.NewDomainError("MISSING_FIELD", "Missing required field", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, usecase.ErrInvalidReimbursementID),
		errors.Is(err, usecase.ErrInvalidReferralID),
		errors.Is(err, usecase.ErrInvalidEstablishmentID),
		errors.Is(err, usecase.ErrInvalidNotificationID),
		errors.Is(err, usecase.ErrInvalidStatusFilter),
		errors.Is(err, usecase.ErrInvalidClaimType),
		errors.Is(err, usecase.ErrInvalidPixKeyType),
		errors.Is(err, usecase.ErrInvalidEstimatedValue),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReimbursementNotFound):
		return pkg.NewDomainErrorSimple("REIMBURSEMENT_NOT_FOUND", "Reimbursement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReferralNotFound):
		return pkg.NewDomainErrorSimple("REFERRAL_NOT_FOUND", "Referral not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstablishmentNotFound):
		return pkg.NewDomainErrorSimple("ESTABLISHMENT_NOT_FOUND", "Establishment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this session", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidSession), errors.Is(err, usecase.ErrInvalidIdentityToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid session or identity token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionStore):
		return pkg.NewDomainError("SESSION_STORE_UNAVAILABLE", "Session store unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrExternalService):
		return pkg.NewDomainError("EXTERNAL_SERVICE_ERROR", "Payment provider unavailable, retry later", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] request failed path=%s err=%v", area, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

// currentSession writes 401 and returns false when no session was resolved.
func currentSession(c *gin.Context) (entities.Session, bool) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return entities.Session{}, false
	}
	return sess, true
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		respondInvalidPayload(c)
		return false
	}
	return true
}
