package routes

import (
	"beneficios_saude/internal/adapter/http/handlers"
	"beneficios_saude/internal/adapter/http/middleware"
	"beneficios_saude/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions       = "/sessions"
	PathEstablishments = "/establishments"
	PathSpecialties    = "/specialties"
	PathAppointments   = "/appointments"
	PathReimbursements = "/reimbursements"
	PathReferrals      = "/referrals"
	PathNotifications  = "/notifications"
)

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.OpenSession)
		sessions.DELETE("", h.CloseSession)
	}
}

func addReferenceRoutes(rg *gin.RouterGroup, h *handlers.ReferenceHandler) {
	rg.GET(PathEstablishments, h.ListEstablishments)
	rg.GET(PathEstablishments+"/:id", h.GetEstablishment)
	rg.GET(PathSpecialties, h.ListSpecialties)
}

func addAppointmentRoutes(rg *gin.RouterGroup, h *handlers.AppointmentHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", h.RequestAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PATCH("/:id/cancel", h.CancelAppointment)
		appointments.PATCH("/:id/report-payment", h.ReportPayment)
	}

	staff := appointments.Group("", middleware.RequireRole(entities.RoleStaff))
	{
		staff.PATCH("/:id/confirm", h.ConfirmAppointment)
		staff.PATCH("/:id/reject", h.RejectAppointment)
		staff.PATCH("/:id/perform", h.PerformAppointment)
		staff.PATCH("/:id/mark-paid", h.MarkAppointmentPaid)
		staff.POST("/:id/charge", h.RegenerateCharge)
		staff.POST("/:id/verify-payment", h.VerifyPayment)
	}
}

func addReimbursementRoutes(rg *gin.RouterGroup, h *handlers.ReimbursementHandler) {
	reimbursements := rg.Group(PathReimbursements)
	{
		reimbursements.POST("", h.RequestReimbursement)
		reimbursements.GET("", h.ListReimbursements)
		reimbursements.GET("/:id", h.GetReimbursement)
		reimbursements.PATCH("/:id/cancel", h.CancelReimbursement)
	}

	staff := reimbursements.Group("", middleware.RequireRole(entities.RoleStaff))
	{
		staff.PATCH("/:id/review", h.StartReview)
		staff.PATCH("/:id/return", h.ReturnToPending)
		staff.PATCH("/:id/approve", h.ApproveReimbursement)
		staff.PATCH("/:id/reject", h.RejectReimbursement)
		staff.PATCH("/:id/mark-paid", h.MarkReimbursementPaid)
		staff.POST("/:id/payout", h.RetryPayout)
	}
}

func addReferralRoutes(rg *gin.RouterGroup, h *handlers.ReferralHandler) {
	referrals := rg.Group(PathReferrals)
	{
		referrals.POST("", h.SubmitReferral)
		referrals.GET("", h.ListReferrals)
	}

	staff := referrals.Group("", middleware.RequireRole(entities.RoleStaff))
	{
		staff.PATCH("/:id/approve", h.ApproveReferral)
		staff.PATCH("/:id/reject", h.RejectReferral)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.ListNotifications)
		notifications.PATCH("/:id/read", h.MarkNotificationRead)
	}
}
