package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"beneficios_saude/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestRouteRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, handlers.NewSessionHandler(nil))
	addReferenceRoutes(v1, handlers.NewReferenceHandler(nil))
	addAppointmentRoutes(v1, handlers.NewAppointmentHandler(nil))
	addReimbursementRoutes(v1, handlers.NewReimbursementHandler(nil))
	addReferralRoutes(v1, handlers.NewReferralHandler(nil))
	addNotificationRoutes(v1, handlers.NewNotificationHandler(nil))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /v1/ping",
		"POST /v1/sessions",
		"DELETE /v1/sessions",
		"GET /v1/establishments",
		"GET /v1/establishments/:id",
		"GET /v1/specialties",
		"POST /v1/appointments",
		"GET /v1/appointments/:id",
		"PATCH /v1/appointments/:id/confirm",
		"PATCH /v1/appointments/:id/report-payment",
		"POST /v1/appointments/:id/charge",
		"POST /v1/appointments/:id/verify-payment",
		"PATCH /v1/reimbursements/:id/approve",
		"PATCH /v1/reimbursements/:id/return",
		"POST /v1/reimbursements/:id/payout",
		"PATCH /v1/referrals/:id/approve",
		"PATCH /v1/notifications/:id/read",
	}
	for _, key := range expected {
		if !registered[key] {
			t.Fatalf("route %s not registered", key)
		}
	}

	t.Run("staff routes reject requests without a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/ap-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("ping", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
