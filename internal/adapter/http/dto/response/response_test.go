package response

import (
	"testing"
	"time"

	"beneficios_saude/internal/domain/entities"
)

func TestFromAppointment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("no artifact means no pix block", func(t *testing.T) {
		res := FromAppointmentOutcome(entities.Appointment{ID: "ap-1", Status: entities.AppointmentStatusPending, CreatedAt: now}, "payment artifact unavailable")
		if res.Pix != nil {
			t.Fatalf("expected nil pix, got %+v", res.Pix)
		}
		if res.Warning != "payment artifact unavailable" || res.Status != "pending" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("artifact is exposed", func(t *testing.T) {
		res := FromAppointment(entities.Appointment{ID: "ap-1", PixPayload: "000201", PixQRImage: "aW1n"})
		if res.Pix == nil || res.Pix.Payload != "000201" || res.Pix.QRImage != "aW1n" {
			t.Fatalf("unexpected pix: %+v", res.Pix)
		}
		if res.Warning != "" {
			t.Fatalf("unexpected warning: %s", res.Warning)
		}
	})
}

func TestFromApproval(t *testing.T) {
	approved := 237.5
	res := FromApproval(
		entities.Reimbursement{ID: "rb-1", Status: entities.ReimbursementStatusApproved, ApprovedValue: &approved},
		entities.PayoutResult{Status: entities.PayoutStatusWarning, Message: "retry manually"},
	)
	if res.Reimbursement.Status != "approved" || res.Reimbursement.ApprovedValue == nil || *res.Reimbursement.ApprovedValue != 237.5 {
		t.Fatalf("unexpected reimbursement: %+v", res.Reimbursement)
	}
	if res.Payout.Status != "warning" || res.Payout.Message != "retry manually" {
		t.Fatalf("unexpected payout: %+v", res.Payout)
	}
}

func TestFromSpecialties(t *testing.T) {
	out := FromSpecialties([]entities.Specialty{{ID: "sp-1", Name: "Cardiologia", CoparticipationValue: 40, Active: true}})
	if len(out) != 1 || out[0].Name != "Cardiologia" || out[0].CoparticipationValue != 40 {
		t.Fatalf("unexpected specialties: %+v", out)
	}
	if empty := FromNotifications(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
