package push

import (
	"testing"

	"beneficios_saude/internal/domain/entities"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage(entities.Notification{
		ID:      "n-1",
		UserID:  "cli-1",
		Title:   "Reembolso aprovado",
		Message: "Seu reembolso foi aprovado.",
		Kind:    entities.NotificationKindSuccess,
		Link:    "/reimbursements/rb-1",
	})

	if msg.Topic != "user-cli-1" {
		t.Fatalf("unexpected topic: %s", msg.Topic)
	}
	if msg.Notification == nil || msg.Notification.Title != "Reembolso aprovado" {
		t.Fatalf("unexpected notification: %+v", msg.Notification)
	}
	if msg.Data["link"] != "/reimbursements/rb-1" || msg.Data["kind"] != "success" {
		t.Fatalf("unexpected data: %v", msg.Data)
	}
}
