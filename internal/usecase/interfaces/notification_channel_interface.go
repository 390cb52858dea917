package interfaces

import (
	"context"

	"beneficios_saude/internal/domain/entities"
)

// INotificationPublisher forwards created notifications to the message broker.
type INotificationPublisher interface {
	PublishNotification(ctx context.Context, n entities.Notification) error
}

// IPushSender delivers a notification to the user's devices.
type IPushSender interface {
	SendToUser(ctx context.Context, n entities.Notification) error
}
