package interfaces

import (
	"context"

	"beneficios_saude/internal/domain/entities"
)

// INotificationRepository persists in-app notifications.
// MarkRead only touches a notification owned by userID.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (entities.Notification, error)
}
