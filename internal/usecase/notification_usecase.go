package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// deliveryTimeout bounds the broker publish and device push of one
// notification.
const deliveryTimeout = 10 * time.Second

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

// INotificationUseCase is the in-app notification side channel.
//
// Emit is best-effort: the record is persisted in the caller's request, then
// published to the broker and pushed to the user's devices in the
// background. Every failure is logged and swallowed.

type INotificationUseCase interface {
	interfaces.INotificationEmitter
	ListForUser(ctx context.Context, sess entities.Session) ([]entities.Notification, error)
	MarkRead(ctx context.Context, sess entities.Session, id string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo      interfaces.INotificationRepository
	publisher interfaces.INotificationPublisher
	push      interfaces.IPushSender

	deliveries sync.WaitGroup
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NewNotificationUseCase wires the emitter. publisher and push are optional.
func NewNotificationUseCase(repo interfaces.INotificationRepository, publisher interfaces.INotificationPublisher, push interfaces.IPushSender) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, publisher: publisher, push: push}
}

func (u *NotificationUseCase) Emit(ctx context.Context, n entities.Notification) {
	if strings.TrimSpace(n.UserID) == "" {
		log.Printf("[notification][usecase] emit skipped (empty user_id) title=%q", n.Title)
		return
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Kind == "" {
		n.Kind = entities.NotificationKindInfo
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	n.Read = false

	if u.repo != nil {
		if _, err := u.repo.Create(ctx, n); err != nil {
			log.Printf("[notification][usecase] persist failed user_id=%s notification_id=%s err=%v", n.UserID, n.ID, err)
		}
	}
	if u.publisher != nil || u.push != nil {
		u.deliveries.Add(1)
		go u.deliver(context.WithoutCancel(ctx), n)
	}
	log.Printf("[notification][usecase] emitted user_id=%s notification_id=%s kind=%s", n.UserID, n.ID, n.Kind)
}

func (u *NotificationUseCase) deliver(ctx context.Context, n entities.Notification) {
	defer u.deliveries.Done()
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if u.publisher != nil {
		if err := u.publisher.PublishNotification(ctx, n); err != nil {
			log.Printf("[notification][usecase] publish failed user_id=%s notification_id=%s err=%v", n.UserID, n.ID, err)
		}
	}
	if u.push != nil {
		if err := u.push.SendToUser(ctx, n); err != nil {
			log.Printf("[notification][usecase] push failed user_id=%s notification_id=%s err=%v", n.UserID, n.ID, err)
		}
	}
}

func (u *NotificationUseCase) ListForUser(ctx context.Context, sess entities.Session) ([]entities.Notification, error) {
	if sess.UserID == "" {
		return nil, ErrInvalidSession
	}
	return u.repo.ListByUserID(ctx, sess.UserID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, sess entities.Session, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}
	if sess.UserID == "" {
		return entities.Notification{}, ErrInvalidSession
	}

	n, err := u.repo.MarkRead(ctx, id, sess.UserID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
