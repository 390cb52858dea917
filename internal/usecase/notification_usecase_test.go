package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"beneficios_saude/internal/domain/entities"
	mock_interfaces "beneficios_saude/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_Emit(t *testing.T) {
	t.Run("persists publishes and pushes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		publisher := mock_interfaces.NewMockINotificationPublisher(ctrl)
		push := mock_interfaces.NewMockIPushSender(ctrl)
		uc := NewNotificationUseCase(repo, publisher, push)

		var persisted entities.Notification
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Notification) (entities.Notification, error) {
			persisted = n
			return n, nil
		})
		publisher.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(nil)
		push.EXPECT().SendToUser(gomock.Any(), gomock.Any()).Return(nil)

		uc.Emit(context.Background(), entities.Notification{UserID: "cli-1", Title: "Oi", Message: "msg"})
		uc.deliveries.Wait()

		if persisted.ID == "" || persisted.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamp assigned, got %+v", persisted)
		}
		if persisted.Kind != entities.NotificationKindInfo || persisted.Read {
			t.Fatalf("expected unread info notification, got %+v", persisted)
		}
	})

	t.Run("failures are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		publisher := mock_interfaces.NewMockINotificationPublisher(ctrl)
		push := mock_interfaces.NewMockIPushSender(ctrl)
		uc := NewNotificationUseCase(repo, publisher, push)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("db"))
		publisher.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(errors.New("amqp"))
		push.EXPECT().SendToUser(gomock.Any(), gomock.Any()).Return(errors.New("fcm"))

		uc.Emit(context.Background(), entities.Notification{UserID: "cli-1", Title: "Oi"})
		uc.deliveries.Wait()
	})

	t.Run("slow broker does not block the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		publisher := mock_interfaces.NewMockINotificationPublisher(ctrl)
		uc := NewNotificationUseCase(nil, publisher, nil)

		release := make(chan struct{})
		published := make(chan struct{})
		publisher.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ entities.Notification) error {
			defer close(published)
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("expected delivery deadline")
			}
			<-release
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		returned := make(chan struct{})
		go func() {
			uc.Emit(ctx, entities.Notification{UserID: "cli-1", Title: "Oi"})
			close(returned)
		}()

		select {
		case <-returned:
		case <-time.After(time.Second):
			t.Fatalf("Emit blocked on the publisher")
		}
		cancel()
		close(release)
		<-published
		uc.deliveries.Wait()
	})

	t.Run("empty user is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil, nil)

		uc.Emit(context.Background(), entities.Notification{Title: "Oi"})
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, nil)
		_, err := uc.MarkRead(context.Background(), clientSession(), " ")
		if !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("other user's notification is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil, nil)

		repo.EXPECT().MarkRead(gomock.Any(), "n-1", "cli-1").Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), clientSession(), "n-1")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("marks read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil, nil)

		repo.EXPECT().MarkRead(gomock.Any(), "n-1", "cli-1").Return(entities.Notification{ID: "n-1", UserID: "cli-1", Read: true}, nil)

		got, err := uc.MarkRead(context.Background(), clientSession(), "n-1")
		if err != nil || !got.Read {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("list requires a user", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, nil)
		_, err := uc.ListForUser(context.Background(), entities.Session{})
		if !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})
}
