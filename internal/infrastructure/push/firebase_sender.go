package push

import (
	"context"
	"fmt"
	"log"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FirebaseSender pushes notifications to the FCM topic of the recipient
// (user-<id>); the mobile app subscribes to its own topic on login.
type FirebaseSender struct {
	client *messaging.Client
}

var _ interfaces.IPushSender = (*FirebaseSender)(nil)

func NewFirebaseSender(ctx context.Context, credentialsPath string) (*FirebaseSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Messaging client: %w", err)
	}
	log.Printf("[notification][fcm] firebase messaging initialized")

	return &FirebaseSender{client: client}, nil
}

func (s *FirebaseSender) SendToUser(ctx context.Context, n entities.Notification) error {
	id, err := s.client.Send(ctx, buildMessage(n))
	if err != nil {
		log.Printf("[notification][fcm] send failed user_id=%s notification_id=%s err=%v", n.UserID, n.ID, err)
		return err
	}
	log.Printf("[notification][fcm] sent user_id=%s notification_id=%s message_id=%s", n.UserID, n.ID, id)
	return nil
}

func UserTopic(userID string) string {
	return "user-" + userID
}

func buildMessage(n entities.Notification) *messaging.Message {
	return &messaging.Message{
		Topic: UserTopic(n.UserID),
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"notification_id": n.ID,
			"kind":            string(n.Kind),
			"link":            n.Link,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: "benefit_updates",
			},
		},
	}
}
