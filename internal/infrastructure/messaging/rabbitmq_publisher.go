package messaging

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultNotificationQueue = "notification.created"

// NotificationCreatedEvent is the message body published for every
// in-app notification.
type NotificationCreatedEvent struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Kind           string    `json:"kind"`
	Link           string    `json:"link,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// RabbitMQPublisher publishes notification events to a durable queue on the
// default exchange. It dials per message; notifications are low volume.
type RabbitMQPublisher struct {
	url   string
	queue string
}

var _ interfaces.INotificationPublisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(url, queue string) *RabbitMQPublisher {
	if queue == "" {
		queue = DefaultNotificationQueue
	}
	return &RabbitMQPublisher{url: url, queue: queue}
}

func (p *RabbitMQPublisher) PublishNotification(ctx context.Context, n entities.Notification) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("[notification][rabbitmq] dial failed err=%v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("[notification][rabbitmq] channel open failed err=%v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		log.Printf("[notification][rabbitmq] queue declare failed queue=%s err=%v", p.queue, err)
		return err
	}

	body, err := json.Marshal(newNotificationCreatedEvent(n))
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		log.Printf("[notification][rabbitmq] publish failed notification_id=%s err=%v", n.ID, err)
		return err
	}
	return nil
}

func newNotificationCreatedEvent(n entities.Notification) NotificationCreatedEvent {
	return NotificationCreatedEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		Kind:           string(n.Kind),
		Link:           n.Link,
		CreatedAt:      n.CreatedAt,
	}
}
