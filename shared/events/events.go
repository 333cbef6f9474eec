package events

import (
	"context"
	"time"

	"github.com/SewwRathnayaka/SOA/shared/models"
)

// Queue names shared with the downstream services. Message bodies on these
// queues are plain JSON in the shape each producer already emits, so the
// orchestrator interoperates with producers that know nothing about this
// module's internal types.
const (
	OrderInitiationQueue   = "order_initiation_queue"
	PaymentCommandQueue    = "payment_command_queue"
	ShippingCommandQueue   = "shipping_command_queue"
	PaymentCompletedQueue  = "payment_completed_queue"
	ShippingCompletedQueue = "shipping_completed_queue"
)

// AllQueues lists every queue the orchestrator declares at startup.
func AllQueues() []string {
	return []string{
		OrderInitiationQueue,
		PaymentCommandQueue,
		ShippingCommandQueue,
		PaymentCompletedQueue,
		ShippingCompletedQueue,
	}
}

// QueuePublisher publishes a JSON-encoded payload to a named queue.
type QueuePublisher interface {
	Publish(ctx context.Context, queue string, payload any) error
}

// MessageHandler consumes one raw message body from a queue. Returning an
// error means the message is not acknowledged and will be redelivered.
type MessageHandler interface {
	HandlerID() string
	Handle(ctx context.Context, body []byte) error
}

// MessageHandlerFunc adapts a function to MessageHandler.
type MessageHandlerFunc struct {
	id string
	fn func(ctx context.Context, body []byte) error
}

func NewMessageHandlerFunc(id string, fn func(ctx context.Context, body []byte) error) *MessageHandlerFunc {
	return &MessageHandlerFunc{id: id, fn: fn}
}

func (h *MessageHandlerFunc) HandlerID() string {
	return h.id
}

func (h *MessageHandlerFunc) Handle(ctx context.Context, body []byte) error {
	return h.fn(ctx, body)
}

// Saga lifecycle notification types published for observers. Notifications
// are best-effort and carry no control-flow weight in the saga itself.
const (
	SagaStartedNotification   = "saga.started"
	SagaCompletedNotification = "saga.completed"
	SagaFailedNotification    = "saga.failed"
)

// Notification is the envelope published to the notification topic.
type Notification struct {
	ID            models.ID `json:"id"`
	Type          string    `json:"type"`
	TransactionID string    `json:"transaction_id"`
	Reason        string    `json:"reason,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewNotification creates a notification for a transaction.
func NewNotification(notificationType, transactionID string) *Notification {
	return &Notification{
		ID:            models.GenerateUUID(),
		Type:          notificationType,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

// WithReason attaches a human-readable failure reason.
func (n *Notification) WithReason(reason string) *Notification {
	n.Reason = reason
	return n
}

// NotificationPublisher publishes saga lifecycle notifications.
type NotificationPublisher interface {
	Notify(ctx context.Context, notification *Notification) error
}
