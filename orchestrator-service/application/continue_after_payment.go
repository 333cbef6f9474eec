package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/shared/events"
	"github.com/SewwRathnayaka/SOA/shared/telemetry"
)

// ContinueAfterPayment use case: second step of the order saga, triggered by
// a payment completion event. On success it issues the shipping command,
// rebuilt from the cached order context when available and from the event's
// own fields when not.
type ContinueAfterPayment struct {
	cache     ContextCache
	publisher events.QueuePublisher
	notifier  events.NotificationPublisher
	eventLog  events.EventLog
	telemetry *telemetry.Telemetry
	logger    *slog.Logger
}

// NewContinueAfterPayment creates a new ContinueAfterPayment use case.
func NewContinueAfterPayment(
	cache ContextCache,
	publisher events.QueuePublisher,
	notifier events.NotificationPublisher,
	eventLog events.EventLog,
	tel *telemetry.Telemetry,
	logger *slog.Logger,
) *ContinueAfterPayment {
	return &ContinueAfterPayment{
		cache:     cache,
		publisher: publisher,
		notifier:  notifier,
		eventLog:  eventLog,
		telemetry: tel,
		logger:    logger.With("component", "saga"),
	}
}

// Execute advances the saga past the payment step. Returning nil
// acknowledges the payment event; only a failed shipping-command publish
// returns an error, so the event is redelivered and the publish retried.
func (uc *ContinueAfterPayment) Execute(ctx context.Context, event *events.PaymentCompleted) error {
	if event.OrderID == "" {
		// Redelivery cannot supply the missing transaction ID, so the
		// event is dropped rather than poisoning the queue.
		uc.logger.Error("payment event without an order id, dropping", "status", event.Status)
		return nil
	}

	uc.appendLog(ctx, event.OrderID, events.PaymentCompletedQueue, events.DirectionReceived, event)

	if !event.Completed() {
		uc.logger.Warn("payment failed, ending saga", "transaction_id", event.OrderID, "status", event.Status)
		uc.notify(ctx, events.NewNotification(events.SagaFailedNotification, event.OrderID).
			WithReason("payment "+event.Status))
		uc.telemetry.RecordCounter(ctx, "saga_failed_total", "Order sagas ended in failure", 1)
		return nil
	}

	command, cached := uc.shippingCommand(event)
	if !cached {
		uc.logger.Warn("order context not cached, reconstructing shipping command from event",
			"transaction_id", event.OrderID)
		uc.telemetry.RecordCounter(ctx, "saga_context_misses_total", "Shipping commands built without cached order context", 1)
	}

	if err := uc.publisher.Publish(ctx, events.ShippingCommandQueue, command); err != nil {
		return errors.Wrap(err, "failed to publish shipping command")
	}
	uc.appendLog(ctx, event.OrderID, events.ShippingCommandQueue, events.DirectionPublished, command)

	uc.logger.Info("payment completed, shipping command issued",
		"transaction_id", event.OrderID, "payment_id", event.PaymentID, "context_cached", cached)
	return nil
}

// shippingCommand prefers the cached order payload, which carries the
// customer name and shipping address the payment event does not echo.
func (uc *ContinueAfterPayment) shippingCommand(event *events.PaymentCompleted) (*events.OrderPayload, bool) {
	if cached, ok := uc.cache.Get(event.OrderID); ok {
		return &cached, true
	}
	return &events.OrderPayload{
		ID:       event.OrderID,
		Item:     event.Item,
		Quantity: event.Quantity,
	}, false
}

func (uc *ContinueAfterPayment) appendLog(ctx context.Context, transactionID, queue, direction string, payload any) {
	entry, err := events.NewEventLogEntry(transactionID, queue, direction, payload)
	if err == nil {
		err = uc.eventLog.Append(ctx, entry)
	}
	if err != nil {
		uc.logger.Warn("failed to append saga event log", "transaction_id", transactionID, "queue", queue, "error", err)
	}
}

func (uc *ContinueAfterPayment) notify(ctx context.Context, notification *events.Notification) {
	if err := uc.notifier.Notify(ctx, notification); err != nil {
		uc.logger.Warn("failed to publish saga notification",
			"transaction_id", notification.TransactionID, "type", notification.Type, "error", err)
	}
}
