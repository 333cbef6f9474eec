package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/shared/events"
	"github.com/SewwRathnayaka/SOA/shared/telemetry"
)

// ContextCache is the volatile correlation cache keyed by transaction ID. A
// miss is an expected condition: entries evaporate on restart, TTL expiry,
// or capacity eviction, and the saga must still make progress without them.
type ContextCache interface {
	Put(transactionID string, payload events.OrderPayload)
	Get(transactionID string) (events.OrderPayload, bool)
}

// StartOrderSaga use case: first step of the order saga, triggered by a
// message on the order initiation queue. It caches the full order payload
// for later steps and issues the payment command.
type StartOrderSaga struct {
	cache     ContextCache
	publisher events.QueuePublisher
	notifier  events.NotificationPublisher
	eventLog  events.EventLog
	telemetry *telemetry.Telemetry
	logger    *slog.Logger
}

// NewStartOrderSaga creates a new StartOrderSaga use case.
func NewStartOrderSaga(
	cache ContextCache,
	publisher events.QueuePublisher,
	notifier events.NotificationPublisher,
	eventLog events.EventLog,
	tel *telemetry.Telemetry,
	logger *slog.Logger,
) *StartOrderSaga {
	return &StartOrderSaga{
		cache:     cache,
		publisher: publisher,
		notifier:  notifier,
		eventLog:  eventLog,
		telemetry: tel,
		logger:    logger.With("component", "saga"),
	}
}

// Execute caches the order context and forwards the payload as the payment
// command. A returned error leaves the initiating message unacknowledged so
// it is redelivered; the cache write before a failed publish is harmless
// because Put is first-write-wins.
func (uc *StartOrderSaga) Execute(ctx context.Context, order *events.OrderPayload) error {
	if order.ID == "" {
		// Unprocessable: redelivery cannot fix a message with no
		// transaction ID, so acknowledge and drop it.
		uc.logger.Error("dropping order message without id")
		return nil
	}

	uc.logger.Info("saga started", "transaction_id", order.ID, "item", order.Item, "quantity", order.Quantity)
	uc.cache.Put(order.ID, *order)
	uc.appendLog(ctx, order.ID, events.OrderInitiationQueue, events.DirectionReceived, order)

	if err := uc.publisher.Publish(ctx, events.PaymentCommandQueue, order); err != nil {
		return errors.Wrap(err, "failed to publish payment command")
	}
	uc.appendLog(ctx, order.ID, events.PaymentCommandQueue, events.DirectionPublished, order)

	uc.notify(ctx, events.NewNotification(events.SagaStartedNotification, order.ID))
	uc.telemetry.RecordCounter(ctx, "saga_started_total", "Order sagas started", 1)
	return nil
}

func (uc *StartOrderSaga) appendLog(ctx context.Context, transactionID, queue, direction string, payload any) {
	entry, err := events.NewEventLogEntry(transactionID, queue, direction, payload)
	if err == nil {
		err = uc.eventLog.Append(ctx, entry)
	}
	if err != nil {
		uc.logger.Warn("failed to append saga event log", "transaction_id", transactionID, "queue", queue, "error", err)
	}
}

func (uc *StartOrderSaga) notify(ctx context.Context, notification *events.Notification) {
	if err := uc.notifier.Notify(ctx, notification); err != nil {
		uc.logger.Warn("failed to publish saga notification",
			"transaction_id", notification.TransactionID, "type", notification.Type, "error", err)
	}
}
