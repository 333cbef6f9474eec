package application

import (
	"context"
	"log/slog"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
	"github.com/SewwRathnayaka/SOA/shared/events"
	"github.com/SewwRathnayaka/SOA/shared/telemetry"
)

// FinishAfterShipping use case: final step of the order saga, triggered by a
// shipping completion event. Stock adjustment is best-effort; the saga
// reaches a terminal state no matter what happens here, so this use case
// always acknowledges.
type FinishAfterShipping struct {
	caller    domain.ServiceCaller
	notifier  events.NotificationPublisher
	eventLog  events.EventLog
	telemetry *telemetry.Telemetry
	logger    *slog.Logger
}

// NewFinishAfterShipping creates a new FinishAfterShipping use case.
func NewFinishAfterShipping(
	caller domain.ServiceCaller,
	notifier events.NotificationPublisher,
	eventLog events.EventLog,
	tel *telemetry.Telemetry,
	logger *slog.Logger,
) *FinishAfterShipping {
	return &FinishAfterShipping{
		caller:    caller,
		notifier:  notifier,
		eventLog:  eventLog,
		telemetry: tel,
		logger:    logger.With("component", "saga"),
	}
}

// Execute terminates the saga. It always returns nil: a failed catalog
// update is logged and the event acknowledged, because redelivering the
// shipping event would not make the order any more shipped than it is.
func (uc *FinishAfterShipping) Execute(ctx context.Context, event *events.ShippingCompleted) error {
	uc.appendLog(ctx, event.OrderID, events.ShippingCompletedQueue, events.DirectionReceived, event)

	if !event.Completed() {
		reason := "shipping " + event.Status
		if event.Error != "" {
			reason = event.Error
		}
		uc.logger.Warn("shipping failed, ending saga", "transaction_id", event.OrderID, "status", event.Status)
		uc.notify(ctx, events.NewNotification(events.SagaFailedNotification, event.OrderID).WithReason(reason))
		uc.telemetry.RecordCounter(ctx, "saga_failed_total", "Order sagas ended in failure", 1)
		return nil
	}

	uc.updateStock(ctx, event)

	uc.logger.Info("saga completed", "transaction_id", event.OrderID, "shipping_id", event.ShippingID)
	uc.notify(ctx, events.NewNotification(events.SagaCompletedNotification, event.OrderID))
	uc.telemetry.RecordCounter(ctx, "saga_completed_total", "Order sagas completed", 1)
	return nil
}

func (uc *FinishAfterShipping) updateStock(ctx context.Context, event *events.ShippingCompleted) {
	if event.ProductID == "" || event.Quantity <= 0 {
		uc.logger.Warn("skipping stock update, event carries no product details", "transaction_id", event.OrderID)
		return
	}

	payload := map[string]any{
		"productId": event.ProductID,
		"quantity":  event.Quantity,
	}
	if _, err := uc.caller.Call(ctx, "catalog-service", "updateStock", payload); err != nil {
		uc.logger.Warn("catalog stock update failed",
			"transaction_id", event.OrderID, "product_id", event.ProductID, "error", err)
		uc.telemetry.RecordCounter(ctx, "catalog_update_failures_total", "Best-effort stock updates that failed", 1)
	}
}

func (uc *FinishAfterShipping) appendLog(ctx context.Context, transactionID, queue, direction string, payload any) {
	entry, err := events.NewEventLogEntry(transactionID, queue, direction, payload)
	if err == nil {
		err = uc.eventLog.Append(ctx, entry)
	}
	if err != nil {
		uc.logger.Warn("failed to append saga event log", "transaction_id", transactionID, "queue", queue, "error", err)
	}
}

func (uc *FinishAfterShipping) notify(ctx context.Context, notification *events.Notification) {
	if err := uc.notifier.Notify(ctx, notification); err != nil {
		uc.logger.Warn("failed to publish saga notification",
			"transaction_id", notification.TransactionID, "type", notification.Type, "error", err)
	}
}
