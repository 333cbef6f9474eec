package application

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/mocks"
	"github.com/SewwRathnayaka/SOA/shared/events"
	"github.com/SewwRathnayaka/SOA/shared/telemetry"
)

func TestContinueAfterPayment_Execute(t *testing.T) {
	completedPayment := &events.PaymentCompleted{
		OrderID:   "ORDER-001",
		PaymentID: "PAY-1",
		Status:    "completed",
		Item:      "PROD-001",
		Quantity:  2,
	}

	t.Run("cached context preserves the shipping address", func(t *testing.T) {
		cachedOrder := *sampleOrder()

		cache := mocks.NewMockContextCache(t)
		cache.EXPECT().Get("ORDER-001").Return(cachedOrder, true).Once()

		publisher := mocks.NewMockQueuePublisher(t)
		publisher.EXPECT().Publish(mock.Anything, events.ShippingCommandQueue,
			mock.MatchedBy(func(cmd *events.OrderPayload) bool {
				return cmd.ID == "ORDER-001" &&
					cmd.CustomerName == "John Doe" &&
					cmd.ShippingAddress != nil &&
					cmd.ShippingAddress.City == "Colombo"
			})).Return(nil).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Times(2)

		uc := NewContinueAfterPayment(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), completedPayment))
	})

	t.Run("cache miss reconstructs the command from the event", func(t *testing.T) {
		cache := mocks.NewMockContextCache(t)
		cache.EXPECT().Get("ORDER-001").Return(events.OrderPayload{}, false).Once()

		publisher := mocks.NewMockQueuePublisher(t)
		publisher.EXPECT().Publish(mock.Anything, events.ShippingCommandQueue,
			mock.MatchedBy(func(cmd *events.OrderPayload) bool {
				return cmd.ID == "ORDER-001" &&
					cmd.Item == "PROD-001" &&
					cmd.Quantity == 2 &&
					cmd.CustomerName == "" &&
					cmd.ShippingAddress == nil
			})).Return(nil).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Times(2)

		uc := NewContinueAfterPayment(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), completedPayment))
	})

	t.Run("failed payment ends the saga and acknowledges", func(t *testing.T) {
		cache := mocks.NewMockContextCache(t)
		publisher := mocks.NewMockQueuePublisher(t)

		notifier := mocks.NewMockNotificationPublisher(t)
		notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n *events.Notification) bool {
			return n.Type == events.SagaFailedNotification && n.TransactionID == "ORDER-002"
		})).Return(nil).Once()

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		uc := NewContinueAfterPayment(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		err := uc.Execute(context.Background(), &events.PaymentCompleted{
			OrderID: "ORDER-002",
			Status:  "failed",
		})

		assert.NoError(t, err)
	})

	t.Run("publish failure leaves the event unacknowledged", func(t *testing.T) {
		cache := mocks.NewMockContextCache(t)
		cache.EXPECT().Get("ORDER-001").Return(*sampleOrder(), true).Once()

		publisher := mocks.NewMockQueuePublisher(t)
		publisher.EXPECT().Publish(mock.Anything, events.ShippingCommandQueue, mock.Anything).
			Return(errors.New("queue unavailable")).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		uc := NewContinueAfterPayment(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		err := uc.Execute(context.Background(), completedPayment)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shipping command")
	})

	t.Run("event without an order id is dropped", func(t *testing.T) {
		cache := mocks.NewMockContextCache(t)
		publisher := mocks.NewMockQueuePublisher(t)
		notifier := mocks.NewMockNotificationPublisher(t)
		eventLog := mocks.NewMockEventLog(t)

		uc := NewContinueAfterPayment(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		err := uc.Execute(context.Background(), &events.PaymentCompleted{Status: "completed"})

		assert.NoError(t, err)
	})

	t.Run("event log failure does not block the saga", func(t *testing.T) {
		cache := mocks.NewMockContextCache(t)
		cache.EXPECT().Get("ORDER-001").Return(*sampleOrder(), true).Once()

		publisher := mocks.NewMockQueuePublisher(t)
		publisher.EXPECT().Publish(mock.Anything, events.ShippingCommandQueue, mock.Anything).Return(nil).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("db down")).Times(2)

		uc := NewContinueAfterPayment(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), completedPayment))
	})
}
