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

func sampleOrder() *events.OrderPayload {
	return &events.OrderPayload{
		ID:           "ORDER-001",
		Item:         "PROD-001",
		Quantity:     2,
		CustomerName: "John Doe",
		ShippingAddress: &events.ShippingAddress{
			Street:  "123 Main St",
			City:    "Colombo",
			ZipCode: "00100",
		},
	}
}

func TestStartOrderSaga_Execute(t *testing.T) {
	t.Run("caches context and issues payment command", func(t *testing.T) {
		order := sampleOrder()

		cache := mocks.NewMockContextCache(t)
		cache.EXPECT().Put("ORDER-001", *order).Once()

		publisher := mocks.NewMockQueuePublisher(t)
		publisher.EXPECT().Publish(mock.Anything, events.PaymentCommandQueue, order).Return(nil).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n *events.Notification) bool {
			return n.Type == events.SagaStartedNotification && n.TransactionID == "ORDER-001"
		})).Return(nil).Once()

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Times(2)

		uc := NewStartOrderSaga(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		err := uc.Execute(context.Background(), order)

		assert.NoError(t, err)
	})

	t.Run("publish failure leaves the message unacknowledged", func(t *testing.T) {
		order := sampleOrder()

		cache := mocks.NewMockContextCache(t)
		cache.EXPECT().Put("ORDER-001", *order).Once()

		publisher := mocks.NewMockQueuePublisher(t)
		publisher.EXPECT().Publish(mock.Anything, events.PaymentCommandQueue, order).
			Return(errors.New("queue unavailable")).Once()

		notifier := mocks.NewMockNotificationPublisher(t)

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		uc := NewStartOrderSaga(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		err := uc.Execute(context.Background(), order)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "payment command")
	})

	t.Run("notification failure does not fail the saga step", func(t *testing.T) {
		order := sampleOrder()

		cache := mocks.NewMockContextCache(t)
		cache.EXPECT().Put("ORDER-001", *order).Once()

		publisher := mocks.NewMockQueuePublisher(t)
		publisher.EXPECT().Publish(mock.Anything, events.PaymentCommandQueue, order).Return(nil).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("sns down")).Once()

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Times(2)

		uc := NewStartOrderSaga(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), order))
	})

	t.Run("order without id is dropped", func(t *testing.T) {
		cache := mocks.NewMockContextCache(t)
		publisher := mocks.NewMockQueuePublisher(t)
		notifier := mocks.NewMockNotificationPublisher(t)
		eventLog := mocks.NewMockEventLog(t)

		uc := NewStartOrderSaga(cache, publisher, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		// No mock expectations: the message must be acknowledged untouched.
		assert.NoError(t, uc.Execute(context.Background(), &events.OrderPayload{Item: "PROD-001"}))
	})
}
