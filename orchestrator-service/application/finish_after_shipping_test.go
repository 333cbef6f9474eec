package application

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
	"github.com/SewwRathnayaka/SOA/orchestrator-service/mocks"
	"github.com/SewwRathnayaka/SOA/shared/events"
	"github.com/SewwRathnayaka/SOA/shared/telemetry"
)

func TestFinishAfterShipping_Execute(t *testing.T) {
	shipped := &events.ShippingCompleted{
		OrderID:    "ORDER-001",
		ShippingID: "SHIP-1",
		ProductID:  "PROD-001",
		Quantity:   2,
		Status:     "completed",
	}

	t.Run("updates stock and completes the saga", func(t *testing.T) {
		caller := mocks.NewMockServiceCaller(t)
		caller.EXPECT().Call(mock.Anything, "catalog-service", "updateStock",
			mock.MatchedBy(func(payload map[string]any) bool {
				return payload["productId"] == "PROD-001" && payload["quantity"] == 2
			})).Return(map[string]any{"status": "updated"}, nil).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n *events.Notification) bool {
			return n.Type == events.SagaCompletedNotification && n.TransactionID == "ORDER-001"
		})).Return(nil).Once()

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		uc := NewFinishAfterShipping(caller, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), shipped))
	})

	t.Run("stock update failure still acknowledges", func(t *testing.T) {
		caller := mocks.NewMockServiceCaller(t)
		caller.EXPECT().Call(mock.Anything, "catalog-service", "updateStock", mock.Anything).
			Return(nil, domain.NewInvocationError("catalog-service", "updateStock", errors.New("unreachable"))).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n *events.Notification) bool {
			return n.Type == events.SagaCompletedNotification
		})).Return(nil).Once()

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		uc := NewFinishAfterShipping(caller, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), shipped))
	})

	t.Run("shipped status counts as completed", func(t *testing.T) {
		caller := mocks.NewMockServiceCaller(t)
		caller.EXPECT().Call(mock.Anything, "catalog-service", "updateStock", mock.Anything).
			Return(map[string]any{"status": "updated"}, nil).Once()

		notifier := mocks.NewMockNotificationPublisher(t)
		notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		uc := NewFinishAfterShipping(caller, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), &events.ShippingCompleted{
			OrderID:   "ORDER-001",
			ProductID: "PROD-001",
			Quantity:  1,
			Status:    "shipped",
		}))
	})

	t.Run("failed shipping ends the saga without touching the catalog", func(t *testing.T) {
		caller := mocks.NewMockServiceCaller(t)

		notifier := mocks.NewMockNotificationPublisher(t)
		notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n *events.Notification) bool {
			return n.Type == events.SagaFailedNotification && n.Reason == "out of stock"
		})).Return(nil).Once()

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		uc := NewFinishAfterShipping(caller, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), &events.ShippingCompleted{
			OrderID: "ORDER-003",
			Status:  "failed",
			Error:   "out of stock",
		}))
	})

	t.Run("event without product details skips the stock update", func(t *testing.T) {
		caller := mocks.NewMockServiceCaller(t)

		notifier := mocks.NewMockNotificationPublisher(t)
		notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

		eventLog := mocks.NewMockEventLog(t)
		eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		uc := NewFinishAfterShipping(caller, notifier, eventLog, telemetry.Noop("test"), slog.Default())

		assert.NoError(t, uc.Execute(context.Background(), &events.ShippingCompleted{
			OrderID: "ORDER-004",
			Status:  "completed",
		}))
	})
}
