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
)

func TestGetOrderStatus_Execute(t *testing.T) {
	t.Run("aggregates all three views", func(t *testing.T) {
		caller := mocks.NewMockServiceCaller(t)
		caller.EXPECT().Call(mock.Anything, "orders-service", "getOrder", mock.Anything).
			Return(map[string]any{"id": "ORDER-001", "status": "created"}, nil).Once()
		caller.EXPECT().Call(mock.Anything, "payments-service", "getPayment", mock.Anything).
			Return(map[string]any{"status": "completed"}, nil).Once()
		caller.EXPECT().Call(mock.Anything, "shipping-service", "getShipping", mock.Anything).
			Return(map[string]any{"status": "shipped"}, nil).Once()

		uc := NewGetOrderStatus(caller, slog.Default())

		status := uc.Execute(context.Background(), "ORDER-001")

		assert.Equal(t, "ORDER-001", status["orderId"])
		assert.Equal(t, map[string]any{"id": "ORDER-001", "status": "created"}, status["order"])
		assert.Equal(t, map[string]any{"status": "completed"}, status["payment"])
		assert.Equal(t, map[string]any{"status": "shipped"}, status["shipping"])
	})

	t.Run("one unreachable service degrades only its section", func(t *testing.T) {
		caller := mocks.NewMockServiceCaller(t)
		caller.EXPECT().Call(mock.Anything, "orders-service", "getOrder", mock.Anything).
			Return(map[string]any{"status": "created"}, nil).Once()
		caller.EXPECT().Call(mock.Anything, "payments-service", "getPayment", mock.Anything).
			Return(nil, domain.NewInvocationError("payments-service", "getPayment", errors.New("timeout"))).Once()
		caller.EXPECT().Call(mock.Anything, "shipping-service", "getShipping", mock.Anything).
			Return(map[string]any{"status": "pending"}, nil).Once()

		uc := NewGetOrderStatus(caller, slog.Default())

		status := uc.Execute(context.Background(), "ORDER-001")

		assert.Equal(t, map[string]any{"status": "created"}, status["order"])
		assert.Equal(t, map[string]any{"status": "not_found"}, status["payment"])
		assert.Equal(t, map[string]any{"status": "pending"}, status["shipping"])
	})
}
