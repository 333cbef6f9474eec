package application

import (
	"context"
	"log/slog"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
)

// GetOrderStatus use case: aggregates the order, payment and shipping views
// of one order from the downstream services. Each section degrades
// independently so one unreachable service does not hide the others.
type GetOrderStatus struct {
	caller domain.ServiceCaller
	logger *slog.Logger
}

// NewGetOrderStatus creates a new GetOrderStatus use case.
func NewGetOrderStatus(caller domain.ServiceCaller, logger *slog.Logger) *GetOrderStatus {
	return &GetOrderStatus{
		caller: caller,
		logger: logger,
	}
}

// Execute queries each downstream service for its view of the order.
func (uc *GetOrderStatus) Execute(ctx context.Context, orderID string) map[string]any {
	status := map[string]any{"orderId": orderID}
	payload := map[string]any{"orderId": orderID}

	sections := []struct {
		key       string
		service   string
		operation string
	}{
		{"order", "orders-service", "getOrder"},
		{"payment", "payments-service", "getPayment"},
		{"shipping", "shipping-service", "getShipping"},
	}

	for _, section := range sections {
		view, err := uc.caller.Call(ctx, section.service, section.operation, payload)
		if err != nil {
			uc.logger.Warn("order status lookup failed",
				"order_id", orderID, "service", section.service, "error", err)
			status[section.key] = map[string]any{"status": "not_found"}
			continue
		}
		status[section.key] = view
	}

	return status
}
