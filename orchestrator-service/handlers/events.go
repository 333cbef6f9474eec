package handlers

import (
	"context"
	"log/slog"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/application"
	"github.com/SewwRathnayaka/SOA/shared/events"
)

// SagaEventHandlers binds the saga use cases to their queues. Each handler
// decodes the raw message body in the shape the producing service emits;
// a body that cannot be decoded is logged and acknowledged, because
// redelivery cannot repair a malformed message.
type SagaEventHandlers struct {
	startOrderSaga       *application.StartOrderSaga
	continueAfterPayment *application.ContinueAfterPayment
	finishAfterShipping  *application.FinishAfterShipping
	logger               *slog.Logger
}

// NewSagaEventHandlers creates new saga event handlers
func NewSagaEventHandlers(
	startOrderSaga *application.StartOrderSaga,
	continueAfterPayment *application.ContinueAfterPayment,
	finishAfterShipping *application.FinishAfterShipping,
	logger *slog.Logger,
) *SagaEventHandlers {
	return &SagaEventHandlers{
		startOrderSaga:       startOrderSaga,
		continueAfterPayment: continueAfterPayment,
		finishAfterShipping:  finishAfterShipping,
		logger:               logger,
	}
}

// Handlers returns the message handler for each queue the orchestrator
// consumes.
func (h *SagaEventHandlers) Handlers() map[string]events.MessageHandler {
	return map[string]events.MessageHandler{
		events.OrderInitiationQueue:   h.orderInitiationHandler(),
		events.PaymentCompletedQueue:  h.paymentCompletedHandler(),
		events.ShippingCompletedQueue: h.shippingCompletedHandler(),
	}
}

func (h *SagaEventHandlers) orderInitiationHandler() events.MessageHandler {
	return events.NewMessageHandlerFunc("order-initiation-handler", func(ctx context.Context, body []byte) error {
		var order events.OrderPayload
		if err := events.DecodePayload(events.OrderInitiationQueue, body, &order); err != nil {
			h.logger.Error("dropping undecodable message", "queue", events.OrderInitiationQueue, "error", err)
			return nil
		}
		return h.startOrderSaga.Execute(ctx, &order)
	})
}

func (h *SagaEventHandlers) paymentCompletedHandler() events.MessageHandler {
	return events.NewMessageHandlerFunc("payment-completed-handler", func(ctx context.Context, body []byte) error {
		var event events.PaymentCompleted
		if err := events.DecodePayload(events.PaymentCompletedQueue, body, &event); err != nil {
			h.logger.Error("dropping undecodable message", "queue", events.PaymentCompletedQueue, "error", err)
			return nil
		}
		return h.continueAfterPayment.Execute(ctx, &event)
	})
}

func (h *SagaEventHandlers) shippingCompletedHandler() events.MessageHandler {
	return events.NewMessageHandlerFunc("shipping-completed-handler", func(ctx context.Context, body []byte) error {
		var event events.ShippingCompleted
		if err := events.DecodePayload(events.ShippingCompletedQueue, body, &event); err != nil {
			h.logger.Error("dropping undecodable message", "queue", events.ShippingCompletedQueue, "error", err)
			return nil
		}
		return h.finishAfterShipping.Execute(ctx, &event)
	})
}
