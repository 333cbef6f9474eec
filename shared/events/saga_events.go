package events

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ShippingAddress is the address block carried on an order. It is present on
// the initiating order payload but not echoed by later step events, which is
// why the coordinator caches the original payload.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// OrderPayload is the order request as produced by the orders service and
// consumed from order_initiation_queue. The same shape is forwarded verbatim
// as the payment and shipping commands.
type OrderPayload struct {
	ID              string           `json:"id"`
	Item            string           `json:"item"`
	Quantity        int              `json:"quantity"`
	CustomerName    string           `json:"customerName,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
}

// PaymentCompleted is the step-completion event on payment_completed_queue.
// The payments service includes only the fields it chose to echo; the
// shipping address in particular is never present.
type PaymentCompleted struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId,omitempty"`
	Status    string `json:"status"`
	Item      string `json:"item,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
}

// Completed reports whether the payment step succeeded.
func (e *PaymentCompleted) Completed() bool {
	return e.Status == "completed"
}

// ShippingCompleted is the step-completion event on shipping_completed_queue.
type ShippingCompleted struct {
	OrderID    string `json:"orderId"`
	ShippingID string `json:"shippingId,omitempty"`
	ProductID  string `json:"productId,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// Completed reports whether the shipping step succeeded.
func (e *ShippingCompleted) Completed() bool {
	return e.Status == "completed" || e.Status == "shipped"
}

// DecodePayload unmarshals a raw queue message body into the given event
// struct, wrapping decode failures with the queue name for diagnostics.
func DecodePayload(queue string, body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return errors.Wrapf(err, "failed to decode message from %s", queue)
	}
	return nil
}
