package domain

// Fault names raised by the built-in PlaceOrder workflow.
const (
	PaymentFailedFault  = "PaymentFailedFault"
	ShippingFailedFault = "ShippingFailedFault"
)

// PlaceOrderWorkflowName is the definition registered at startup.
const PlaceOrderWorkflowName = "PlaceOrder"

// PlaceOrderDefinition builds the order placement activity graph: create the
// order, take payment, then ship and update catalog stock only when the
// preceding step reported completion.
func PlaceOrderDefinition() *WorkflowDefinition {
	return &WorkflowDefinition{
		Name:        PlaceOrderWorkflowName,
		Version:     "1.0",
		Description: "Complete order placement workflow",
		Variables: map[string]any{
			"orderData":           nil,
			"orderResult":         nil,
			"paymentResult":       nil,
			"shippingResult":      nil,
			"catalogUpdateResult": nil,
		},
		Activities: []Activity{
			{
				Type:          ActivityReceive,
				Name:          "receiveOrder",
				Operation:     "placeOrder",
				InputVariable: "orderData",
			},
			{
				Type:           ActivityInvoke,
				Name:           "createOrder",
				Service:        "orders-service",
				Operation:      "createOrder",
				InputVariable:  "orderData",
				OutputVariable: "orderResult",
			},
			{
				Type:           ActivityInvoke,
				Name:           "processPayment",
				Service:        "payments-service",
				Operation:      "processPayment",
				InputVariable:  "orderData",
				OutputVariable: "paymentResult",
			},
			{
				Type:      ActivityConditional,
				Name:      "checkPaymentSuccess",
				Condition: `paymentResult.status == "completed"`,
				Then: []Activity{
					{
						Type:           ActivityInvoke,
						Name:           "processShipping",
						Service:        "shipping-service",
						Operation:      "processShipping",
						InputVariable:  "orderData",
						OutputVariable: "shippingResult",
					},
					{
						Type:      ActivityConditional,
						Name:      "checkShippingSuccess",
						Condition: `shippingResult.status == "completed"`,
						Then: []Activity{
							{
								Type:           ActivityInvoke,
								Name:           "updateCatalogStock",
								Service:        "catalog-service",
								Operation:      "updateStock",
								InputVariable:  "orderData",
								OutputVariable: "catalogUpdateResult",
								// Stock adjustment is not part of the
								// order outcome: a failure here must not
								// fail a paid and shipped order.
								BestEffort: true,
							},
						},
						Else: []Activity{
							{
								Type:      ActivityFault,
								Name:      "shippingFailed",
								FaultName: ShippingFailedFault,
							},
						},
					},
				},
				Else: []Activity{
					{
						Type:      ActivityFault,
						Name:      "paymentFailed",
						FaultName: PaymentFailedFault,
					},
				},
			},
			{
				Type:      ActivityReply,
				Name:      "replyOrderComplete",
				Operation: "placeOrder",
			},
		},
	}
}
