package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
)

const (
	invokeTimeout = 10 * time.Second
	serviceScopes = "read write"
)

// EndpointResolver resolves a logical service ID to a live base endpoint.
type EndpointResolver interface {
	Resolve(ctx context.Context, serviceID, interfaceType string) (string, error)
}

// TokenSource mints bearer tokens for outbound calls.
type TokenSource interface {
	Issue(scopes string) (string, error)
}

var _ domain.ServiceCaller = (*ServiceInvoker)(nil)

// ServiceInvoker makes authenticated JSON-over-HTTP calls to the downstream
// services. Each (service, operation) pair maps to one REST route; the
// invoker makes exactly one attempt per call and maps every transport-level
// failure to a domain.InvocationError.
type ServiceInvoker struct {
	resolver   EndpointResolver
	tokens     TokenSource
	httpClient *http.Client
	logger     *slog.Logger
	routes     map[routeKey]route
}

type routeKey struct {
	service   string
	operation string
}

type route struct {
	method string
	path   string // appended to the resolved endpoint, {param} substituted from the payload
	body   func(payload map[string]any) any
	result func(payload, response map[string]any) map[string]any
}

// NewServiceInvoker creates an invoker over the given resolver and token
// source.
func NewServiceInvoker(resolver EndpointResolver, tokens TokenSource, logger *slog.Logger) *ServiceInvoker {
	return &ServiceInvoker{
		resolver:   resolver,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: invokeTimeout},
		logger:     logger.With("component", "service-invoker"),
		routes:     operationRoutes(),
	}
}

func operationRoutes() map[routeKey]route {
	return map[routeKey]route{
		{"orders-service", "createOrder"}: {
			method: http.MethodPost,
			path:   "/orders",
			body:   func(payload map[string]any) any { return payload },
			result: func(payload, response map[string]any) map[string]any {
				return map[string]any{
					"orderId":  stringField(payload, "id"),
					"status":   statusOrDefault(response, "created"),
					"message":  "Order created successfully",
					"response": response,
				}
			},
		},
		{"orders-service", "getOrder"}: {
			method: http.MethodGet,
			path:   "/orders/{orderId}",
		},
		{"payments-service", "processPayment"}: {
			method: http.MethodPost,
			path:   "/payments",
			body: func(payload map[string]any) any {
				return map[string]any{
					"orderId":      stringField(payload, "id"),
					"amount":       orderAmount(payload),
					"customerName": stringField(payload, "customerName"),
				}
			},
			result: func(payload, response map[string]any) map[string]any {
				return map[string]any{
					"orderId":   stringField(payload, "id"),
					"status":    statusOrDefault(response, "completed"),
					"paymentId": stringField(response, "paymentId"),
					"amount":    orderAmount(payload),
					"response":  response,
				}
			},
		},
		{"payments-service", "getPayment"}: {
			method: http.MethodGet,
			path:   "/payments/{orderId}",
		},
		{"shipping-service", "processShipping"}: {
			method: http.MethodPost,
			path:   "/shipping",
			body: func(payload map[string]any) any {
				return map[string]any{
					"orderId":         stringField(payload, "id"),
					"customerName":    stringField(payload, "customerName"),
					"shippingAddress": payload["shippingAddress"],
				}
			},
			result: func(payload, response map[string]any) map[string]any {
				return map[string]any{
					"orderId":    stringField(payload, "id"),
					"status":     statusOrDefault(response, "completed"),
					"shippingId": stringField(response, "shippingId"),
					"response":   response,
				}
			},
		},
		{"shipping-service", "getShipping"}: {
			method: http.MethodGet,
			path:   "/shipping/{orderId}",
		},
		{"catalog-service", "updateStock"}: {
			method: http.MethodPut,
			path:   "/products/{productId}/stock",
			body: func(payload map[string]any) any {
				return map[string]any{"quantity": payload["quantity"]}
			},
			result: func(payload, response map[string]any) map[string]any {
				return map[string]any{
					"productId": productID(payload),
					"quantity":  payload["quantity"],
					"status":    statusOrDefault(response, "updated"),
					"response":  response,
				}
			},
		},
	}
}

// Call resolves the service endpoint, attaches a fresh service token, issues
// the request with a fixed timeout, and maps any failure to an invocation
// error. It never retries.
func (i *ServiceInvoker) Call(ctx context.Context, service, operation string, payload map[string]any) (map[string]any, error) {
	r, ok := i.routes[routeKey{service, operation}]
	if !ok {
		return nil, domain.NewInvocationError(service, operation, errors.Errorf("unknown operation"))
	}

	endpoint, err := i.resolver.Resolve(ctx, service, "REST")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", service)
	}

	token, err := i.tokens.Issue(serviceScopes)
	if err != nil {
		return nil, domain.NewInvocationError(service, operation, err)
	}

	url := strings.TrimSuffix(endpoint, "/") + expandPath(r.path, payload)

	var bodyReader io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body(payload))
		if err != nil {
			return nil, domain.NewInvocationError(service, operation, err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, url, bodyReader)
	if err != nil {
		return nil, domain.NewInvocationError(service, operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	i.logger.Info("invoking service", "service", service, "operation", operation, "url", url)

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewInvocationError(service, operation, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewInvocationError(service, operation,
			errors.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(raw), 200)))
	}

	response := map[string]any{}
	if len(raw) > 0 {
		// A non-JSON 2xx body is tolerated; the call still succeeded.
		_ = json.Unmarshal(raw, &response)
	}

	if r.result == nil {
		return response, nil
	}
	return r.result(payload, response), nil
}

func expandPath(path string, payload map[string]any) string {
	replacer := strings.NewReplacer(
		"{orderId}", firstStringField(payload, "id", "orderId"),
		"{productId}", productID(payload),
	)
	return replacer.Replace(path)
}

func productID(payload map[string]any) string {
	return firstStringField(payload, "productId", "item")
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func firstStringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := stringField(m, key); v != "" {
			return v
		}
	}
	return ""
}

func statusOrDefault(response map[string]any, fallback string) string {
	if v := stringField(response, "status"); v != "" {
		return v
	}
	return fallback
}

// orderAmount prices an order the way the legacy engine did: unit price of
// 100 per item.
func orderAmount(payload map[string]any) int64 {
	switch v := payload["quantity"].(type) {
	case float64:
		return int64(v) * 100
	case int:
		return int64(v) * 100
	case int64:
		return v * 100
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
