package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/application"
	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
	"github.com/SewwRathnayaka/SOA/shared/auth"
	"github.com/SewwRathnayaka/SOA/shared/events"
)

// OrchestratorHandlers contains the orchestrator HTTP handlers
type OrchestratorHandlers struct {
	executeWorkflow  *application.ExecuteWorkflow
	registerWorkflow *application.RegisterWorkflow
	getWorkflow      *application.GetWorkflow
	listWorkflows    *application.ListWorkflows
	getRun           *application.GetRun
	listRuns         *application.ListRuns
	getOrderStatus   *application.GetOrderStatus
	getSagaEvents    *application.GetSagaEvents
	publisher        events.QueuePublisher
	logger           *slog.Logger
	jwtSecret        string
}

// NewOrchestratorHandlers creates new orchestrator handlers
func NewOrchestratorHandlers(
	executeWorkflow *application.ExecuteWorkflow,
	registerWorkflow *application.RegisterWorkflow,
	getWorkflow *application.GetWorkflow,
	listWorkflows *application.ListWorkflows,
	getRun *application.GetRun,
	listRuns *application.ListRuns,
	getOrderStatus *application.GetOrderStatus,
	getSagaEvents *application.GetSagaEvents,
	publisher events.QueuePublisher,
	logger *slog.Logger,
	jwtSecret string,
) *OrchestratorHandlers {
	return &OrchestratorHandlers{
		executeWorkflow:  executeWorkflow,
		registerWorkflow: registerWorkflow,
		getWorkflow:      getWorkflow,
		listWorkflows:    listWorkflows,
		getRun:           getRun,
		listRuns:         listRuns,
		getOrderStatus:   getOrderStatus,
		getSagaEvents:    getSagaEvents,
		publisher:        publisher,
		logger:           logger,
		jwtSecret:        jwtSecret,
	}
}

// PlaceOrder runs the PlaceOrder workflow synchronously for the posted order
func (h *OrchestratorHandlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cmd := &application.ExecuteWorkflowCommand{
		WorkflowName: domain.PlaceOrderWorkflowName,
		Input:        input,
	}

	result, err := h.executeWorkflow.Execute(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if result.Status == domain.RunStatusFailed {
		status = http.StatusInternalServerError
	} else if h.publisher != nil {
		// Hand the order to the queue-driven saga as well. Losing this
		// publish degrades the async side only, never the placed order.
		if err := h.publisher.Publish(r.Context(), events.OrderInitiationQueue, input); err != nil {
			h.logger.Warn("failed to publish order initiation", "order_id", input["id"], "error", err)
		}
	}
	writeJSON(w, status, result)
}

// ExecuteNamedWorkflow runs any registered workflow with the posted input
func (h *OrchestratorHandlers) ExecuteNamedWorkflow(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.executeWorkflow.Execute(r.Context(), &application.ExecuteWorkflowCommand{
		WorkflowName: name,
		Input:        input,
	})
	if err != nil {
		if errors.Is(err, domain.ErrWorkflowNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if result.Status == domain.RunStatusFailed {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, result)
}

// RegisterWorkflow handles workflow definition registration requests
func (h *OrchestratorHandlers) RegisterWorkflow(w http.ResponseWriter, r *http.Request) {
	var definition domain.WorkflowDefinition
	if err := json.NewDecoder(r.Body).Decode(&definition); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.registerWorkflow.Execute(r.Context(), &definition); err != nil {
		if strings.Contains(err.Error(), "already registered") {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"name": definition.Name})
}

// ListWorkflows handles workflow listing requests
func (h *OrchestratorHandlers) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"workflows": h.listWorkflows.Execute(r.Context())})
}

// GetWorkflow handles workflow definition retrieval requests
func (h *OrchestratorHandlers) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	definition, err := h.getWorkflow.Execute(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrWorkflowNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, definition)
}

// ListExecutions handles run listing requests
func (h *OrchestratorHandlers) ListExecutions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"executions": h.listRuns.Execute(r.Context())})
}

// GetExecution handles run retrieval requests
func (h *OrchestratorHandlers) GetExecution(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.getRun.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, run)
}

// GetWorkflowStatus aggregates the downstream views of one order
func (h *OrchestratorHandlers) GetWorkflowStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		http.Error(w, "Order ID is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.getOrderStatus.Execute(r.Context(), orderID))
}

// GetSagaEvents returns the logged saga messages for one transaction
func (h *OrchestratorHandlers) GetSagaEvents(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "id")

	entries, err := h.getSagaEvents.Execute(r.Context(), transactionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"transactionId": transactionID, "events": entries})
}

// Health reports process liveness
func (h *OrchestratorHandlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "orchestrator-service"})
}

// RegisterRoutes registers orchestrator routes. Write operations require the
// write scope, reads the read scope; health stays open for probes.
func (h *OrchestratorHandlers) RegisterRoutes(r chi.Router) {
	requireRead := auth.RequireScope(h.jwtSecret, "read")
	requireWrite := auth.RequireScope(h.jwtSecret, "write")

	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(requireWrite)
		r.Post("/place-order", h.PlaceOrder)
		r.Post("/workflows", h.RegisterWorkflow)
		r.Post("/workflows/{name}/execute", h.ExecuteNamedWorkflow)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireRead)
		r.Get("/workflows", h.ListWorkflows)
		r.Get("/workflows/{name}", h.GetWorkflow)
		r.Get("/executions", h.ListExecutions)
		r.Get("/executions/{id}", h.GetExecution)
		r.Get("/workflow-status/{orderId}", h.GetWorkflowStatus)
		r.Get("/saga/transactions/{id}/events", h.GetSagaEvents)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
