package registry

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryEntry() ServiceRegistration {
	return ServiceRegistration{
		ServiceID: "orders-service",
		Name:      "Orders",
		Interfaces: []ServiceInterface{
			{Type: "SOAP", Endpoint: "http://orders:8000/soap"},
			{Type: "REST", Endpoint: "http://orders:3001"},
		},
	}
}

func TestClient_Resolve(t *testing.T) {
	t.Run("matches the requested interface type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/services/orders-service", r.URL.Path)
			json.NewEncoder(w).Encode(registryEntry())
		}))
		defer server.Close()

		client := NewClient(server.URL, slog.Default())

		endpoint, err := client.Resolve(context.Background(), "orders-service", "REST")

		require.NoError(t, err)
		assert.Equal(t, "http://orders:3001", endpoint)
	})

	t.Run("falls back to the first interface", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(registryEntry())
		}))
		defer server.Close()

		client := NewClient(server.URL, slog.Default())

		endpoint, err := client.Resolve(context.Background(), "orders-service", "GRPC")

		require.NoError(t, err)
		assert.Equal(t, "http://orders:8000/soap", endpoint)
	})

	t.Run("unknown service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := NewClient(server.URL, slog.Default())

		_, err := client.Resolve(context.Background(), "ghost-service", "REST")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("registry unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, slog.Default())

		_, err := client.Resolve(context.Background(), "orders-service", "REST")

		assert.Error(t, err)
	})
}

func TestClient_Register(t *testing.T) {
	t.Run("posts the registration document", func(t *testing.T) {
		var got ServiceRegistration
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/services/register", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewClient(server.URL, slog.Default())
		registration := registryEntry()

		err := client.Register(context.Background(), &registration)

		require.NoError(t, err)
		assert.Equal(t, "orders-service", got.ServiceID)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "conflict", http.StatusConflict)
		}))
		defer server.Close()

		client := NewClient(server.URL, slog.Default())
		registration := registryEntry()

		assert.Error(t, client.Register(context.Background(), &registration))
	})
}
