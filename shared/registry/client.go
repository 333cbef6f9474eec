// Package registry is the HTTP client for the service registry, which maps
// logical service identifiers to live endpoints. Every outbound call made by
// the orchestrator resolves its target through this client instead of a
// hardcoded URL.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// ErrServiceNotFound is returned when the registry has no live entry for the
// requested service or none of its interfaces match the requested type.
var ErrServiceNotFound = errors.New("service not found in registry")

const defaultTimeout = 5 * time.Second

// ServiceInterface describes one interface a registered service exposes.
type ServiceInterface struct {
	Type       string   `json:"type"`
	Endpoint   string   `json:"endpoint"`
	Operations []string `json:"operations,omitempty"`
}

// ServiceRegistration is the document a service registers under its ID.
type ServiceRegistration struct {
	ServiceID   string             `json:"serviceId"`
	Name        string             `json:"name"`
	Category    string             `json:"category,omitempty"`
	Provider    string             `json:"provider,omitempty"`
	Description string             `json:"description,omitempty"`
	Version     string             `json:"version,omitempty"`
	Interfaces  []ServiceInterface `json:"interfaces"`
}

// Client talks to the service registry over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a registry client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.With("component", "registry-client"),
	}
}

// Resolve returns the endpoint of the service's interface matching
// interfaceType, falling back to the first registered interface when no type
// matches exactly.
func (c *Client) Resolve(ctx context.Context, serviceID, interfaceType string) (string, error) {
	url := fmt.Sprintf("%s/api/services/%s", c.baseURL, serviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to build registry request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "registry lookup failed for %s", serviceID)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", errors.Wrapf(ErrServiceNotFound, "service %s", serviceID)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("registry lookup for %s returned status %d", serviceID, resp.StatusCode)
	}

	var registration ServiceRegistration
	if err := json.NewDecoder(resp.Body).Decode(&registration); err != nil {
		return "", errors.Wrapf(err, "failed to decode registry entry for %s", serviceID)
	}

	for _, iface := range registration.Interfaces {
		if iface.Type == interfaceType {
			return iface.Endpoint, nil
		}
	}
	if len(registration.Interfaces) > 0 {
		return registration.Interfaces[0].Endpoint, nil
	}

	return "", errors.Wrapf(ErrServiceNotFound, "service %s has no %s interface", serviceID, interfaceType)
}

// Register publishes this service's registration document.
func (c *Client) Register(ctx context.Context, registration *ServiceRegistration) error {
	body, err := json.Marshal(registration)
	if err != nil {
		return errors.Wrap(err, "failed to marshal registration")
	}

	url := fmt.Sprintf("%s/api/services/register", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build registration request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "registration failed for %s", registration.ServiceID)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return errors.Errorf("registration for %s returned status %d", registration.ServiceID, resp.StatusCode)
	}

	return nil
}

// RegisterWithRetry keeps retrying registration until it succeeds or the
// context is cancelled. Services come up in arbitrary order, so the registry
// may not be reachable on the first attempt.
func (c *Client) RegisterWithRetry(ctx context.Context, registration *ServiceRegistration, interval time.Duration) {
	for {
		err := c.Register(ctx, registration)
		if err == nil {
			c.logger.Info("registered with service registry", "service_id", registration.ServiceID)
			return
		}

		c.logger.Warn("registry registration failed, will retry",
			"service_id", registration.ServiceID,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
