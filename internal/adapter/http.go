package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/utils"
	"github.com/MKhiriev/snapback/models"
)

const (
	clockStatusPath = "/users/clock_status/{wallet}"
	healthCheckPath = "/health_check"
)

type httpReplicaAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPReplicaAdapter constructs an HTTP implementation of [ReplicaAdapter].
// Every request is bounded by cfg.RequestTimeout and retried cfg.RetryCount
// times on transport errors and 5xx responses.
func NewHTTPReplicaAdapter(cfg config.Adapter, logger *logger.Logger) ReplicaAdapter {
	return newHTTPReplicaAdapter(utils.NewHTTPClient(cfg.RequestTimeout, cfg.RetryCount), logger)
}

func newHTTPReplicaAdapter(client *utils.HTTPClient, logger *logger.Logger) *httpReplicaAdapter {
	return &httpReplicaAdapter{client: client, logger: logger}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidEndpoint)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidEndpoint)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetClockStatus implements [ReplicaAdapter]. It calls
// GET {endpoint}/users/clock_status/{wallet}?returnFilesHash=true.
func (h *httpReplicaAdapter) GetClockStatus(ctx context.Context, endpoint, wallet string) (models.ReplicaObservation, error) {
	baseURL, err := normalizeBaseURL(endpoint)
	if err != nil {
		return models.ReplicaObservation{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("wallet", wallet).
		SetQueryParam("returnFilesHash", "true").
		Get(baseURL + clockStatusPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*httpReplicaAdapter.GetClockStatus").
			Str("endpoint", baseURL).
			Msg("clock status request failed")
		return models.ReplicaObservation{}, fmt.Errorf("%w: clock status request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReplicaObservation{}, err
	}

	var status models.ClockStatusResponse
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.ReplicaObservation{}, fmt.Errorf("%w: clock status: %w", ErrMalformedResponse, err)
	}

	return status.Data, nil
}

// GetVersion implements [ReplicaAdapter]. It calls GET {endpoint}/health_check.
func (h *httpReplicaAdapter) GetVersion(ctx context.Context, endpoint string) (string, error) {
	baseURL, err := normalizeBaseURL(endpoint)
	if err != nil {
		return "", err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(baseURL + healthCheckPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*httpReplicaAdapter.GetVersion").
			Str("endpoint", baseURL).
			Msg("health check request failed")
		return "", fmt.Errorf("%w: health check request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var health models.HealthCheckResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return "", fmt.Errorf("%w: health check: %w", ErrMalformedResponse, err)
	}

	return health.Data.Version, nil
}
