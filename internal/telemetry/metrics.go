// Package telemetry holds the OpenTelemetry instruments of the sync mode
// decider and the meter provider that exports them.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SyncModeMetricsMeterName is the instrumentation scope of the decider metrics.
const SyncModeMetricsMeterName = "github.com/MKhiriev/snapback/sync-mode"

// SyncModeMetrics holds the instruments recorded by the decider. A nil
// *SyncModeMetrics is valid and records nothing.
type SyncModeMetrics struct {
	decisionsTotal      metric.Int64Counter
	lookupFailuresTotal metric.Int64Counter
}

// NewSyncModeMetrics creates the instruments on provider. If provider is nil
// it returns nil.
func NewSyncModeMetrics(provider metric.MeterProvider) (*SyncModeMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncModeMetricsMeterName)

	decisionsTotal, err := meter.Int64Counter(
		"snapback_sync_mode_decisions_total",
		metric.WithDescription("Number of sync mode decisions by resulting mode"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, err
	}

	lookupFailuresTotal, err := meter.Int64Counter(
		"snapback_files_hash_lookup_failures_total",
		metric.WithDescription("Number of range files hash lookups that failed after all retries"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncModeMetrics{
		decisionsTotal:      decisionsTotal,
		lookupFailuresTotal: lookupFailuresTotal,
	}, nil
}

// RecordDecision counts one decision.
func (m *SyncModeMetrics) RecordDecision(ctx context.Context, mode string, legacy bool) {
	if m == nil || m.decisionsTotal == nil {
		return
	}

	m.decisionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.Bool("legacy", legacy),
	))
}

// RecordLookupFailure counts one exhausted range lookup.
func (m *SyncModeMetrics) RecordLookupFailure(ctx context.Context) {
	if m == nil || m.lookupFailuresTotal == nil {
		return
	}

	m.lookupFailuresTotal.Add(ctx, 1)
}
