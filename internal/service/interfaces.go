package service

import (
	"context"

	"github.com/MKhiriev/snapback/models"
)

// SyncModeService decides the reconciliation action for one (primary,
// secondary) replica pair of a user. Implementations hold no per-call state
// and are safe for concurrent use.
type SyncModeService interface {
	// ComputeSyncMode is used when both replicas support files hash
	// comparison. It returns an error wrapping ErrInvalidInput when a clock is
	// not positive or a files hash is unset. A failed range lookup is not an
	// error: it is logged and yields models.SyncModeNone.
	ComputeSyncMode(ctx context.Context, in models.SyncModeInput) (models.SyncMode, error)

	// ComputeLegacySyncMode is used when at least one replica predates files
	// hash support. It compares clocks only.
	ComputeLegacySyncMode(primaryClock, secondaryClock int64) models.SyncMode
}

// DigestLookup fetches the files hash of the local replica over a clock range.
// Any returned error is treated as a lookup failure.
type DigestLookup interface {
	FetchFilesHash(ctx context.Context, query models.RangeDigestQuery) (models.FilesHash, error)
}

// ReplicaSyncService evaluates a single replica pair in which this node is
// the primary and the secondary is reached over HTTP.
type ReplicaSyncService interface {
	// ComputeSyncModeForReplica reads the local clock status for wallet, the
	// secondary's clock status and version, picks the modern or legacy decider
	// and returns the decision.
	ComputeSyncModeForReplica(ctx context.Context, wallet, secondary string) (models.SyncModeResult, error)
}

// ClockStatusService reports this node's state for a user, as peers read it
// from GET /users/clock_status/{wallet}.
type ClockStatusService interface {
	// GetClockStatus returns the user's clock and, when requested, the files
	// hash over the full history or over query.Range. An invalid range wraps
	// ErrInvalidInput.
	GetClockStatus(ctx context.Context, query models.ClockStatusQuery) (models.ReplicaObservation, error)
}

// AppInfoService exposes static information about the running node.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// GetHealthCheck returns the payload of GET /health_check.
	GetHealthCheck(ctx context.Context) models.HealthCheckData
}
