package models

// ClockStatusResponse is the envelope of GET /users/clock_status/{wallet}.
// Peers read the same shape through the replica adapter.
type ClockStatusResponse struct {
	Data ReplicaObservation `json:"data"`
}

// HealthCheckData carries the node version used for protocol negotiation.
type HealthCheckData struct {
	// Version is the semantic version of the node (e.g. "0.3.51").
	Version string `json:"version"`
}

// HealthCheckResponse is the envelope of GET /health_check.
type HealthCheckResponse struct {
	Data HealthCheckData `json:"data"`
}
