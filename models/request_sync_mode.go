// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncModeRequest is the body of POST /api/sync-mode.
type SyncModeRequest struct {
	// Wallet identifies the user whose replicas are compared.
	Wallet string `json:"wallet"`

	// PrimaryClock and SecondaryClock are the clocks observed on each replica.
	// A missing field decodes as 0, which the modern decider rejects.
	PrimaryClock   int64 `json:"primaryClock"`
	SecondaryClock int64 `json:"secondaryClock"`

	// PrimaryFilesHash and SecondaryFilesHash distinguish an absent field
	// (unset, rejected) from an explicit null (no content, accepted).
	PrimaryFilesHash   FilesHash `json:"primaryFilesHash,omitzero"`
	SecondaryFilesHash FilesHash `json:"secondaryFilesHash,omitzero"`

	// Legacy selects clock-only comparison for replicas without files hash
	// support.
	Legacy bool `json:"legacy,omitempty"`
}

// Input converts the request into decider input.
func (r SyncModeRequest) Input() SyncModeInput {
	return SyncModeInput{
		Wallet:             r.Wallet,
		PrimaryClock:       r.PrimaryClock,
		SecondaryClock:     r.SecondaryClock,
		PrimaryFilesHash:   r.PrimaryFilesHash,
		SecondaryFilesHash: r.SecondaryFilesHash,
	}
}

// SyncModeResponse is the body returned by POST /api/sync-mode.
type SyncModeResponse struct {
	SyncMode SyncMode `json:"syncMode"`
}

// ReplicaSyncRequest is the body of POST /api/sync-mode/replica. The serving
// node acts as primary.
type ReplicaSyncRequest struct {
	Wallet    string `json:"wallet"`
	Secondary string `json:"secondary"`
}

// SyncModeResult describes a decision taken for one replica pair.
type SyncModeResult struct {
	Wallet         string   `json:"wallet"`
	Secondary      string   `json:"secondary"`
	SyncMode       SyncMode `json:"syncMode"`
	Legacy         bool     `json:"legacy"`
	PrimaryClock   int64    `json:"primaryClock"`
	SecondaryClock int64    `json:"secondaryClock"`
}
