// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReplicaObservation is the state one replica reports for a user.
type ReplicaObservation struct {
	// Clock is the user's state-version counter on the replica. A replica
	// without the user reports -1.
	Clock int64 `json:"clockValue"`

	// FilesHash is the fingerprint of the user's content on the replica.
	FilesHash FilesHash `json:"filesHash,omitzero"`
}

// RangeDigestQuery asks for the files hash of a user's content restricted to
// ClockMin <= clock < ClockMax. ClockMax <= 0 means no upper bound.
type RangeDigestQuery struct {
	Wallet   string
	ClockMin int64
	ClockMax int64
}

// NewSecondaryRangeQuery builds the query comparing the primary's history with
// a secondary at secondaryClock: the range [0, secondaryClock+1).
func NewSecondaryRangeQuery(wallet string, secondaryClock int64) RangeDigestQuery {
	return RangeDigestQuery{
		Wallet:   wallet,
		ClockMin: 0,
		ClockMax: secondaryClock + 1,
	}
}

// SyncModeInput carries the observations of one (primary, secondary) pair.
type SyncModeInput struct {
	Wallet             string
	PrimaryClock       int64
	SecondaryClock     int64
	PrimaryFilesHash   FilesHash
	SecondaryFilesHash FilesHash
}

// ClockStatusQuery selects what a clock status lookup reports besides the
// clock. Without ReturnFilesHash the hash is left unset.
type ClockStatusQuery struct {
	Wallet          string
	ReturnFilesHash bool

	// Range restricts the reported hash. Nil means the user's full history.
	Range *RangeDigestQuery
}
