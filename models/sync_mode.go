// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// SyncMode is the reconciliation action required for one (primary, secondary)
// replica pair of a user. The zero value is not a valid mode.
type SyncMode uint8

const (
	// SyncModeNone means the replicas are considered consistent, or that the
	// decision was skipped for this cycle.
	SyncModeNone SyncMode = iota + 1

	// SyncModeSecondaryShouldSync means the secondary must pull state from
	// the primary.
	SyncModeSecondaryShouldSync

	// SyncModePrimaryShouldSync means the primary must reconcile with the
	// secondary: the secondary is ahead, or holds content the primary does
	// not reflect over the compared clock range.
	SyncModePrimaryShouldSync
)

// Wire tokens. Sync jobs and logs downstream parse these literally.
const (
	syncModeNoneToken                = "NONE"
	syncModeSecondaryShouldSyncToken = "SECONDARY_SHOULD_SYNC"
	syncModePrimaryShouldSyncToken   = "PRIMARY_SHOULD_SYNC"
)

// ErrUnknownSyncMode is returned when a token does not name a SyncMode.
var ErrUnknownSyncMode = errors.New("unknown sync mode")

// SyncModes lists every valid mode in declaration order.
var SyncModes = []SyncMode{
	SyncModeNone,
	SyncModeSecondaryShouldSync,
	SyncModePrimaryShouldSync,
}

func (m SyncMode) String() string {
	switch m {
	case SyncModeNone:
		return syncModeNoneToken
	case SyncModeSecondaryShouldSync:
		return syncModeSecondaryShouldSyncToken
	case SyncModePrimaryShouldSync:
		return syncModePrimaryShouldSyncToken
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether m is one of the three declared modes.
func (m SyncMode) IsValid() bool {
	return m >= SyncModeNone && m <= SyncModePrimaryShouldSync
}

// ParseSyncMode maps a wire token back to its SyncMode.
func ParseSyncMode(token string) (SyncMode, error) {
	switch token {
	case syncModeNoneToken:
		return SyncModeNone, nil
	case syncModeSecondaryShouldSyncToken:
		return SyncModeSecondaryShouldSync, nil
	case syncModePrimaryShouldSyncToken:
		return SyncModePrimaryShouldSync, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSyncMode, token)
	}
}

// MarshalText implements encoding.TextMarshaler. Marshalling the zero value
// fails so that an undecided mode never reaches a sync job record.
func (m SyncMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSyncMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SyncMode) UnmarshalText(text []byte) error {
	parsed, err := ParseSyncMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
