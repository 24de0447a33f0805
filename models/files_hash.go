// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type filesHashState uint8

const (
	filesHashUnset filesHashState = iota
	filesHashNull
	filesHashDigest
)

// FilesHash is the content fingerprint a replica reports for a user.
//
// It has three states that must never be collapsed:
//   - unset: never computed or never observed (zero value, JSON field absent);
//   - null: the replica holds no content for the user (JSON null, SQL NULL);
//   - digest: a concrete fingerprint string.
type FilesHash struct {
	digest string
	state  filesHashState
}

// NewFilesHash returns a FilesHash holding digest.
func NewFilesHash(digest string) FilesHash {
	return FilesHash{digest: digest, state: filesHashDigest}
}

// NullFilesHash returns the "no content" FilesHash.
func NullFilesHash() FilesHash {
	return FilesHash{state: filesHashNull}
}

// IsUnset reports whether the hash was never set.
func (h FilesHash) IsUnset() bool { return h.state == filesHashUnset }

// IsNull reports whether the replica holds no content.
func (h FilesHash) IsNull() bool { return h.state == filesHashNull }

// IsZero lets `omitzero` drop an unset hash from JSON output.
func (h FilesHash) IsZero() bool { return h.IsUnset() }

// Digest returns the fingerprint and whether one is present.
func (h FilesHash) Digest() (string, bool) {
	return h.digest, h.state == filesHashDigest
}

// Equal reports whether two observed hashes match. Null equals null.
// Unset hashes never compare equal to anything.
func (h FilesHash) Equal(other FilesHash) bool {
	if h.IsUnset() || other.IsUnset() {
		return false
	}
	return h.state == other.state && h.digest == other.digest
}

func (h FilesHash) String() string {
	switch h.state {
	case filesHashNull:
		return "<null>"
	case filesHashDigest:
		return h.digest
	default:
		return "<unset>"
	}
}

// MarshalJSON renders a digest as a string and everything else as null.
func (h FilesHash) MarshalJSON() ([]byte, error) {
	if h.state != filesHashDigest {
		return []byte("null"), nil
	}
	return json.Marshal(h.digest)
}

// UnmarshalJSON accepts a string or null. It is only invoked when the field is
// present, so an absent field keeps the unset zero value.
func (h *FilesHash) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*h = NullFilesHash()
		return nil
	}

	var digest string
	if err := json.Unmarshal(b, &digest); err != nil {
		return fmt.Errorf("files hash must be a string or null: %w", err)
	}
	*h = NewFilesHash(digest)
	return nil
}

// Scan implements sql.Scanner. SQL NULL maps to the "no content" state.
func (h *FilesHash) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*h = NullFilesHash()
	case string:
		*h = NewFilesHash(v)
	case []byte:
		*h = NewFilesHash(string(v))
	default:
		return fmt.Errorf("unsupported files hash column type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (h FilesHash) Value() (driver.Value, error) {
	if h.state != filesHashDigest {
		return nil, nil
	}
	return h.digest, nil
}
