// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the inputs of the sync mode services before
// they reach the decider, the store or a peer.
//
// Validation can be scoped to named fields (see the Field* constants), so
// a caller holding a partial value checks only what it has, e.g. the
// wallet of a clock status query without a range.
package validators

import "context"

// Validator validates v. With no fields every rule for the type of v
// applies; otherwise only the named fields are checked. An unsupported
// type yields ErrUnsupportedType and an unknown field ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
