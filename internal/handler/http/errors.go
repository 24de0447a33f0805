// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidQueryParam is returned when a query parameter of
	// GET /users/clock_status/{wallet} cannot be parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the endpoint.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
