// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the peer protocol: how this
// node asks another content node for its state.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnavailable] for transport failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/snapback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/replica_adapter_mock.go -package=mock

// ReplicaAdapter queries a peer content node identified by its endpoint
// (e.g. "http://cn2.example.com:4000").
type ReplicaAdapter interface {
	// GetClockStatus returns the peer's clock and full files hash for wallet.
	// A peer that does not store the user reports clock -1.
	GetClockStatus(ctx context.Context, endpoint, wallet string) (models.ReplicaObservation, error)

	// GetVersion returns the version the peer reports on its health check.
	GetVersion(ctx context.Context, endpoint string) (string, error)
}
