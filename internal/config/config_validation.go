// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/snapback/internal/utils"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if v := cfg.App.MinFilesHashVersion; utils.CanonicalVersion(v) == "" {
		return fmt.Errorf("%w: min files hash version %q is not a semantic version", ErrInvalidAppConfigs, v)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.FetchFilesHashAttempts == 0 {
		return fmt.Errorf("%w: at least one lookup attempt is required", ErrInvalidSyncConfigs)
	}
	if cfg.Sync.MaxBackoff > 0 && cfg.Sync.MaxBackoff < cfg.Sync.InitialBackoff {
		return fmt.Errorf("%w: max backoff is lower than initial backoff", ErrInvalidSyncConfigs)
	}

	return nil
}
