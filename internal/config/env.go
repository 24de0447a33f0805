// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Each group reads the variables
// under its envPrefix (APP_, STORAGE_, SERVER_, ADAPTER_, SYNC_, TELEMETRY_);
// unset variables leave the zero value so defaults survive the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: false}); err != nil {
		return fmt.Errorf("error reading node config from env: %w", err)
	}
	return nil
}
