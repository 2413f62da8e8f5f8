// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// defaultHTTPAddress is used when no listen address was provided by any
// configuration source.
const defaultHTTPAddress = "localhost:8080"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults
// for optional values.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Auth.BcryptCost < 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
