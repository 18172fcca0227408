// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validateSecrets requires both process secrets. Their absence is a fatal
// startup error, never a per-request one.
func (cfg *StructuredConfig) validateSecrets() error {
	var err error
	if cfg.App.PasswordHashKey == "" {
		err = errors.Join(err, ErrMissingPasswordHashKey)
	}
	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrMissingTokenSignKey)
	}
	if cfg.App.TokenDuration <= 0 {
		err = errors.Join(err, ErrInvalidTokenDuration)
	}

	return err
}

func (cfg *StructuredConfig) validateAdmin() error {
	err := cfg.validateSecrets()
	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrMissingDSN)
	}

	return err
}

func (cfg *StructuredConfig) validateServer() error {
	err := cfg.validateAdmin()
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		err = errors.Join(err, ErrMissingServerAddress)
	}

	return err
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
