// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can run the
// portal server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	dsn := cfg.Storage.DB.DSN
	if dsn == "" || strings.Contains(dsn, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	for _, endpoint := range []string{cfg.Relay.SendMessageURL, cfg.Relay.HistoryURL, cfg.Relay.SessionsURL} {
		if err := validateEndpoint(endpoint); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRelayConfigs, err)
		}
	}
	if cfg.Relay.SharedSecret == "" || cfg.Relay.RequestTimeout <= 0 {
		return ErrInvalidRelayConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("endpoint %q must be an absolute http(s) URL", endpoint)
	}

	return nil
}
