package config

import (
	"fmt"
	"os"
	"strings"
)

func (cfg *StructuredConfig) resolveSecrets() error {
	if cfg.Relay.SharedSecret != "" || cfg.Relay.SharedSecretFile == "" {
		return nil
	}

	secret, err := os.ReadFile(cfg.Relay.SharedSecretFile)
	if err != nil {
		return fmt.Errorf("error reading relay shared secret file: %w", err)
	}

	cfg.Relay.SharedSecret = strings.TrimSpace(string(secret))
	return nil
}
