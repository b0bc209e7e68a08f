// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the walletctl settings, read from the environment.
type Config struct {
	// ServerAddress is the base address of the wallet keeper HTTP API.
	ServerAddress string `env:"WALLETCTL_SERVER" envDefault:"localhost:8080"`

	// TokenFile stores the token of the last login. Empty means
	// <user config dir>/walletctl/token.
	TokenFile string `env:"WALLETCTL_TOKEN_FILE"`

	Timeout time.Duration `env:"WALLETCTL_TIMEOUT" envDefault:"15s"`
}

// LoadConfig parses [Config] from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("error parsing walletctl env: %w", err)
	}

	if cfg.TokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.TokenFile = filepath.Join(dir, "walletctl", "token")
	}

	return cfg, nil
}
