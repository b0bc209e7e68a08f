// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"time"
)

// Default values applied by applyDefaults.
const (
	DefaultTokenDuration  = 24 * time.Hour
	DefaultEnvironment    = "production"
	DefaultLogLevel       = "info"
	DefaultVersion        = "N/A"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAuthRateLimit  = 10
	DefaultMaxOpenConns   = 10
	DefaultCacheTTL       = 5 * time.Minute
)

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = DefaultEnvironment
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.AuthRateLimit == 0 {
		cfg.Server.AuthRateLimit = DefaultAuthRateLimit
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = DefaultCacheTTL
	}
}

// validate checks that the final merged [StructuredConfig] can be used to
// start the server. All problems are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrEmptyTokenSignKey)
	}
	if cfg.App.TokenDuration < 0 {
		errs = append(errs, ErrInvalidTokenDuration)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrEmptyDatabaseDSN)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		errs = append(errs, ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Cache.TTL < 0 || cfg.Storage.Cache.RedisDB < 0 {
		errs = append(errs, ErrInvalidStorageConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}
