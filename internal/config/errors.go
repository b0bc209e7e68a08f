// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration cannot be used.
var (
	// ErrEmptyTokenSignKey indicates that no token signing secret was given.
	ErrEmptyTokenSignKey = errors.New("token sign key is required (APP_TOKEN_SIGN_KEY)")
	// ErrInvalidTokenDuration indicates a negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrEmptyDatabaseDSN indicates that no PostgreSQL DSN was given.
	ErrEmptyDatabaseDSN = errors.New("database DSN is required (STORAGE_DB_DATABASE_URI)")
	// ErrInvalidStorageConfigs indicates negative pool, TTL or Redis DB values.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
