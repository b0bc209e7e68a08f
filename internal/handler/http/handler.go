// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
)

// Settings tune the HTTP transport.
type Settings struct {
	// ExposeErrors adds the internal error text to 500 responses.
	ExposeErrors bool

	// RequestTimeout bounds every request. Zero disables the timeout.
	RequestTimeout time.Duration

	// AuthRateLimit is the number of requests per minute and client IP
	// accepted on the register and login routes. Non-positive disables it.
	AuthRateLimit int
}

// SettingsFromConfig derives [Settings] from the application configuration.
func SettingsFromConfig(cfg config.StructuredConfig) Settings {
	return Settings{
		ExposeErrors:   !cfg.App.IsProduction(),
		RequestTimeout: cfg.Server.RequestTimeout,
		AuthRateLimit:  cfg.Server.AuthRateLimit,
	}
}

type Handler struct {
	services     *service.Services
	authResolver *authResolver
	settings     Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		authResolver: newAuthResolver(services.TokenService),
		settings:     settings,
		logger:       logger,
	}
}
