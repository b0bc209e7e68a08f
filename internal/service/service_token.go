// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// SignOption customizes a single [TokenService.Sign] call.
type SignOption func(*signOptions)

type signOptions struct {
	expiry time.Duration
}

// WithExpiry overrides the configured token lifetime for one token.
// Non-positive values are ignored.
func WithExpiry(d time.Duration) SignOption {
	return func(o *signOptions) {
		if d > 0 {
			o.expiry = d
		}
	}
}

// tokenService signs HS256 tokens with the secret captured at construction.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewTokenService constructs a [TokenService] from the app configuration.
// An empty secret is rejected with [config.ErrEmptyTokenSignKey].
func NewTokenService(cfg config.App) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, config.ErrEmptyTokenSignKey
	}

	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = config.DefaultTokenDuration
	}

	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: duration,
	}, nil
}

func (s *tokenService) Sign(payload models.TokenPayload, opts ...SignOption) (string, error) {
	o := signOptions{expiry: s.duration}
	for _, opt := range opts {
		opt(&o)
	}

	token, err := utils.GenerateJWTToken(payload, s.issuer, o.expiry, s.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func (s *tokenService) Verify(token string) (models.TokenPayload, bool) {
	payload, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		return models.TokenPayload{}, false
	}
	return payload, true
}
