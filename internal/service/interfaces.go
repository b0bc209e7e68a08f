// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// Sign returns a signed token for payload. See [WithExpiry].
	Sign(payload models.TokenPayload, opts ...SignOption) (string, error)

	// Verify reports whether token is authentic and unexpired and, if so,
	// returns its payload. It never returns an error.
	Verify(token string) (models.TokenPayload, bool)
}

// UserService registers users and logs them in.
type UserService interface {
	// Register validates fields, hashes the password and stores the user
	// together with its default wallet.
	Register(ctx context.Context, fields validators.Fields) (models.User, error)

	// Login checks credentials and issues a token for the user.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)
}

// TransactionService manages the transactions of the caller's wallet.
// Every method resolves the wallet owned by identity first.
type TransactionService interface {
	Create(ctx context.Context, identity models.Identity, fields validators.Fields) (models.Transaction, error)
	List(ctx context.Context, identity models.Identity, page models.PageRequest) ([]models.Transaction, models.PageMeta, error)
	Get(ctx context.Context, identity models.Identity, id string) (models.Transaction, error)
	Update(ctx context.Context, identity models.Identity, id string, fields validators.Fields) (models.TransactionUpdate, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
