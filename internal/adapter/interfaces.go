// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client SDK for the wallet keeper HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides the REST transport
// and the response envelope from callers such as cmd/walletctl. Failed
// requests are mapped from HTTP status codes to the sentinel errors in
// errors.go, so callers can use [errors.Is] (for example [ErrNotFound] for
// 404 or [ErrUnauthorized] for 401).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/shopspring/decimal"
)

// ServerAdapter defines communication with the wallet keeper server.
// Implementations are responsible for serialisation, authentication header
// management and error mapping.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Register creates a user together with its default wallet.
	Register(ctx context.Context, req RegisterRequest) (models.User, error)

	// Login authenticates with name and password. On success the returned
	// access token is stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)

	CreateTransaction(ctx context.Context, req TransactionRequest) (models.Transaction, error)
	ListTransactions(ctx context.Context, page models.PageRequest) ([]models.Transaction, models.PageMeta, error)
	GetTransaction(ctx context.Context, id string) (models.Transaction, error)

	// UpdateTransaction sends a partial change set. Keys absent from fields
	// are left untouched on the server.
	UpdateTransaction(ctx context.Context, id string, fields map[string]any) (models.TransactionUpdate, error)

	DeleteTransaction(ctx context.Context, id string) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// TransactionRequest is the body of POST /transactions. The wallet is always
// the caller's own, so it is not part of the request.
type TransactionRequest struct {
	Name   string                 `json:"name"`
	Desc   *string                `json:"desc,omitempty"`
	Amount decimal.Decimal        `json:"amount"`
	Type   models.TransactionType `json:"type"`
	Date   *time.Time             `json:"date,omitempty"`
}
