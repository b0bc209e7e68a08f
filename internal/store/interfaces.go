// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUserWithWallet stores user and its default wallet atomically.
	// A taken name yields [ErrNameAlreadyExists] and nothing is written.
	CreateUserWithWallet(ctx context.Context, user models.User, wallet models.Wallet) (models.User, error)

	// FindUserByName returns the user with the given name or [ErrUserNotFound].
	FindUserByName(ctx context.Context, name string) (models.User, error)
}

// WalletRepository looks up wallets.
type WalletRepository interface {
	// FindWalletByOwner returns the wallet owned by the user with UUID owner,
	// or [ErrWalletNotFound].
	FindWalletByOwner(ctx context.Context, owner string) (models.Wallet, error)
}

// TransactionRepository stores transactions. Every method except
// CreateTransaction is scoped to a wallet: a transaction that exists in
// another wallet is reported as [ErrTransactionNotFound].
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) error

	// ListTransactions returns a page of the wallet's transactions, newest
	// first by creation time.
	ListTransactions(ctx context.Context, wallet string, offset, limit int) ([]models.Transaction, error)
	CountTransactions(ctx context.Context, wallet string) (int64, error)

	FindTransaction(ctx context.Context, id, wallet string) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id, wallet string, update models.TransactionUpdate) error
	DeleteTransaction(ctx context.Context, id, wallet string) error
}

// Pinger reports storage readiness for health checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}
