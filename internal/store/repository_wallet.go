// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type walletRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWalletRepository constructs a PostgreSQL-backed [WalletRepository].
func NewWalletRepository(db *DB, logger *logger.Logger) WalletRepository {
	logger.Debug().Msg("creating wallet repository")
	return &walletRepository{
		db:     db,
		logger: logger,
	}
}

// FindWalletByOwner returns the owner's oldest wallet. Users get exactly one
// wallet at registration, so in practice this is the default wallet.
func (r *walletRepository) FindWalletByOwner(ctx context.Context, owner string) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	var (
		wallet models.Wallet
		desc   sql.NullString
	)
	err := r.db.QueryRowContext(ctx, findWalletByOwner, owner).Scan(
		&wallet.UUID,
		&wallet.Owner,
		&wallet.Name,
		&desc,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Wallet{}, ErrWalletNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*walletRepository.FindWalletByOwner").Msg("error finding wallet")
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if desc.Valid {
		wallet.Desc = &desc.String
	}
	return wallet, nil
}
