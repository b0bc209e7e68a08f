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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUserWithWallet inserts user and wallet in one SQL transaction and
// returns user with the server-assigned UserID.
//
// Error handling:
//   - unique_violation (23505) on users.uuid or wallets.uuid → [ErrUUIDAlreadyExists].
//   - any other unique_violation → [ErrNameAlreadyExists].
//   - begin/commit failures → [ErrBeginningTransaction] / [ErrCommitingTransaction].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUserWithWallet(ctx context.Context, user models.User, wallet models.Wallet) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createUser,
			user.UUID, user.Name, user.FirstName, user.LastName, user.Password, user.CreatedAt, user.UpdatedAt)
		if err := row.Scan(&user.UserID); err != nil {
			return r.mapWriteError(err)
		}

		if _, err := tx.ExecContext(ctx, createWallet,
			wallet.UUID, wallet.Owner, wallet.Name, wallet.Desc, wallet.CreatedAt, wallet.UpdatedAt); err != nil {
			return r.mapWriteError(err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithWallet").Msg("error creating user with wallet")
		return models.User{}, err
	}

	return user, nil
}

// Default names of the unique constraints created by the migrations.
const (
	constraintUserUUID   = "users_uuid_key"
	constraintWalletUUID = "wallets_pkey"
)

func (r *userRepository) mapWriteError(err error) error {
	switch r.db.classify(err) {
	case UniqueViolation:
		switch ConstraintName(err) {
		case constraintUserUUID, constraintWalletUUID:
			return ErrUUIDAlreadyExists
		}
		return ErrNameAlreadyExists
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// FindUserByName retrieves the user whose Name equals name.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - any other error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.QueryRowContext(ctx, findUserByName, name).Scan(
		&found.UserID,
		&found.UUID,
		&found.Name,
		&found.FirstName,
		&found.LastName,
		&found.Password,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByName").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
