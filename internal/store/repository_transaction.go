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

type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransactionRepository constructs a PostgreSQL-backed [TransactionRepository].
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		tx   models.Transaction
		desc sql.NullString
		typ  int16
		date sql.NullTime
	)

	if err := row.Scan(
		&tx.UUID,
		&tx.Wallet,
		&tx.Name,
		&desc,
		&tx.Amount,
		&typ,
		&date,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	); err != nil {
		return models.Transaction{}, err
	}

	tx.Type = models.TransactionType(typ)
	if desc.Valid {
		tx.Desc = &desc.String
	}
	if date.Valid {
		tx.Date = &date.Time
	}
	return tx, nil
}

// CreateTransaction inserts tx.
//
// Error handling:
//   - unique_violation → [ErrTransactionConflict].
//   - foreign_key_violation (unknown wallet) → [ErrWalletNotFound].
//   - any other error → wrapped [ErrExecutingQuery].
func (r *transactionRepository) CreateTransaction(ctx context.Context, tx models.Transaction) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createTransaction,
		tx.UUID, tx.Wallet, tx.Name, tx.Desc, tx.Amount, int16(tx.Type), tx.Date, tx.CreatedAt, tx.UpdatedAt)
	if err == nil {
		return nil
	}

	log.Err(err).Str("func", "*transactionRepository.CreateTransaction").Msg("error inserting transaction")
	switch r.db.classify(err) {
	case UniqueViolation:
		return ErrTransactionConflict
	case ForeignKeyViolation:
		return ErrWalletNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *transactionRepository) ListTransactions(ctx context.Context, wallet string, offset, limit int) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(wallet, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListTransactions").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListTransactions").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.Transaction, 0, limit)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			log.Err(err).Str("func", "*transactionRepository.ListTransactions").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListTransactions").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *transactionRepository) CountTransactions(ctx context.Context, wallet string) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countTransactions, wallet).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionRepository.CountTransactions").Msg("error counting transactions")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return total, nil
}

func (r *transactionRepository) FindTransaction(ctx context.Context, id, wallet string) (models.Transaction, error) {
	tx, err := scanTransaction(r.db.QueryRowContext(ctx, findTransaction, id, wallet))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, ErrTransactionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionRepository.FindTransaction").Msg("error finding transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return tx, nil
}

// UpdateTransaction applies update to the transaction id inside wallet.
// Zero affected rows → [ErrTransactionNotFound].
func (r *transactionRepository) UpdateTransaction(ctx context.Context, id, wallet string, update models.TransactionUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTransactionQuery(id, wallet, update)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.UpdateTransaction").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.UpdateTransaction").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(result, ErrTransactionNotFound)
}

// DeleteTransaction removes the transaction id inside wallet.
// Zero affected rows → [ErrTransactionNotFound].
func (r *transactionRepository) DeleteTransaction(ctx context.Context, id, wallet string) error {
	result, err := r.db.ExecContext(ctx, deleteTransaction, id, wallet)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionRepository.DeleteTransaction").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(result, ErrTransactionNotFound)
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
