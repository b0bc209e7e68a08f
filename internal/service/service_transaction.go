// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Pagination bounds for [TransactionService.List].
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type transactionService struct {
	walletRepository      store.WalletRepository
	transactionRepository store.TransactionRepository

	createSchema validators.Schema[models.Transaction]
	updateSchema validators.Schema[models.TransactionUpdate]

	logger *logger.Logger
}

// NewTransactionService constructs a TransactionService over the given
// repositories.
func NewTransactionService(
	walletRepository store.WalletRepository,
	transactionRepository store.TransactionRepository,
	ids validators.IDGenerator,
	logger *logger.Logger,
) TransactionService {
	return &transactionService{
		walletRepository:      walletRepository,
		transactionRepository: transactionRepository,
		createSchema:          validators.NewTransactionSchema(ids, now),
		updateSchema:          validators.NewUpdateTransactionSchema(now),
		logger:                logger,
	}
}

// wallet resolves the wallet owned by identity.
func (s *transactionService) wallet(ctx context.Context, identity models.Identity) (models.Wallet, error) {
	if identity.ID == "" {
		return models.Wallet{}, ErrUnauthenticated
	}

	wallet, err := s.walletRepository.FindWalletByOwner(ctx, identity.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionService.wallet").Str("owner", identity.ID).Msg("wallet lookup failed")
		return models.Wallet{}, fmt.Errorf("wallet lookup failed: %w", err)
	}
	return wallet, nil
}

// Create records a transaction in the caller's wallet. A wallet supplied in
// fields is replaced by the caller's.
func (s *transactionService) Create(ctx context.Context, identity models.Identity, fields validators.Fields) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	wallet, err := s.wallet(ctx, identity)
	if err != nil {
		return models.Transaction{}, err
	}

	tx, err := s.createSchema.Parse(ctx, fields.With(validators.FieldWallet, wallet.UUID))
	if err != nil {
		log.Debug().Err(err).Str("func", "*transactionService.Create").Msg("transaction validation failed")
		return models.Transaction{}, err
	}

	if err := s.transactionRepository.CreateTransaction(ctx, tx); err != nil {
		log.Err(err).Str("func", "*transactionService.Create").Msg("error saving transaction")
		return models.Transaction{}, fmt.Errorf("error saving transaction: %w", err)
	}

	return tx, nil
}

// List returns one page of the caller's transactions, newest first.
// Out-of-range page and limit values fall back to the defaults; limit is
// capped at [MaxLimit].
func (s *transactionService) List(ctx context.Context, identity models.Identity, page models.PageRequest) ([]models.Transaction, models.PageMeta, error) {
	log := logger.FromContext(ctx)

	wallet, err := s.wallet(ctx, identity)
	if err != nil {
		return nil, models.PageMeta{}, err
	}

	page = NormalizePage(page)

	total, err := s.transactionRepository.CountTransactions(ctx, wallet.UUID)
	if err != nil {
		log.Err(err).Str("func", "*transactionService.List").Msg("error counting transactions")
		return nil, models.PageMeta{}, fmt.Errorf("error counting transactions: %w", err)
	}

	meta := models.NewPageMeta(page.Page, page.Limit, total)
	if page.Page > 1 && int64(page.Page) > meta.TotalPages {
		return []models.Transaction{}, meta, nil
	}

	list, err := s.transactionRepository.ListTransactions(ctx, wallet.UUID, page.Offset(), page.Limit)
	if err != nil {
		log.Err(err).Str("func", "*transactionService.List").Msg("error listing transactions")
		return nil, models.PageMeta{}, fmt.Errorf("error listing transactions: %w", err)
	}

	return list, meta, nil
}

// NormalizePage applies the pagination defaults and the limit cap.
func NormalizePage(page models.PageRequest) models.PageRequest {
	if page.Page < 1 {
		page.Page = DefaultPage
	}
	if page.Limit < 1 {
		page.Limit = DefaultLimit
	}
	if page.Limit > MaxLimit {
		page.Limit = MaxLimit
	}
	return page
}

// Get returns the transaction id from the caller's wallet. Ids that are not
// UUIDs and ids from other wallets are reported as [store.ErrTransactionNotFound].
func (s *transactionService) Get(ctx context.Context, identity models.Identity, id string) (models.Transaction, error) {
	wallet, err := s.wallet(ctx, identity)
	if err != nil {
		return models.Transaction{}, err
	}

	if !utils.IsUUID(id) {
		return models.Transaction{}, store.ErrTransactionNotFound
	}

	tx, err := s.transactionRepository.FindTransaction(ctx, id, wallet.UUID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("error finding transaction: %w", err)
	}
	return tx, nil
}

// Update applies a partial change to the transaction id in the caller's
// wallet and returns the validated change set.
func (s *transactionService) Update(ctx context.Context, identity models.Identity, id string, fields validators.Fields) (models.TransactionUpdate, error) {
	log := logger.FromContext(ctx)

	wallet, err := s.wallet(ctx, identity)
	if err != nil {
		return models.TransactionUpdate{}, err
	}

	if !utils.IsUUID(id) {
		return models.TransactionUpdate{}, store.ErrTransactionNotFound
	}

	if _, err := s.transactionRepository.FindTransaction(ctx, id, wallet.UUID); err != nil {
		return models.TransactionUpdate{}, fmt.Errorf("error finding transaction: %w", err)
	}

	update, err := s.updateSchema.Parse(ctx, fields)
	if err != nil {
		log.Debug().Err(err).Str("func", "*transactionService.Update").Msg("update validation failed")
		return models.TransactionUpdate{}, err
	}

	if err := s.transactionRepository.UpdateTransaction(ctx, id, wallet.UUID, update); err != nil {
		log.Err(err).Str("func", "*transactionService.Update").Str("id", id).Msg("error updating transaction")
		return models.TransactionUpdate{}, fmt.Errorf("error updating transaction: %w", err)
	}

	return update, nil
}

// Delete removes the transaction id from the caller's wallet.
func (s *transactionService) Delete(ctx context.Context, identity models.Identity, id string) error {
	wallet, err := s.wallet(ctx, identity)
	if err != nil {
		return err
	}

	if !utils.IsUUID(id) {
		return store.ErrTransactionNotFound
	}

	if err := s.transactionRepository.DeleteTransaction(ctx, id, wallet.UUID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionService.Delete").Str("id", id).Msg("error deleting transaction")
		return fmt.Errorf("error deleting transaction: %w", err)
	}
	return nil
}
