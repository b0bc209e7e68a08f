// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages bundles the repositories used by the service layer together with
// the connections backing them.
type Storages struct {
	UserRepository        UserRepository
	WalletRepository      WalletRepository
	TransactionRepository TransactionRepository

	db    *DB
	cache *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and, when a Redis
// address is configured, puts the wallet lookups behind a cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := newStoragesFromDB(db, log)

	if cfg.Cache.Enabled() {
		client, err := NewConnectRedis(ctx, cfg.Cache, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.cache = client
		storages.WalletRepository = NewCachedWalletRepository(storages.WalletRepository, client, cfg.Cache.TTL, log)
	}

	return storages, nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		WalletRepository:      NewWalletRepository(db, log),
		TransactionRepository: NewTransactionRepository(db, log),
		db:                    db,
	}
}

// PingContext implements [Pinger]: it checks PostgreSQL and, if enabled,
// Redis.
func (s *Storages) PingContext(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.cache != nil {
		errs = append(errs, s.cache.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
