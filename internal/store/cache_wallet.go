// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/redis/go-redis/v9"
)

const walletCacheKeyPrefix = "wallet:owner:"

// cachedWalletRepository is a read-through Redis cache in front of a
// [WalletRepository]. Wallets never change after registration, so entries
// only expire by TTL. Redis failures are logged and the lookup falls back to
// the wrapped repository.
type cachedWalletRepository struct {
	next   WalletRepository
	client redis.Cmdable
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedWalletRepository wraps next with a Redis cache.
func NewCachedWalletRepository(next WalletRepository, client redis.Cmdable, ttl time.Duration, logger *logger.Logger) WalletRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating cached wallet repository")
	return &cachedWalletRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func walletCacheKey(owner string) string {
	return walletCacheKeyPrefix + owner
}

func (r *cachedWalletRepository) FindWalletByOwner(ctx context.Context, owner string) (models.Wallet, error) {
	log := logger.FromContext(ctx)
	key := walletCacheKey(owner)

	cached, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var wallet models.Wallet
		if err := json.Unmarshal(cached, &wallet); err == nil {
			return wallet, nil
		}
		log.Warn().Str("func", "*cachedWalletRepository.FindWalletByOwner").Str("key", key).Msg("dropping corrupt cache entry")
	case errors.Is(err, redis.Nil):
	default:
		log.Err(err).Str("func", "*cachedWalletRepository.FindWalletByOwner").Msg("redis get failed")
	}

	wallet, err := r.next.FindWalletByOwner(ctx, owner)
	if err != nil {
		return models.Wallet{}, err
	}

	payload, err := json.Marshal(wallet)
	if err != nil {
		return wallet, nil
	}
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		log.Err(err).Str("func", "*cachedWalletRepository.FindWalletByOwner").Msg("redis set failed")
	}

	return wallet, nil
}
