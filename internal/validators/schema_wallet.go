// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// WalletSchema validates wallets. Registration runs it on the derived
// default wallet.
type WalletSchema struct {
	ids IDGenerator
	now func() time.Time
}

func NewWalletSchema(ids IDGenerator, now func() time.Time) *WalletSchema {
	return &WalletSchema{ids: ids, now: now}
}

func (s *WalletSchema) Parse(ctx context.Context, fields Fields) (models.Wallet, error) {
	var errs ValidationErrors
	now := s.now()

	wallet := models.Wallet{
		UUID:  fields.uuid(&errs, FieldUUID, false, s.ids),
		Owner: fields.uuid(&errs, FieldOwner, true, s.ids),
	}
	wallet.Name, _ = fields.str(&errs, FieldName, true, MsgNameRequired)
	wallet.Desc = fields.optionalStr(&errs, FieldDesc)
	wallet.CreatedAt = fields.dateOr(&errs, FieldCreatedAt, now)
	wallet.UpdatedAt = fields.dateOr(&errs, FieldUpdatedAt, now)

	if err := errs.err(); err != nil {
		return models.Wallet{}, err
	}
	return wallet, nil
}
