// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// TransactionSchema validates new transactions.
type TransactionSchema struct {
	ids IDGenerator
	now func() time.Time
}

func NewTransactionSchema(ids IDGenerator, now func() time.Time) *TransactionSchema {
	return &TransactionSchema{ids: ids, now: now}
}

func (s *TransactionSchema) Parse(ctx context.Context, fields Fields) (models.Transaction, error) {
	var errs ValidationErrors
	now := s.now()

	tx := models.Transaction{
		UUID:   fields.uuid(&errs, FieldUUID, false, s.ids),
		Wallet: fields.uuid(&errs, FieldWallet, true, s.ids),
	}
	tx.Name, _ = fields.str(&errs, FieldName, true, MsgNameRequired)
	tx.Desc = fields.optionalStr(&errs, FieldDesc)
	tx.Amount, _ = fields.amount(&errs, true)

	if t, ok := fields.transactionType(&errs, true); ok {
		tx.Type = models.TransactionType(t)
	}

	tx.Date = fields.optionalDate(&errs, FieldDate)
	tx.CreatedAt = fields.dateOr(&errs, FieldCreatedAt, now)
	tx.UpdatedAt = fields.dateOr(&errs, FieldUpdatedAt, now)

	if err := errs.err(); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// UpdateTransactionSchema validates partial transaction updates. Every field
// is optional; UpdatedAt is always set to the current time.
type UpdateTransactionSchema struct {
	now func() time.Time
}

func NewUpdateTransactionSchema(now func() time.Time) *UpdateTransactionSchema {
	return &UpdateTransactionSchema{now: now}
}

func (s *UpdateTransactionSchema) Parse(ctx context.Context, fields Fields) (models.TransactionUpdate, error) {
	var errs ValidationErrors

	var update models.TransactionUpdate

	if name, ok := fields.str(&errs, FieldName, false, ""); ok {
		if name == "" {
			errs.add(FieldName, MsgNameRequired)
		} else {
			update.Name = &name
		}
	}
	update.Desc = fields.optionalStr(&errs, FieldDesc)

	if amount, ok := fields.amount(&errs, false); ok {
		update.Amount = &amount
	}
	if t, ok := fields.transactionType(&errs, false); ok {
		tt := models.TransactionType(t)
		update.Type = &tt
	}
	update.Date = fields.optionalDate(&errs, FieldDate)
	update.UpdatedAt = s.now()

	if err := errs.err(); err != nil {
		return models.TransactionUpdate{}, err
	}
	return update, nil
}
