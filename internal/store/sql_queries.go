// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (uuid, name, first_name, last_name, password, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id;`

	findUserByName = `SELECT user_id, uuid, name, first_name, last_name, password, created_at, updated_at
    FROM users
    WHERE name = $1;`

	createWallet = `INSERT INTO wallets (uuid, owner, name, description, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	findWalletByOwner = `SELECT uuid, owner, name, description, created_at, updated_at
    FROM wallets
    WHERE owner = $1
    ORDER BY created_at
    LIMIT 1;`

	createTransaction = `INSERT INTO transactions (uuid, wallet, name, description, amount, type, date, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	findTransaction = `SELECT uuid, wallet, name, description, amount, type, date, created_at, updated_at
    FROM transactions
    WHERE uuid = $1 AND wallet = $2;`

	countTransactions = `SELECT COUNT(*) FROM transactions WHERE wallet = $1;`

	deleteTransaction = `DELETE FROM transactions WHERE uuid = $1 AND wallet = $2;`
)

// psql is the squirrel builder configured for PostgreSQL "$n" placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var transactionColumns = []string{
	"uuid",
	"wallet",
	"name",
	"description",
	"amount",
	"type",
	"date",
	"created_at",
	"updated_at",
}

// buildListTransactionsQuery selects one page of a wallet's transactions,
// newest first. uuid breaks ties between rows created in the same instant.
func buildListTransactionsQuery(wallet string, offset, limit int) (string, []any, error) {
	query, args, err := psql.
		Select(transactionColumns...).
		From(models.Transaction{}.TableName()).
		Where(squirrel.Eq{"wallet": wallet}).
		OrderBy("created_at DESC", "uuid DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateTransactionQuery builds a partial UPDATE that sets only the
// supplied fields plus updated_at, scoped to the transaction id and wallet.
func buildUpdateTransactionQuery(id, wallet string, update models.TransactionUpdate) (string, []any, error) {
	builder := psql.Update(models.Transaction{}.TableName())

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Desc != nil {
		builder = builder.Set("description", *update.Desc)
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.Type != nil {
		builder = builder.Set("type", int16(*update.Type))
	}
	if update.Date != nil {
		builder = builder.Set("date", *update.Date)
	}

	query, args, err := builder.
		Set("updated_at", update.UpdatedAt).
		Where("uuid = ?", id).
		Where("wallet = ?", wallet).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
