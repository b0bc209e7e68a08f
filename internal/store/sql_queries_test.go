// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListTransactionsQuery(t *testing.T) {
	query, args, err := buildListTransactionsQuery("wallet-1", 20, 10)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT uuid, wallet, name, description, amount, type, date, created_at, updated_at "+
			"FROM transactions WHERE wallet = $1 ORDER BY created_at DESC, uuid DESC LIMIT 10 OFFSET 20",
		query)
	assert.Equal(t, []any{"wallet-1"}, args)
}

func Test_buildUpdateTransactionQuery_OnlyUpdatedAt(t *testing.T) {
	now := time.Now()

	query, args, err := buildUpdateTransactionQuery("tx-1", "wallet-1", models.TransactionUpdate{UpdatedAt: now})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE transactions SET updated_at = $1 WHERE uuid = $2 AND wallet = $3", query)
	assert.Equal(t, []any{now, "tx-1", "wallet-1"}, args)
}

func Test_buildUpdateTransactionQuery_AllFields(t *testing.T) {
	now := time.Now()
	date := now.Add(-time.Hour)
	name := "rent"
	desc := "march"
	amount := decimal.NewFromInt(1200)
	typ := models.Debit

	query, args, err := buildUpdateTransactionQuery("tx-1", "wallet-1", models.TransactionUpdate{
		Name:      &name,
		Desc:      &desc,
		Amount:    &amount,
		Type:      &typ,
		Date:      &date,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE transactions SET name = $1, description = $2, amount = $3, type = $4, date = $5, updated_at = $6"), query)
	assert.True(t, strings.HasSuffix(query, "WHERE uuid = $7 AND wallet = $8"), query)
	assert.Equal(t, []any{"rent", "march", amount, int16(-1), date, now, "tx-1", "wallet-1"}, args)
}
