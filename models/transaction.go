// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType is the signed direction of a transaction.
// The magnitude lives in Transaction.Amount, which is never negative.
type TransactionType int8

const (
	// Debit marks money leaving the wallet.
	Debit TransactionType = -1

	// Credit marks money entering the wallet.
	Credit TransactionType = 1
)

// Valid reports whether t is one of Debit or Credit.
func (t TransactionType) Valid() bool {
	return t == Debit || t == Credit
}

// Transaction is a single signed money movement recorded in a wallet.
type Transaction struct {
	UUID string `json:"uuid"`

	// Wallet is the UUID of the wallet the transaction belongs to.
	Wallet string `json:"wallet"`

	Name string  `json:"name"`
	Desc *string `json:"desc,omitempty"`

	// Amount is the non-negative magnitude of the transaction.
	Amount decimal.Decimal `json:"amount"`

	// Type carries the direction (see Debit, Credit).
	Type TransactionType `json:"type"`

	// Date is an optional business date supplied by the client.
	Date *time.Time `json:"date,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}

// TransactionUpdate is a partial change set for a transaction.
// Only non-nil fields are written; UpdatedAt is always written.
type TransactionUpdate struct {
	Name   *string          `json:"name,omitempty"`
	Desc   *string          `json:"desc,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Type   *TransactionType `json:"type,omitempty"`
	Date   *time.Time       `json:"date,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}
