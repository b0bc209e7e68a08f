// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNameAlreadyExists is returned when registration fails because a user
	// with the same name already exists.
	ErrNameAlreadyExists = errors.New("name already exists")

	// ErrUUIDAlreadyExists is returned when registration fails because the
	// supplied user uuid is already taken.
	ErrUUIDAlreadyExists = errors.New("uuid already exists")

	// ErrUserNotFound is returned when no user matches the requested name.
	ErrUserNotFound = errors.New("user not found")

	// ErrWalletNotFound is returned when the user owns no wallet.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTransactionNotFound is returned when no transaction matches the
	// requested id inside the requested wallet.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionConflict is returned when a transaction with the same
	// uuid already exists.
	ErrTransactionConflict = errors.New("transaction already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
