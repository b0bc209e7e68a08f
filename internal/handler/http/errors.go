// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Envelope messages.
const (
	msgInvalidJSON            = "Invalid JSON was passed"
	msgValidationFailed       = "Validation failed"
	msgInvalidTransactionData = "Invalid transaction data"
	msgUnauthorized           = "Unauthorized"
	msgMissingCredentials     = "Missing credentials"
	msgInvalidCredentials     = "Invalid credentials"
	msgUserNotFound           = "user not found"
	msgWalletNotFound         = "Wallet not found"
	msgTransactionNotFound    = "Transaction not found"
	msgNameAlreadyExists      = "Name already exists"
	msgUUIDAlreadyExists      = "UUID already exists"
	msgTransactionExists      = "Transaction already exists"
	msgInternalServerError    = "Internal server error"
	msgTooManyRequests        = "Too many requests"
	msgRouteNotFound          = "Route not found"
	msgMethodNotAllowed       = "Method not allowed"

	msgUserCreated          = "Create user successfully!"
	msgLoggedIn             = "login successfully!"
	msgTransactionCreated   = "Transaction created successfully"
	msgTransactionsListed   = "Transactions retrieved successfully"
	msgTransactionRetrieved = "Transaction retrieved successfully"
	msgTransactionUpdated   = "Transaction updated successfully"
	msgTransactionDeleted   = "Transaction deleted successfully"
)
