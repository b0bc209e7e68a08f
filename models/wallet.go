// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultWalletName is the name of the wallet created for every user at
// registration time.
const DefaultWalletName = "default"

// Wallet is a named container of transactions owned by exactly one user.
type Wallet struct {
	UUID string `json:"uuid"`

	// Owner is the UUID of the owning user.
	Owner string `json:"owner"`

	Name string  `json:"name"`
	Desc *string `json:"desc,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Wallet model.
func (w Wallet) TableName() string {
	return "wallets"
}
