// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns wallets and authenticates with a
// name/password pair.
type User struct {
	// UserID is the internal storage identifier.
	// It is never exposed via JSON.
	UserID int64 `json:"-"`

	// UUID is the stable public identifier generated at registration.
	// It is the subject of every token issued for the user.
	UUID string `json:"uuid"`

	// Name is the unique display name used to log in.
	Name string `json:"name"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Password holds the argon2id PHC string of the user's password.
	// Plaintext is never stored here after validation, and the field is
	// never serialized.
	Password string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login request body.
type Credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResult is returned on a successful login: the signed bearer token and
// the authenticated user without credential material.
type LoginResult struct {
	Access string `json:"access"`
	Auth   User   `json:"auth"`
}
