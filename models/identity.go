// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated caller as carried by a verified bearer token.
// It is taken from the token claims and never re-read from storage.
type Identity struct {
	// ID is the user UUID (the token "sub" claim).
	ID string `json:"id"`

	// Name is the user name embedded in the token.
	Name string `json:"name"`
}
