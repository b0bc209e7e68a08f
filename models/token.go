// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenPayload is the identity content signed into a bearer token.
//
// Subject and Name map to the "sub" and "name" claims. Extra carries any
// additional application claims; its keys must not collide with registered
// claim names.
type TokenPayload struct {
	Subject string
	Name    string
	Extra   map[string]any

	// IssuedAt and ExpiresAt are filled in when a token is verified.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity returns the caller identity carried by the payload.
func (p TokenPayload) Identity() Identity {
	return Identity{ID: p.Subject, Name: p.Name}
}
