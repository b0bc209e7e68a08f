// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

// Sentinel errors returned by the JWT and header helpers.
var (
	// ErrInvalidTokenParams is returned when a token is requested with an
	// empty sign key or a non-positive duration.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrInvalidTokenPayload is returned when the payload has no subject or
	// an extra claim shadows a registered claim name.
	ErrInvalidTokenPayload = errors.New("token payload must be a plain set of non-reserved claims")

	// ErrEmptySubject is returned when a verified token carries no "sub" claim.
	ErrEmptySubject = errors.New("empty subject error")

	// ErrInvalidAuthorizationHeader is returned when the header does not start
	// with the literal "Bearer " scheme or carries no token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
