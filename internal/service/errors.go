// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrWrongPassword      = errors.New("wrong password")
	ErrUnauthenticated    = errors.New("no authenticated identity")

	ErrPasswordHashing     = errors.New("error hashing password")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
