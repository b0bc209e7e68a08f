// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidHash         = errors.New("invalid password hash format")
	ErrIncompatibleVariant = errors.New("unsupported password hash variant")
	ErrIncompatibleVersion = errors.New("unsupported argon2 version")
)
