// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns untrusted request bodies into domain values.
//
// Core concepts:
//   - Fields: the decoded JSON object, kept as raw per-key values so every
//     field is type-checked on its own.
//   - Schema: parses Fields into a fully populated value, or reports every
//     offending field at once as [ValidationErrors]. Never both.
//
// Usage patterns:
//  1. Handlers decode the body into Fields.
//  2. Services run the matching Schema and, on success, continue with a
//     normalized value (defaults for uuid and timestamps already filled in).
//
// Schemas perform no I/O. Side-effecting transforms, such as password
// hashing, are separate steps carried out by the caller.
package validators

import "context"

// Schema parses raw fields into a value of type T.
//
// On failure the returned error is [ValidationErrors] and the value is the
// zero T.
type Schema[T any] interface {
	Parse(ctx context.Context, fields Fields) (T, error)
}

// IDGenerator produces identifiers for records that arrive without one.
type IDGenerator interface {
	Generate() string
}
