// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the walletctl command-line runtime.
//
// It parses sub-commands, talks to the server through an
// [adapter.ServerAdapter] and keeps the bearer token from the last login in
// a token file between invocations.
package client
