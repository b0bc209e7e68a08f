// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing hashes and
// checks candidates against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash derives a salted Argon2id hash of password and returns it in PHC
	// string format: $argon2id$v=19$m=<KiB>,t=<iter>,p=<threads>$<salt>$<key>.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. The Argon2id
	// parameters are read from the hash, so hashes produced with older
	// settings keep verifying after the defaults change.
	// A malformed hash yields an error, a mismatch yields (false, nil).
	Verify(encodedHash, password string) (bool, error)
}
