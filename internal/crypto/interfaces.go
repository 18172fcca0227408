// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements server-side credential hashing.
//
// Passwords are keyed with a server-wide secret (HMAC-SHA256 pepper) and then
// stretched with Argon2id using a fresh random salt per hash. The encoded
// result follows the PHC string format so cost parameters travel with the
// hash and can be raised without invalidating stored records.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable hashes and checks
// plaintexts against stored hashes. Implementations are safe for concurrent
// use and hold no mutable state beyond the secret fixed at construction.
type PasswordHasher interface {
	// Hash returns the encoded hash of plaintext. Two calls with the same
	// input return different strings because each uses a new random salt.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches encoded. The final comparison
	// runs in constant time. Malformed or foreign hashes yield false.
	Verify(plaintext, encoded string) bool

	// Fingerprint returns a keyed digest of an encoded hash. It is safe to
	// hand out (e.g. inside a token) because it reveals nothing about the
	// hash without the secret, yet changes whenever the hash changes.
	Fingerprint(encoded string) string
}
