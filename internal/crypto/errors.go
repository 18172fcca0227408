package crypto

import "errors"

var (
	// ErrEmptySecret is returned by NewPasswordHasher when no hashing secret
	// is configured.
	ErrEmptySecret = errors.New("password hashing secret is empty")

	// ErrInvalidParams is returned by NewPasswordHasher for Argon2 costs that
	// Verify would refuse to decode.
	ErrInvalidParams = errors.New("argon2 parameters out of range")

	// ErrGeneratingSalt is returned when the OS random source fails.
	ErrGeneratingSalt = errors.New("failed to generate salt")

	// ErrMalformedHash is returned when a stored hash cannot be decoded.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrIncompatibleVersion is returned for hashes made by another Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
