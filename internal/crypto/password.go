// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonAlgorithm = "argon2id"
	saltLength     = 16

	// upper bounds for both configured and decoded parameters, so a tampered
	// record cannot make Verify allocate unbounded memory.
	maxArgonMemory  = 1024 * 1024 // 1 GiB in KiB
	maxArgonTime    = 64
	maxArgonKeyLen  = 128
	fingerprintInfo = "password-hash-fingerprint:"
)

// Argon2Params are the Argon2id cost parameters used for new hashes.
// Zero fields are replaced by [DefaultArgon2Params] values.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params returns the parameters used when none are configured:
// 3 passes, 64 MiB, 2 lanes, 32-byte key.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    3,
		Memory:  64 * 1024,
		Threads: 2,
		KeyLen:  32,
	}
}

func (p Argon2Params) withDefaults() Argon2Params {
	def := DefaultArgon2Params()
	if p.Time == 0 {
		p.Time = def.Time
	}
	if p.Memory == 0 {
		p.Memory = def.Memory
	}
	if p.Threads == 0 {
		p.Threads = def.Threads
	}
	if p.KeyLen == 0 {
		p.KeyLen = def.KeyLen
	}
	return p
}

// inBounds reports whether p can be both produced by Hash and accepted by
// decodeHash.
func (p Argon2Params) inBounds() bool {
	return p.Time > 0 && p.Time <= maxArgonTime &&
		p.Memory > 0 && p.Memory <= maxArgonMemory &&
		p.Threads > 0 &&
		p.KeyLen > 0 && p.KeyLen <= maxArgonKeyLen
}

// argon2Hasher is the Argon2id implementation of [PasswordHasher].
type argon2Hasher struct {
	secret []byte
	params Argon2Params
	rand   io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] keyed with secret.
//
// It fails with [ErrEmptySecret] when secret is empty and with
// [ErrInvalidParams] when params exceed what Verify accepts, so both are
// detected once at startup instead of on every request.
func NewPasswordHasher(secret string, params Argon2Params) (PasswordHasher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	params = params.withDefaults()
	if !params.inBounds() {
		return nil, fmt.Errorf("%w: t=%d (max %d), m=%d KiB (max %d), key=%d bytes (max %d)",
			ErrInvalidParams, params.Time, maxArgonTime, params.Memory, maxArgonMemory, params.KeyLen, maxArgonKeyLen)
	}

	return &argon2Hasher{
		secret: []byte(secret),
		params: params,
		rand:   rand.Reader,
	}, nil
}

// Hash implements [PasswordHasher].
//
// Encoded form: $argon2id$v=19$m=<KiB>,t=<passes>,p=<lanes>$<salt>$<key>
// with salt and key in unpadded standard base64.
func (h *argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
	}

	p := h.params
	key := argon2.IDKey(h.pepper(plaintext), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argonAlgorithm,
		argon2.Version,
		p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher].
func (h *argon2Hasher) Verify(plaintext, encoded string) bool {
	p, salt, want, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	got := argon2.IDKey(h.pepper(plaintext), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return subtle.ConstantTimeCompare(got, want) == 1
}

// Fingerprint implements [PasswordHasher].
func (h *argon2Hasher) Fingerprint(encoded string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(fingerprintInfo))
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}

// pepper keys the plaintext with the server secret before stretching.
func (h *argon2Hasher) pepper(plaintext string) []byte {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(plaintext))
	return mac.Sum(nil)
}

// decodeHash parses a PHC-formatted Argon2id hash.
func decodeHash(encoded string) (Argon2Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argonAlgorithm {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return Argon2Params{}, nil, nil, ErrIncompatibleVersion
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) > maxArgonKeyLen {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}
	p.KeyLen = uint32(len(key))
	if !p.inBounds() {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}

	return p, salt, key, nil
}
