package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the decoded payload of an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set; the absolute
// expiry lives in the "exp" claim (epoch seconds).
type Claims struct {
	jwt.RegisteredClaims

	// UserID identifies the account the token was issued for.
	UserID int64 `json:"user_id"`

	// PasswordHashSnapshot is a keyed fingerprint of the account's password
	// hash at issuance time. A password change produces a different
	// fingerprint, so tokens issued before the change stop verifying.
	PasswordHashSnapshot string `json:"password_hash_snapshot"`
}

// IssuedToken is the signed token returned to the caller after a successful
// login together with its absolute expiry.
type IssuedToken struct {
	// Token is the compact JWS serialization (header.payload.signature).
	Token string `json:"token"`

	// Expire is the token expiry as Unix epoch seconds.
	Expire int64 `json:"exp"`
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t IssuedToken) String() string {
	return t.Token
}
