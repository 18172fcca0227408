package models

import "time"

// User represents an account record used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier assigned by the store.
	ID int64 `json:"id"`

	// Username is the unique login name of the account.
	Username string `json:"username"`

	// Email is the unique e-mail address of the account.
	Email string `json:"email"`

	// PasswordHash is the encoded Argon2id hash of the account password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// Status reports whether the account may authenticate.
	// A disabled (false) account is rejected at login and by the auth guard.
	Status bool `json:"status"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the ephemeral username/password pair submitted for
// registration or login. Email is only used at registration.
// Credentials are never persisted.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}
