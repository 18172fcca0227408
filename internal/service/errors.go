package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrConflict         = errors.New("user with this name or email already exists")
	ErrNotFound         = errors.New("user not found")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrAccountBlocked   = errors.New("user is blocked")

	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrMissingToken        = errors.New("missing token")
	ErrUserNotFound        = errors.New("token user not found")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrStoreUnavailable = errors.New("store unavailable")
	ErrHashingPassword  = errors.New("password hashing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
