package utils

import "errors"

var (
	ErrInvalidJWTParams           = errors.New("invalid params for JWT token")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
