package adapter

import "errors"

var (
	ErrInvalidAddress      = errors.New("invalid server address")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrDecodingResponse    = errors.New("error decoding response")
)
