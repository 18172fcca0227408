package admin

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrReadingInput     = errors.New("error reading input")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidLimit     = errors.New("limit must be a non-negative integer")
)
