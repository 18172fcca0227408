package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidLimit   = errors.New("limit must be a non-negative integer")
)
