// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed requests rejected before the service layer.
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidUserID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidLimit is returned when the limit query parameter is not a
	// non-negative integer.
	ErrInvalidLimit = errors.New("invalid limit")
)
