// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds client-visible message strings shared by the transport
// handlers, so the same wording reaches HTTP and gRPC callers.
package app

const (
	// MsgInvalidCredentials is written for an unknown username and for a wrong
	// password alike.
	MsgInvalidCredentials = "invalid username/password"

	// MsgUnauthorized is written when a request cannot be tied to an account.
	MsgUnauthorized = "unauthorized"

	// MsgInternalServerError replaces the text of every server-side failure.
	MsgInternalServerError = "internal server error"

	// MsgInvalidGzip is written when a gzip request body cannot be read.
	MsgInvalidGzip = "invalid gzip data"
)
