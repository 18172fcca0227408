// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

// Client defines the lifecycle contract for runnable client applications.
type Client interface {
	// Run executes the subcommand named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// CredentialsPrompt asks the user for credentials. withEmail is set for
// registration.
type CredentialsPrompt func(title string, withEmail bool) (models.Credentials, error)

// Clipboard receives the issued token after a successful login.
type Clipboard func(text string) error
