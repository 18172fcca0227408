// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the persistence contract for account records.
//
// Lookups that match nothing return [ErrUserNotFound] (single record) or an
// empty slice (multi-record). Driver failures are wrapped in
// [ErrExecutingQuery], [ErrScanningRow] or [ErrScanningRows].
type UserRepository interface {
	// FindUsersByUsernameOrEmail returns every record whose username or
	// email equals the given values.
	FindUsersByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error)

	// FindUserByUsername returns the record with the given username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the record with the given id.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// CreateUser inserts a new enabled record and returns it with the
	// store-assigned fields filled in. A uniqueness violation on username or
	// email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error)

	// DeleteUser removes the record with the given id and reports whether a
	// row was actually deleted.
	DeleteUser(ctx context.Context, id int64) (bool, error)

	// ListUsers returns records ordered by id. A zero limit returns all.
	ListUsers(ctx context.Context, limit uint64) ([]models.User, error)
}
