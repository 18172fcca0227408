package service

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the account directory and authentication guard.
type AuthService interface {
	// RegisterUser creates an enabled account. Fails with ErrConflict when
	// the username or email is already taken. The returned record carries
	// no password hash.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login checks credentials and issues an access token.
	// Failures: ErrNotFound, ErrWrongCredentials, ErrAccountBlocked.
	Login(ctx context.Context, credentials models.Credentials) (models.IssuedToken, error)

	// Authenticate resolves a bearer token to the current account record.
	// Failures: ErrTokenIsInvalid, ErrTokenIsExpired, ErrUserNotFound,
	// ErrAccountBlocked.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	IssueToken(ctx context.Context, user models.User, passwordHashSnapshot string) (models.IssuedToken, error)
	ParseToken(ctx context.Context, token string) (models.Claims, error)
}

// UserService exposes read and delete operations over account records.
type UserService interface {
	ListUsers(ctx context.Context, limit uint64) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// AppInfoService reports static facts about the running application.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
