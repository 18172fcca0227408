package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and token-to-identity
// resolution using a UserRepository for persistence, a PasswordHasher for
// credentials and a TokenService for access tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes and verifies passwords and fingerprints stored hashes.
	hasher crypto.PasswordHasher

	// tokenService issues tokens on login and verifies them on every
	// authenticated request.
	tokenService TokenService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger

	// decoyHash is verified against when the username is unknown, so that
	// branch costs one Argon2id run like a real password check.
	decoyOnce sync.Once
	decoyHash string
}

const decoyPassword = "go-identity:unknown-user"

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username/email pre-check answers the common case; the UNIQUE
// constraints catch a concurrent registration that slips between the check
// and the insert. Both surface as ErrConflict without naming the field.
// The plaintext password is hashed before anything is written.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := a.userRepository.FindUsersByUsernameOrEmail(ctx, credentials.Username, credentials.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user lookup failed")
		return models.User{}, storeError(err)
	}
	if len(existing) > 0 {
		log.Info().Str("username", credentials.Username).Msg("registration rejected: user already exists")
		return models.User{}, ErrConflict
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user, err := a.userRepository.CreateUser(ctx, credentials.Username, credentials.Email, passwordHash)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Str("username", credentials.Username).Msg("registration rejected: concurrent insert")
			return models.User{}, ErrConflict
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, storeError(err)
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates credentials and issues an access token.
//
// Checks run in a fixed order: account lookup, password, status. A disabled
// account is therefore only reported to a caller who knows the password.
// An unknown username still pays for one password verification.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.IssuedToken, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(credentials.Password, a.decoy(ctx))
			log.Info().Str("username", credentials.Username).Msg("login rejected: unknown user")
			return models.IssuedToken{}, ErrNotFound
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.IssuedToken{}, storeError(err)
	}

	if !a.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Info().Int64("user_id", user.ID).Msg("login rejected: wrong password")
		return models.IssuedToken{}, ErrWrongCredentials
	}

	if !user.Status {
		log.Info().Int64("user_id", user.ID).Msg("login rejected: account disabled")
		return models.IssuedToken{}, ErrAccountBlocked
	}

	token, err := a.tokenService.IssueToken(ctx, user, a.hasher.Fingerprint(user.PasswordHash))
	if err != nil {
		return models.IssuedToken{}, err
	}

	log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// decoy returns a hash made with the configured cost, computed on first use.
func (a *authService) decoy(ctx context.Context) string {
	a.decoyOnce.Do(func() {
		hash, err := a.hasher.Hash(decoyPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*authService.decoy").Msg("decoy hash unavailable")
			return
		}
		a.decoyHash = hash
	})
	return a.decoyHash
}

// Authenticate verifies token and loads the account it refers to.
//
// The record is re-read on every call so a disabled account or a changed
// password takes effect immediately for tokens already issued.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrMissingToken
	}

	claims, err := a.tokenService.ParseToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Int64("user_id", claims.UserID).Msg("token refers to a missing user")
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by id failed")
		return models.User{}, storeError(err)
	}

	if !user.Status {
		log.Info().Int64("user_id", user.ID).Msg("token rejected: account disabled")
		return models.User{}, ErrAccountBlocked
	}

	current := a.hasher.Fingerprint(user.PasswordHash)
	if subtle.ConstantTimeCompare([]byte(current), []byte(claims.PasswordHashSnapshot)) != 1 {
		log.Info().Int64("user_id", user.ID).Msg("token rejected: password changed since issuance")
		return models.User{}, ErrTokenIsInvalid
	}

	user.PasswordHash = ""
	return user, nil
}

// storeError hides the driver error behind ErrStoreUnavailable while keeping
// it in the chain for logging.
func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
