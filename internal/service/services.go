package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices builds every service from the storages and the application
// config. Missing secrets and out-of-range Argon2 costs fail here, before any listener starts.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.PasswordHashKey, crypto.Argon2Params{
		Time:    cfg.Argon.Time,
		Memory:  cfg.Argon.Memory,
		Threads: cfg.Argon.Threads,
	})
	switch {
	case errors.Is(err, crypto.ErrEmptySecret):
		return nil, fmt.Errorf("%w: %w", config.ErrMissingPasswordHashKey, err)
	case err != nil:
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	tokenService, err := NewTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, hasher, tokenService, logger),
	)
	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, logger),
	)

	return &Services{
		AuthService:    authService,
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
