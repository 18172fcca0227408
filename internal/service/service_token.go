package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
)

// tokenService signs and verifies HS256 access tokens.
// All fields are read-only after construction.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration
}

// NewTokenService constructs a TokenService from cfg.
//
// An empty signing key fails with config.ErrMissingTokenSignKey and a
// non-positive duration with config.ErrInvalidTokenDuration, so a
// misconfigured process stops at startup.
func NewTokenService(cfg config.App) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, config.ErrMissingTokenSignKey
	}
	if cfg.TokenDuration <= 0 {
		return nil, config.ErrInvalidTokenDuration
	}

	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
	}, nil
}

// IssueToken signs a token for user that expires tokenDuration from now.
func (s *tokenService) IssueToken(ctx context.Context, user models.User, passwordHashSnapshot string) (models.IssuedToken, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, passwordHashSnapshot, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.IssueToken").Msg("error signing token")
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the signature, algorithm, issuer and expiry of token.
//
// Expired tokens yield ErrTokenIsExpired; every other failure is
// normalised to ErrTokenIsInvalid so callers never inspect jwt internals.
func (s *tokenService) ParseToken(ctx context.Context, token string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.ParseToken").Msg("token rejected")
		if utils.IsTokenExpired(err) {
			return models.Claims{}, ErrTokenIsExpired
		}
		return models.Claims{}, ErrTokenIsInvalid
	}

	return claims, nil
}
