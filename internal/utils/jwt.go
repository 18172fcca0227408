package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token carries the standard claims
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// plus the private claims user_id and password_hash_snapshot (see [models.Claims]).
//
// issuer, signKey and a positive tokenDuration are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-identity", 42, snapshot, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, snapshot string, tokenDuration time.Duration, signKey string) (models.IssuedToken, error) {
	return generateJWTToken(time.Now(), issuer, userID, snapshot, tokenDuration, signKey)
}

func generateJWTToken(now time.Time, issuer string, userID int64, snapshot string, tokenDuration time.Duration, signKey string) (models.IssuedToken, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.IssuedToken{}, ErrInvalidJWTParams
	}

	expiresAt := now.Add(tokenDuration)
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:               userID,
		PasswordHashSnapshot: snapshot,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.IssuedToken{Token: tokenString, Expire: claims.ExpiresAt.Unix()}, nil
}

// ValidateAndParseJWTToken validates the given JWT and extracts its claims.
//
// Validation includes:
//   - algorithm pinned to HS256 (alg "none" and asymmetric algorithms are refused)
//   - signature verification using tokenSignKey
//   - issuer (iss) check against tokenIssuer
//   - presence and expiry of the exp claim
//   - subject (sub) matching the user_id claim
//
// Returned errors wrap the jwt/v5 sentinels, so callers can tell an expired
// token apart with errors.Is(err, jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Claims, error) {
	return validateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer)
}

func validateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, opts ...jwt.ParserOption) (models.Claims, error) {
	if tokenSignKey == "" {
		return models.Claims{}, ErrInvalidJWTParams
	}

	opts = append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	}, opts...)

	claims := &models.Claims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...); err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return models.Claims{}, fmt.Errorf("%w: subject does not match user_id", jwt.ErrTokenInvalidClaims)
	}

	return *claims, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
//
// The value must start with exactly "Bearer " (case-sensitive, single space)
// followed by a non-empty token.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok || token == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}

// BearerHeader formats a token as an Authorization header value.
func BearerHeader(token string) string {
	return bearerPrefix + token
}

// IsTokenExpired reports whether err came from an expired token.
func IsTokenExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
