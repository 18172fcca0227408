package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-identity/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserID   = "user_id"
)

// LoginFields is the field set checked for a login attempt. Password length
// is not enforced on login so the policy stays a registration concern.
var LoginFields = []string{FieldUsername, FieldPassword}

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	maxEmailLength    = 254
	maxPasswordLength = 128
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// UserValidator implements Validator for account input: registration and
// login credentials and user identifiers.
type UserValidator struct {
}

// NewUserValidator constructs a UserValidator and returns it as a Validator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Credentials / *models.Credentials: default fields are
//     username, email and password (registration); pass LoginFields for login.
//   - int64: a user identifier, must be positive.
//
// Returns ErrUnsupportedType for anything else.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, &value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrInvalidCredentials
		}
		return v.validateCredentials(ctx, value, fields...)
	case int64:
		if value <= 0 {
			return ErrInvalidUserID
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCredentials(ctx context.Context, c *models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	login := isLoginScope(fields)

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, field := range fields {
		switch field {
		case FieldUsername:
			rules = append(rules, validation.Field(&c.Username,
				validation.Required,
				validation.Length(minUsernameLength, maxUsernameLength),
				validation.Match(usernamePattern),
			))
		case FieldEmail:
			rules = append(rules, validation.Field(&c.Email,
				validation.Required,
				validation.Length(0, maxEmailLength),
				is.Email,
			))
		case FieldPassword:
			if login {
				rules = append(rules, validation.Field(&c.Password, validation.Required))
				continue
			}
			rules = append(rules, validation.Field(&c.Password,
				validation.Required,
				validation.Length(0, maxPasswordLength),
			))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if err := validation.ValidateStruct(c, rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return nil
}

// isLoginScope reports whether fields describe a login attempt (no email).
func isLoginScope(fields []string) bool {
	for _, f := range fields {
		if f == FieldEmail {
			return false
		}
	}
	return true
}
