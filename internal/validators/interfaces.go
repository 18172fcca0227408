// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account input before it reaches the services.
// Rules are expressed with ozzo-validation; callers may narrow a check to
// the fields that matter for the operation at hand (login only looks at
// username and password, for instance).
package validators

import "context"

// Validator checks v, optionally limited to the named fields. A nil error
// means v is acceptable.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
