// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads of the development backend
// before they reach a repository.
//
// A [Validator] accepts any value it knows and an optional list of field
// names; when fields are given only those are checked. Unknown value types
// yield [ErrUnsupportedType] and unknown fields [ErrUnknownField].
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
