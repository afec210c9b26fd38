// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for the borrower search.
//
// Validation rules are declared as go-playground/validator struct tags on the
// models and translated into [Issues]: an ordered list of field/message pairs
// that can also be viewed as a field → messages map, so callers never need to
// match on message text to find out which input a message belongs to.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
