// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach storage or the
// conversational backend.
//
// A Validator accepts any supported model and an optional list of field
// names; when fields are given only those rules run.
package validators

import "context"

// Validator returns the sentinel of the first rule a value breaks.
// Unsupported types fail with ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
