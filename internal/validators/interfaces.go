// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns untrusted input into safe domain values.
//
// Core concepts:
//   - Policy: default, forbidden flag, normalization and rules for one
//     optional query parameter; [Parse] applies it.
//   - Filters: per-route assembly of policies into the filter consumed by the
//     store, failing on the first invalid field.
//   - Validator: validation of request bodies, optionally scoped to named
//     fields.
//
// Every rejection is a [*ValidationError] whose message is safe to return to
// the client.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
