// Package validators enforces the port-schema rule applied to flag variation
// values before any create or update request is sent.
//
// The only rule this tool carries locally: a variation value must be a JSON
// object with a tcp_port property holding an integer in [0, 65535].
// Uniqueness, concurrency, and consistency are delegated to the remote API.
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
