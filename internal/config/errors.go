package config

import "errors"

// Validation errors returned by [Config.validate].
var (
	// ErrMissingAPIKey indicates that no API key was supplied via the
	// --api-key flag or the LD_API_KEY environment variable.
	ErrMissingAPIKey = errors.New("API key is required: provide it via --api-key or LD_API_KEY env var")

	// ErrInvalidBaseURL indicates that the API endpoint is empty or cannot be
	// parsed as a URL with host and scheme.
	ErrInvalidBaseURL = errors.New("invalid API base URL")

	// ErrInvalidTimeout indicates a zero or negative request timeout.
	ErrInvalidTimeout = errors.New("request timeout must be positive")
)
