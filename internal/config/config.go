package config

import (
	"time"
)

// DefaultBaseURL is the production flag-management API endpoint.
const DefaultBaseURL = "https://app.launchdarkly.com"

// DefaultTimeout bounds every outbound API request.
const DefaultTimeout = 15 * time.Second

// Config is the top-level configuration for flagport. It is populated by
// merging command-line flag overrides, environment variables, and defaults.
//
// Struct tags: env is the environment variable name for the field
// (caarlos0/env).
type Config struct {
	// APIKey is the service access token sent in the Authorization header of
	// every API request. Required.
	// Env: LD_API_KEY
	APIKey string `env:"LD_API_KEY"`

	// ProjectKey preselects the project to operate on. When empty, the
	// interactive project menu is shown instead.
	// Env: LD_PROJECT_KEY
	ProjectKey string `env:"LD_PROJECT_KEY"`

	// BaseURL is the API endpoint, overridable for self-hosted relays and
	// tests.
	// Env: LD_BASE_URL
	BaseURL string `env:"LD_BASE_URL"`

	// Timeout is the per-request timeout (e.g. "30s", "1m").
	// Env: LD_TIMEOUT
	Timeout time.Duration `env:"LD_TIMEOUT"`
}

// GetConfig loads, merges, and validates the configuration. overrides carries
// values parsed from command-line flags and takes priority over environment
// variables; a .env file in the working directory is loaded into the process
// environment before env parsing.
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig(overrides Config) (*Config, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withDefaults().
		build()
}
