package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (c *Config) validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}
