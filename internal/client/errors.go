package client

import "errors"

var (
	// ErrAborted is returned when the user declines a confirmation, so the
	// CLI exits non-zero without treating it as an internal failure.
	ErrAborted = errors.New("aborted")

	// ErrNoJSONFlags is returned when a project has no flags with
	// JSON-object variation values to operate on.
	ErrNoJSONFlags = errors.New("no JSON feature flags found")
)
