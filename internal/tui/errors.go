package tui

import "errors"

// ErrCancelled is returned when the user backs out of a prompt (q, esc, or
// ctrl+c). Workflows treat it as a clean abort, not a failure.
var ErrCancelled = errors.New("cancelled by user")
