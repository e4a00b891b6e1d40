package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// Port-schema violations. The messages are part of the tool's contract:
	// they are shown verbatim to users and asserted in tests.
	ErrNotAnObject    = errors.New("JSON must be an object")
	ErrMissingPort    = errors.New("JSON must contain a tcp_port property")
	ErrPortNotInteger = errors.New("tcp_port must be an integer")
	ErrPortOutOfRange = errors.New("tcp_port must be between 0 and 65535")

	ErrNoVariations = errors.New("variations list cannot be empty")
)
