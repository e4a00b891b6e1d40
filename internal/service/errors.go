package service

import "errors"

var (
	// ErrProjectRequired indicates that an operation was attempted without a
	// resolved project key.
	ErrProjectRequired = errors.New("project key is required")

	// ErrFlagKeyRequired indicates an empty feature-flag key.
	ErrFlagKeyRequired = errors.New("flag key is required")
)
