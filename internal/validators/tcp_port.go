package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/MGalimov/flagport/models"
)

const (
	// PortProperty is the JSON property each variation value must carry.
	PortProperty = "tcp_port"

	minPort = 0
	maxPort = 65535
)

// PortValidator implements [Validator] for flag variation values. It accepts
// a raw JSON value (map[string]any), a single [models.Variation], or a
// variation slice; pointer forms are supported for every type.
type PortValidator struct {
}

// NewPortValidator constructs a new PortValidator and returns it as the
// Validator interface.
func NewPortValidator() Validator {
	return &PortValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - map[string]any (a variation value)
//   - models.Variation / *models.Variation
//   - []models.Variation
//
// Slice validation aggregates per-variation: the first invalid variation
// fails the whole slice with an error naming its 1-based position.
// Returns ErrUnsupportedType for anything else. Field scoping is not used by
// this validator; passing field names returns ErrUnknownField.
func (v *PortValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.Variation:
		return v.validateValue(value.Value)
	case *models.Variation:
		return v.validateValue(value.Value)

	case []models.Variation:
		return v.validateVariations(value)

	case map[string]any:
		return v.validateValue(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *PortValidator) validateVariations(variations []models.Variation) error {
	if len(variations) == 0 {
		return ErrNoVariations
	}

	for i, variation := range variations {
		if err := v.validateValue(variation.Value); err != nil {
			return fmt.Errorf("validation failed for variation %d: %w", i+1, err)
		}
	}

	return nil
}

// validateValue checks a single variation value against the port schema.
func (v *PortValidator) validateValue(value any) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return ErrNotAnObject
	}

	raw, ok := obj[PortProperty]
	if !ok {
		return ErrMissingPort
	}

	port, err := portOf(raw)
	if err != nil {
		return err
	}

	if port < minPort || port > maxPort {
		return ErrPortOutOfRange
	}

	return nil
}

// portOf extracts an integral port from the decoded JSON value. Values decoded
// with UseNumber arrive as json.Number; values decoded by default arrive as
// float64 and are accepted only without a fractional part.
func portOf(raw any) (int64, error) {
	switch n := raw.(type) {
	case json.Number:
		port, err := n.Int64()
		if err != nil {
			return 0, ErrPortNotInteger
		}
		return port, nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, ErrPortNotInteger
		}
		return int64(n), nil
	default:
		return 0, ErrPortNotInteger
	}
}
