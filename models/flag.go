package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Variation is one possible value a feature flag can resolve to.
type Variation struct {
	// ID is the server-assigned variation identifier. It may be omitted for
	// new variations; the service generates one before upload.
	ID string `json:"_id,omitempty"`

	// Name is the human-readable variation label (e.g. "Production").
	Name string `json:"name,omitempty"`

	// Description explains what the variation configures.
	Description string `json:"description,omitempty"`

	// Value is the arbitrary JSON payload of the variation. For flags managed
	// by this tool it is an object carrying a tcp_port property.
	Value any `json:"value"`
}

// FlagDefaults selects which variation indices serve as the flag's on/off
// defaults.
type FlagDefaults struct {
	OnVariation  int `json:"onVariation"`
	OffVariation int `json:"offVariation"`
}

// FeatureFlag is a remote feature flag as returned by the flag API.
type FeatureFlag struct {
	Key        string        `json:"key"`
	Name       string        `json:"name"`
	Kind       string        `json:"kind,omitempty"`
	Variations []Variation   `json:"variations,omitempty"`
	Temporary  bool          `json:"temporary"`
	Tags       []string      `json:"tags,omitempty"`
	Defaults   *FlagDefaults `json:"defaults,omitempty"`
}

// HasJSONVariations reports whether at least one variation value is a JSON
// object. Only such flags are candidates for port-schema validation and
// interactive editing.
func (f FeatureFlag) HasJSONVariations() bool {
	for _, v := range f.Variations {
		if _, ok := v.Value.(map[string]any); ok {
			return true
		}
	}
	return false
}

// DecodeVariations parses a JSON array of variations. Numbers are decoded as
// json.Number so that integer port values survive the round-trip without
// being coerced to floats.
func DecodeVariations(data []byte) ([]Variation, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var variations []Variation
	if err := dec.Decode(&variations); err != nil {
		return nil, fmt.Errorf("decode variations: %w", err)
	}
	return variations, nil
}
