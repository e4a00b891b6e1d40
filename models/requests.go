package models

import "encoding/json"

// TargetingRule is a per-environment targeting rule. The tool treats rules as
// opaque blobs; they are loaded from files and forwarded to the API verbatim.
type TargetingRule = json.RawMessage

// CreateFlagRequest is the payload for creating a project-level flag.
type CreateFlagRequest struct {
	Name       string       `json:"name"`
	Key        string       `json:"key"`
	Kind       string       `json:"kind"`
	Variations []Variation  `json:"variations"`
	Temporary  bool         `json:"temporary"`
	Tags       []string     `json:"tags"`
	Defaults   FlagDefaults `json:"defaults"`
}

// PatchOperation is a single JSON-patch operation.
type PatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// PatchRequest is a JSON-patch request against a flag resource.
type PatchRequest struct {
	Comment string           `json:"comment,omitempty"`
	Patch   []PatchOperation `json:"patch"`
}

// RuleInstruction is a single semantic-patch instruction for environment
// targeting.
type RuleInstruction struct {
	Kind  string          `json:"kind"`
	Rules []TargetingRule `json:"rules"`
}

// TargetingRequest replaces the targeting rules of a flag in one environment.
type TargetingRequest struct {
	Instructions []RuleInstruction `json:"instructions"`
}
