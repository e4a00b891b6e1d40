// Package service contains the business layer between the interactive
// workflows and the transport adapter: port-schema validation before every
// create/update call, variation id assignment, and the JSON-flag filter used
// by the selection menus.
package service

import (
	"context"

	"github.com/MGalimov/flagport/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/flag_service_mock.go -package=mock

// FlagService is the contract used by the workflows. All mutating operations
// validate variation values against the port schema before any request is
// sent; invalid input never reaches the remote API.
type FlagService interface {
	// ListProjects returns every project visible to the API key.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// ListEnvironments returns the environments of the given project.
	ListEnvironments(ctx context.Context, projectKey string) ([]models.Environment, error)

	// ListJSONFlags returns the project's flags that carry at least one
	// JSON-object variation value, with full variation details.
	ListJSONFlags(ctx context.Context, projectKey string) ([]models.FeatureFlag, error)

	// GetFlag fetches one flag with its variations.
	GetFlag(ctx context.Context, projectKey, flagKey string) (models.FeatureFlag, error)

	// CreateFlag validates the variations, assigns ids to new ones, and
	// creates a project-level JSON flag.
	CreateFlag(ctx context.Context, projectKey, flagKey, flagName string, variations []models.Variation) (models.FeatureFlag, error)

	// UpdateVariations validates the variations, assigns ids to new ones,
	// and replaces the flag's variation list.
	UpdateVariations(ctx context.Context, projectKey, flagKey string, variations []models.Variation) (models.FeatureFlag, error)

	// ReplaceTargetingRules replaces the targeting rules of a flag in one
	// environment. Rules are opaque and not validated locally.
	ReplaceTargetingRules(ctx context.Context, projectKey, flagKey, envKey string, rules []models.TargetingRule) error

	// ValidateFlags checks every JSON flag of the project against the port
	// schema and returns one report per flag.
	ValidateFlags(ctx context.Context, projectKey string) ([]FlagReport, error)
}

// FlagReport is the validation outcome for a single flag.
type FlagReport struct {
	Flag models.FeatureFlag

	// Err aggregates the per-variation violations, nil when the flag is
	// valid.
	Err error
}

// Valid reports whether the flag passed validation.
func (r FlagReport) Valid() bool {
	return r.Err == nil
}
