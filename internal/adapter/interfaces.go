// Package adapter provides the transport layer for communicating with the
// LaunchDarkly REST API.
//
// The primary abstraction is [FlagAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPFlagAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MGalimov/flagport/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/flag_adapter_mock.go -package=mock

// FlagAdapter defines transport-agnostic communication with the flag
// management API. Implementations are responsible for serialisation,
// authentication header management, pagination, and mapping transport-level
// errors to the sentinel values defined in this package.
type FlagAdapter interface {
	// GetProjects lists every project visible to the API key. Paginated
	// responses are followed via their next link until exhausted; the
	// accumulated items of all pages are returned. The first failing page
	// request fails the whole listing.
	GetProjects(ctx context.Context) ([]models.Project, error)

	// GetEnvironments returns the environments of the given project, as
	// embedded in the project detail resource.
	GetEnvironments(ctx context.Context, projectKey string) ([]models.Environment, error)

	// GetFlags lists every feature flag of the given project, following
	// pagination the same way as GetProjects.
	GetFlags(ctx context.Context, projectKey string) ([]models.FeatureFlag, error)

	// GetFlag fetches the full detail of a single feature flag, including
	// its variations.
	GetFlag(ctx context.Context, projectKey, flagKey string) (models.FeatureFlag, error)

	// CreateFlag creates a project-level feature flag and returns the
	// created resource. Returns [ErrConflict] (wrapped) when the flag key
	// already exists.
	CreateFlag(ctx context.Context, projectKey string, req models.CreateFlagRequest) (models.FeatureFlag, error)

	// UpdateVariations replaces the variation list of an existing flag via a
	// JSON-patch request and returns the updated resource.
	UpdateVariations(ctx context.Context, projectKey, flagKey string, variations []models.Variation) (models.FeatureFlag, error)

	// ReplaceTargetingRules replaces the targeting rules of a flag in one
	// environment. Rules are forwarded verbatim; no local validation is
	// applied.
	ReplaceTargetingRules(ctx context.Context, projectKey, flagKey, envKey string, rules []models.TargetingRule) error
}
