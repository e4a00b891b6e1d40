package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGalimov/flagport/internal/adapter"
	"github.com/MGalimov/flagport/internal/logger"
	"github.com/MGalimov/flagport/internal/validators"
	"github.com/MGalimov/flagport/models"
	"github.com/google/uuid"
)

// flagKind is the only flag kind this tool creates: variations carry JSON
// values.
const flagKind = "json"

// defaultTags are attached to every flag created by the tool.
var defaultTags = []string{"tcp", "network-config"}

type flagService struct {
	adapter   adapter.FlagAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewFlagService(flagAdapter adapter.FlagAdapter, validator validators.Validator, log *logger.Logger) FlagService {
	return &flagService{adapter: flagAdapter, validator: validator, logger: log}
}

func (s *flagService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.adapter.GetProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *flagService) ListEnvironments(ctx context.Context, projectKey string) ([]models.Environment, error) {
	if projectKey == "" {
		return nil, ErrProjectRequired
	}

	environments, err := s.adapter.GetEnvironments(ctx, projectKey)
	if err != nil {
		return nil, fmt.Errorf("list environments: %w", err)
	}
	return environments, nil
}

// ListJSONFlags filters the project's flags down to those with at least one
// JSON-object variation value. Listing endpoints may omit variations, so each
// candidate is refetched in full; flags that fail to load are skipped with a
// warning rather than aborting the listing.
func (s *flagService) ListJSONFlags(ctx context.Context, projectKey string) ([]models.FeatureFlag, error) {
	if projectKey == "" {
		return nil, ErrProjectRequired
	}

	flags, err := s.adapter.GetFlags(ctx, projectKey)
	if err != nil {
		return nil, fmt.Errorf("list feature flags: %w", err)
	}

	jsonFlags := make([]models.FeatureFlag, 0, len(flags))
	for _, flag := range flags {
		details, err := s.adapter.GetFlag(ctx, projectKey, flag.Key)
		if err != nil {
			s.logger.Warn().Err(err).Str("flag", flag.Key).Msg("skipping flag: details unavailable")
			continue
		}
		if details.HasJSONVariations() {
			jsonFlags = append(jsonFlags, details)
		}
	}

	return jsonFlags, nil
}

func (s *flagService) GetFlag(ctx context.Context, projectKey, flagKey string) (models.FeatureFlag, error) {
	if projectKey == "" {
		return models.FeatureFlag{}, ErrProjectRequired
	}
	if flagKey == "" {
		return models.FeatureFlag{}, ErrFlagKeyRequired
	}

	return s.adapter.GetFlag(ctx, projectKey, flagKey)
}

func (s *flagService) CreateFlag(ctx context.Context, projectKey, flagKey, flagName string, variations []models.Variation) (models.FeatureFlag, error) {
	if projectKey == "" {
		return models.FeatureFlag{}, ErrProjectRequired
	}
	if flagKey == "" {
		return models.FeatureFlag{}, ErrFlagKeyRequired
	}

	if err := s.validator.Validate(ctx, variations); err != nil {
		return models.FeatureFlag{}, err
	}

	created, err := s.adapter.CreateFlag(ctx, projectKey, models.CreateFlagRequest{
		Name:       flagName,
		Key:        flagKey,
		Kind:       flagKind,
		Variations: ensureVariationIDs(variations),
		Temporary:  false,
		Tags:       defaultTags,
		Defaults:   models.FlagDefaults{OnVariation: 0, OffVariation: 1},
	})
	if err != nil {
		return models.FeatureFlag{}, fmt.Errorf("create feature flag: %w", err)
	}

	return created, nil
}

func (s *flagService) UpdateVariations(ctx context.Context, projectKey, flagKey string, variations []models.Variation) (models.FeatureFlag, error) {
	if projectKey == "" {
		return models.FeatureFlag{}, ErrProjectRequired
	}
	if flagKey == "" {
		return models.FeatureFlag{}, ErrFlagKeyRequired
	}

	if err := s.validator.Validate(ctx, variations); err != nil {
		return models.FeatureFlag{}, err
	}

	updated, err := s.adapter.UpdateVariations(ctx, projectKey, flagKey, ensureVariationIDs(variations))
	if err != nil {
		return models.FeatureFlag{}, fmt.Errorf("update flag variations: %w", err)
	}

	return updated, nil
}

func (s *flagService) ReplaceTargetingRules(ctx context.Context, projectKey, flagKey, envKey string, rules []models.TargetingRule) error {
	if projectKey == "" {
		return ErrProjectRequired
	}

	if err := s.adapter.ReplaceTargetingRules(ctx, projectKey, flagKey, envKey, rules); err != nil {
		return fmt.Errorf("configure environment targeting: %w", err)
	}
	return nil
}

// ValidateFlags reports the port-schema status of every JSON flag in the
// project. Violations of all variations of a flag are aggregated into one
// report entry.
func (s *flagService) ValidateFlags(ctx context.Context, projectKey string) ([]FlagReport, error) {
	flags, err := s.ListJSONFlags(ctx, projectKey)
	if err != nil {
		return nil, err
	}

	reports := make([]FlagReport, 0, len(flags))
	for _, flag := range flags {
		reports = append(reports, FlagReport{Flag: flag, Err: s.validateEach(ctx, flag.Variations)})
	}

	return reports, nil
}

// validateEach checks every variation and joins the failures, so a report
// names all invalid variations instead of only the first.
func (s *flagService) validateEach(ctx context.Context, variations []models.Variation) error {
	var errs []error
	for i, variation := range variations {
		if err := s.validator.Validate(ctx, variation); err != nil {
			errs = append(errs, fmt.Errorf("validation failed for variation %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// ensureVariationIDs fills in a generated id for variations that have none,
// e.g. ones freshly added in the editor.
func ensureVariationIDs(variations []models.Variation) []models.Variation {
	out := make([]models.Variation, len(variations))
	copy(out, variations)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}
