package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MGalimov/flagport/internal/config"
	"github.com/MGalimov/flagport/internal/logger"
	"github.com/MGalimov/flagport/models"
	"github.com/go-resty/resty/v2"
)

const apiBasePath = "/api/v2"

type httpFlagAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPFlagAdapter constructs an HTTP/REST implementation of [FlagAdapter].
// It normalises and validates the base URL from cfg.BaseURL, configures the
// underlying HTTP client with the request timeout, and attaches the API key
// to every request via the Authorization header.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPFlagAdapter(cfg *config.Config, log *logger.Logger) (FlagAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &httpFlagAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// page is the envelope shared by all paginated listing endpoints.
type page[T any] struct {
	Items []T          `json:"items"`
	Links models.Links `json:"_links"`
}

// fetchAll follows the next link of a paginated listing starting at firstPath
// and returns the accumulated items of every page. Next hrefs are
// site-relative ("/api/v2/...") and resolved against the adapter's base URL;
// absolute hrefs are requested as-is.
func fetchAll[T any](ctx context.Context, h *httpFlagAdapter, firstPath, what string) ([]T, error) {
	var all []T
	pages := 0

	href := firstPath
	for href != "" {
		resp, err := h.client.R().SetContext(ctx).Get(href)
		if err != nil {
			return nil, fmt.Errorf("get %s request: %w", what, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, fmt.Errorf("get %s: %w", what, err)
		}

		var p page[T]
		if err = json.Unmarshal(resp.Body(), &p); err != nil {
			return nil, fmt.Errorf("decode %s page: %w", what, err)
		}

		all = append(all, p.Items...)
		pages++
		href = p.Links.Next()
	}

	h.logger.Debug().Str("resource", what).Int("pages", pages).Int("items", len(all)).Msg("listed remote resource")
	return all, nil
}

// GetProjects implements [FlagAdapter]. It GETs /api/v2/projects and follows
// pagination until no next link remains.
func (h *httpFlagAdapter) GetProjects(ctx context.Context) ([]models.Project, error) {
	return fetchAll[models.Project](ctx, h, apiBasePath+"/projects", "projects")
}

// GetEnvironments implements [FlagAdapter]. It GETs the project detail
// resource and extracts the embedded environments list.
func (h *httpFlagAdapter) GetEnvironments(ctx context.Context, projectKey string) ([]models.Environment, error) {
	var project models.Project

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&project).
		Get(fmt.Sprintf("%s/projects/%s", apiBasePath, projectKey))
	if err != nil {
		return nil, fmt.Errorf("get project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get project %q: %w", projectKey, err)
	}

	return project.Environments, nil
}

// GetFlags implements [FlagAdapter]. It GETs /api/v2/flags/{project} and
// follows pagination until no next link remains.
func (h *httpFlagAdapter) GetFlags(ctx context.Context, projectKey string) ([]models.FeatureFlag, error) {
	return fetchAll[models.FeatureFlag](ctx, h, fmt.Sprintf("%s/flags/%s", apiBasePath, projectKey), "feature flags")
}

// GetFlag implements [FlagAdapter]. It GETs the flag detail resource,
// including the full variation list.
func (h *httpFlagAdapter) GetFlag(ctx context.Context, projectKey, flagKey string) (models.FeatureFlag, error) {
	var flag models.FeatureFlag

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&flag).
		Get(fmt.Sprintf("%s/flags/%s/%s", apiBasePath, projectKey, flagKey))
	if err != nil {
		return models.FeatureFlag{}, fmt.Errorf("get flag request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeatureFlag{}, fmt.Errorf("get flag %q: %w", flagKey, err)
	}

	return flag, nil
}

// CreateFlag implements [FlagAdapter]. It POSTs the create payload to
// POST /api/v2/flags/{project} and returns the created flag.
func (h *httpFlagAdapter) CreateFlag(ctx context.Context, projectKey string, req models.CreateFlagRequest) (models.FeatureFlag, error) {
	var created models.FeatureFlag

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post(fmt.Sprintf("%s/flags/%s", apiBasePath, projectKey))
	if err != nil {
		return models.FeatureFlag{}, fmt.Errorf("create flag request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeatureFlag{}, fmt.Errorf("create flag %q: %w", req.Key, err)
	}

	h.logger.Info().Str("project", projectKey).Str("flag", req.Key).Msg("feature flag created")
	return created, nil
}

// UpdateVariations implements [FlagAdapter]. It PATCHes the flag resource
// with a JSON-patch replacing /variations and returns the updated flag.
func (h *httpFlagAdapter) UpdateVariations(ctx context.Context, projectKey, flagKey string, variations []models.Variation) (models.FeatureFlag, error) {
	patch := models.PatchRequest{
		Comment: "Updated flag variations via flagport",
		Patch: []models.PatchOperation{
			{Op: "replace", Path: "/variations", Value: variations},
		},
	}

	var updated models.FeatureFlag

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(&updated).
		Patch(fmt.Sprintf("%s/flags/%s/%s", apiBasePath, projectKey, flagKey))
	if err != nil {
		return models.FeatureFlag{}, fmt.Errorf("update variations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeatureFlag{}, fmt.Errorf("update variations of %q: %w", flagKey, err)
	}

	h.logger.Info().Str("project", projectKey).Str("flag", flagKey).Int("variations", len(variations)).Msg("flag variations updated")
	return updated, nil
}

// ReplaceTargetingRules implements [FlagAdapter]. It PATCHes the
// per-environment flag resource with a replaceRule instruction.
func (h *httpFlagAdapter) ReplaceTargetingRules(ctx context.Context, projectKey, flagKey, envKey string, rules []models.TargetingRule) error {
	body := models.TargetingRequest{
		Instructions: []models.RuleInstruction{
			{Kind: "replaceRule", Rules: rules},
		},
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Patch(fmt.Sprintf("%s/flags/%s/%s/environments/%s", apiBasePath, projectKey, flagKey, envKey))
	if err != nil {
		return fmt.Errorf("replace targeting rules request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("replace targeting rules of %q in %q: %w", flagKey, envKey, err)
	}

	h.logger.Info().Str("flag", flagKey).Str("environment", envKey).Msg("targeting rules replaced")
	return nil
}
