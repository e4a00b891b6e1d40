package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MGalimov/flagport/internal/adapter"
	"github.com/MGalimov/flagport/internal/logger"
	"github.com/MGalimov/flagport/internal/mock"
	"github.com/MGalimov/flagport/internal/service"
	"github.com/MGalimov/flagport/internal/validators"
	"github.com/MGalimov/flagport/models"
)

func newTestService(t *testing.T) (service.FlagService, *mock.MockFlagAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	flagAdapter := mock.NewMockFlagAdapter(ctrl)
	services := service.NewFlagService(flagAdapter, validators.NewPortValidator(), logger.Nop())

	return services, flagAdapter
}

func validVariations() []models.Variation {
	return []models.Variation{
		{ID: "var-1", Name: "Production", Value: map[string]any{"tcp_port": 443}},
		{ID: "var-2", Name: "Development", Value: map[string]any{"tcp_port": 8080}},
	}
}

// ── CreateFlag ──────────────────────────────────────────────────────────────

func TestCreateFlagBuildsJSONFlagRequest(t *testing.T) {
	services, flagAdapter := newTestService(t)

	var captured models.CreateFlagRequest
	flagAdapter.EXPECT().
		CreateFlag(gomock.Any(), "my-project", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.CreateFlagRequest) (models.FeatureFlag, error) {
			captured = req
			return models.FeatureFlag{Key: req.Key, Name: req.Name, Variations: req.Variations}, nil
		})

	created, err := services.CreateFlag(context.Background(), "my-project", "service-port", "Service Port", validVariations())
	require.NoError(t, err)

	assert.Equal(t, "service-port", created.Key)
	assert.Equal(t, "json", captured.Kind)
	assert.Equal(t, []string{"tcp", "network-config"}, captured.Tags)
	assert.False(t, captured.Temporary)
	assert.Equal(t, models.FlagDefaults{OnVariation: 0, OffVariation: 1}, captured.Defaults)
}

func TestCreateFlagRejectsInvalidVariationsBeforeAnyRequest(t *testing.T) {
	services, _ := newTestService(t)

	// No adapter expectation: a call would fail the test.
	variations := []models.Variation{
		{Name: "Bad", Value: map[string]any{"tcp_port": 70000}},
	}

	_, err := services.CreateFlag(context.Background(), "my-project", "service-port", "Service Port", variations)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrPortOutOfRange)
	assert.Contains(t, err.Error(), "validation failed for variation 1")
}

func TestCreateFlagAssignsIDsToNewVariations(t *testing.T) {
	services, flagAdapter := newTestService(t)

	var captured models.CreateFlagRequest
	flagAdapter.EXPECT().
		CreateFlag(gomock.Any(), "my-project", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.CreateFlagRequest) (models.FeatureFlag, error) {
			captured = req
			return models.FeatureFlag{Key: req.Key}, nil
		})

	variations := []models.Variation{
		{ID: "keep-me", Value: map[string]any{"tcp_port": 443}},
		{Value: map[string]any{"tcp_port": 8080}},
	}

	_, err := services.CreateFlag(context.Background(), "my-project", "service-port", "Service Port", variations)
	require.NoError(t, err)

	require.Len(t, captured.Variations, 2)
	assert.Equal(t, "keep-me", captured.Variations[0].ID)
	assert.NotEmpty(t, captured.Variations[1].ID)

	// The caller's slice must stay untouched.
	assert.Empty(t, variations[1].ID)
}

func TestCreateFlagRequiresProjectAndFlagKeys(t *testing.T) {
	services, _ := newTestService(t)

	_, err := services.CreateFlag(context.Background(), "", "service-port", "Service Port", validVariations())
	assert.ErrorIs(t, err, service.ErrProjectRequired)

	_, err = services.CreateFlag(context.Background(), "my-project", "", "Service Port", validVariations())
	assert.ErrorIs(t, err, service.ErrFlagKeyRequired)
}

// ── UpdateVariations ────────────────────────────────────────────────────────

func TestUpdateVariationsRejectsInvalidInputBeforeAnyRequest(t *testing.T) {
	services, _ := newTestService(t)

	variations := []models.Variation{
		{Name: "Bad", Value: map[string]any{"port": 443}},
	}

	_, err := services.UpdateVariations(context.Background(), "my-project", "service-port", variations)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrMissingPort)
}

func TestUpdateVariationsWrapsAdapterError(t *testing.T) {
	services, flagAdapter := newTestService(t)

	flagAdapter.EXPECT().
		UpdateVariations(gomock.Any(), "my-project", "service-port", gomock.Any()).
		Return(models.FeatureFlag{}, adapter.ErrNotFound)

	_, err := services.UpdateVariations(context.Background(), "my-project", "service-port", validVariations())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

// ── ListJSONFlags ───────────────────────────────────────────────────────────

func TestListJSONFlagsFiltersOutNonJSONFlags(t *testing.T) {
	services, flagAdapter := newTestService(t)

	flagAdapter.EXPECT().
		GetFlags(gomock.Any(), "my-project").
		Return([]models.FeatureFlag{{Key: "json-flag"}, {Key: "bool-flag"}}, nil)
	flagAdapter.EXPECT().
		GetFlag(gomock.Any(), "my-project", "json-flag").
		Return(models.FeatureFlag{
			Key:        "json-flag",
			Variations: []models.Variation{{Value: map[string]any{"tcp_port": float64(443)}}},
		}, nil)
	flagAdapter.EXPECT().
		GetFlag(gomock.Any(), "my-project", "bool-flag").
		Return(models.FeatureFlag{
			Key:        "bool-flag",
			Variations: []models.Variation{{Value: true}, {Value: false}},
		}, nil)

	flags, err := services.ListJSONFlags(context.Background(), "my-project")
	require.NoError(t, err)

	require.Len(t, flags, 1)
	assert.Equal(t, "json-flag", flags[0].Key)
}

func TestListJSONFlagsSkipsFlagsWithUnavailableDetails(t *testing.T) {
	services, flagAdapter := newTestService(t)

	flagAdapter.EXPECT().
		GetFlags(gomock.Any(), "my-project").
		Return([]models.FeatureFlag{{Key: "broken"}, {Key: "ok"}}, nil)
	flagAdapter.EXPECT().
		GetFlag(gomock.Any(), "my-project", "broken").
		Return(models.FeatureFlag{}, adapter.ErrInternalServerError)
	flagAdapter.EXPECT().
		GetFlag(gomock.Any(), "my-project", "ok").
		Return(models.FeatureFlag{
			Key:        "ok",
			Variations: []models.Variation{{Value: map[string]any{"tcp_port": float64(8080)}}},
		}, nil)

	flags, err := services.ListJSONFlags(context.Background(), "my-project")
	require.NoError(t, err)

	require.Len(t, flags, 1)
	assert.Equal(t, "ok", flags[0].Key)
}

func TestListJSONFlagsRequiresProjectKey(t *testing.T) {
	services, _ := newTestService(t)

	_, err := services.ListJSONFlags(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrProjectRequired)
}

// ── ValidateFlags ───────────────────────────────────────────────────────────

func TestValidateFlagsReportsEveryFlag(t *testing.T) {
	services, flagAdapter := newTestService(t)

	flagAdapter.EXPECT().
		GetFlags(gomock.Any(), "my-project").
		Return([]models.FeatureFlag{{Key: "good"}, {Key: "bad"}}, nil)
	flagAdapter.EXPECT().
		GetFlag(gomock.Any(), "my-project", "good").
		Return(models.FeatureFlag{
			Key:        "good",
			Variations: []models.Variation{{Value: map[string]any{"tcp_port": float64(443)}}},
		}, nil)
	flagAdapter.EXPECT().
		GetFlag(gomock.Any(), "my-project", "bad").
		Return(models.FeatureFlag{
			Key: "bad",
			Variations: []models.Variation{
				{Value: map[string]any{"tcp_port": float64(443)}},
				{Value: map[string]any{"tcp_port": "8080"}},
			},
		}, nil)

	reports, err := services.ValidateFlags(context.Background(), "my-project")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.True(t, reports[0].Valid())
	assert.False(t, reports[1].Valid())
	assert.ErrorIs(t, reports[1].Err, validators.ErrPortNotInteger)
	assert.Contains(t, reports[1].Err.Error(), "validation failed for variation 2")
}

func TestValidateFlagsPropagatesListingError(t *testing.T) {
	services, flagAdapter := newTestService(t)

	flagAdapter.EXPECT().
		GetFlags(gomock.Any(), "my-project").
		Return(nil, adapter.ErrUnauthorized)

	_, err := services.ValidateFlags(context.Background(), "my-project")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ── ReplaceTargetingRules ───────────────────────────────────────────────────

func TestReplaceTargetingRulesForwardsRules(t *testing.T) {
	services, flagAdapter := newTestService(t)

	rules := []models.TargetingRule{models.TargetingRule(`{"variation":0}`)}
	flagAdapter.EXPECT().
		ReplaceTargetingRules(gomock.Any(), "my-project", "service-port", "production", rules).
		Return(nil)

	err := services.ReplaceTargetingRules(context.Background(), "my-project", "service-port", "production", rules)
	assert.NoError(t, err)
}

func TestReplaceTargetingRulesWrapsAdapterError(t *testing.T) {
	services, flagAdapter := newTestService(t)

	flagAdapter.EXPECT().
		ReplaceTargetingRules(gomock.Any(), "my-project", "service-port", "production", gomock.Any()).
		Return(errors.New("boom"))

	err := services.ReplaceTargetingRules(context.Background(), "my-project", "service-port", "production", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configure environment targeting")
}
