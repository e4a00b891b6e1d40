package client_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MGalimov/flagport/internal/client"
	"github.com/MGalimov/flagport/internal/logger"
	"github.com/MGalimov/flagport/internal/mock"
	"github.com/MGalimov/flagport/internal/service"
	"github.com/MGalimov/flagport/models"
)

type testApp struct {
	app      *client.App
	services *mock.MockFlagService
	prompter *mock.MockPrompter
	editor   *mock.MockVariationsEditor
	out      *bytes.Buffer
}

func newTestApp(t *testing.T, projectKey string) testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	services := mock.NewMockFlagService(ctrl)
	prompter := mock.NewMockPrompter(ctrl)
	editor := mock.NewMockVariationsEditor(ctrl)
	out := &bytes.Buffer{}

	return testApp{
		app:      client.NewApp(services, prompter, editor, projectKey, out, logger.Nop()),
		services: services,
		prompter: prompter,
		editor:   editor,
		out:      out,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── CreateFlag ──────────────────────────────────────────────────────────────

func TestCreateFlagFromVariationsFile(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	path := writeFile(t, "variations.json", `[
		{"name": "Production", "value": {"tcp_port": 443}},
		{"name": "Development", "value": {"tcp_port": 8080}}
	]`)

	tapp.services.EXPECT().
		CreateFlag(gomock.Any(), "my-project", "service-port", "Service Port", gomock.Len(2)).
		Return(models.FeatureFlag{Key: "service-port", Name: "Service Port"}, nil)

	err := tapp.app.CreateFlag(context.Background(), "service-port", "Service Port", path, nil)
	require.NoError(t, err)
	assert.Contains(t, tapp.out.String(), "created successfully")
}

func TestCreateFlagAppliesEnvironmentRules(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	variations := writeFile(t, "variations.json", `[{"value": {"tcp_port": 443}}]`)
	rules := writeFile(t, "rules.json", `[{"variation": 0, "clauses": []}]`)

	tapp.services.EXPECT().
		CreateFlag(gomock.Any(), "my-project", "service-port", "Service Port", gomock.Any()).
		Return(models.FeatureFlag{Key: "service-port"}, nil)
	tapp.services.EXPECT().
		ReplaceTargetingRules(gomock.Any(), "my-project", "service-port", "production", gomock.Len(1)).
		Return(nil)

	err := tapp.app.CreateFlag(context.Background(), "service-port", "Service Port", variations, []string{"production:" + rules})
	require.NoError(t, err)
	assert.Contains(t, tapp.out.String(), `Targeting rules applied to environment "production"`)
}

func TestCreateFlagReportsRuleFailuresWithoutFailing(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	variations := writeFile(t, "variations.json", `[{"value": {"tcp_port": 443}}]`)
	rules := writeFile(t, "rules.json", `[{"variation": 0}]`)

	tapp.services.EXPECT().
		CreateFlag(gomock.Any(), "my-project", "service-port", "Service Port", gomock.Any()).
		Return(models.FeatureFlag{Key: "service-port"}, nil)
	tapp.services.EXPECT().
		ReplaceTargetingRules(gomock.Any(), "my-project", "service-port", "staging", gomock.Any()).
		Return(errors.New("boom"))

	err := tapp.app.CreateFlag(context.Background(), "service-port", "Service Port", variations,
		[]string{"staging:" + rules, "not-a-rule"})
	require.NoError(t, err)

	output := tapp.out.String()
	assert.Contains(t, output, `Failed to apply targeting rules for environment "staging"`)
	assert.Contains(t, output, `Skipping invalid environment rule "not-a-rule"`)
}

func TestCreateFlagFailsOnUnreadableVariationsFile(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	err := tapp.app.CreateFlag(context.Background(), "service-port", "Service Port", "/does/not/exist.json", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read variations file")
}

// ── UpdateVariations ────────────────────────────────────────────────────────

func TestUpdateVariationsRoundTripsThroughEditor(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	current := []models.Variation{{ID: "var-1", Name: "Production", Value: map[string]any{"tcp_port": float64(443)}}}
	edited := []models.Variation{{ID: "var-1", Name: "Production", Value: map[string]any{"tcp_port": float64(9443)}}}
	flag := models.FeatureFlag{Key: "service-port", Variations: current}

	tapp.services.EXPECT().ListJSONFlags(gomock.Any(), "my-project").Return([]models.FeatureFlag{flag}, nil)
	tapp.prompter.EXPECT().SelectFlag([]models.FeatureFlag{flag}).Return(flag, nil)
	tapp.editor.EXPECT().EditVariations(gomock.Any(), current).Return(edited, nil)
	tapp.prompter.EXPECT().Confirm("Update the flag with these variations?").Return(true, nil)
	tapp.services.EXPECT().
		UpdateVariations(gomock.Any(), "my-project", "service-port", edited).
		Return(models.FeatureFlag{Key: "service-port", Variations: edited}, nil)

	err := tapp.app.UpdateVariations(context.Background())
	require.NoError(t, err)
	assert.Contains(t, tapp.out.String(), "updated successfully")
}

func TestUpdateVariationsAbortsWhenNotConfirmed(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	flag := models.FeatureFlag{
		Key:        "service-port",
		Variations: []models.Variation{{Value: map[string]any{"tcp_port": float64(443)}}},
	}

	tapp.services.EXPECT().ListJSONFlags(gomock.Any(), "my-project").Return([]models.FeatureFlag{flag}, nil)
	tapp.prompter.EXPECT().SelectFlag(gomock.Any()).Return(flag, nil)
	tapp.editor.EXPECT().EditVariations(gomock.Any(), gomock.Any()).Return(flag.Variations, nil)
	tapp.prompter.EXPECT().Confirm(gomock.Any()).Return(false, nil)
	// No UpdateVariations expectation: the flag must not be touched.

	err := tapp.app.UpdateVariations(context.Background())
	assert.ErrorIs(t, err, client.ErrAborted)
}

func TestUpdateVariationsFailsWithoutJSONFlags(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	tapp.services.EXPECT().ListJSONFlags(gomock.Any(), "my-project").Return(nil, nil)

	err := tapp.app.UpdateVariations(context.Background())
	assert.ErrorIs(t, err, client.ErrNoJSONFlags)
}

// ── ValidateFlags ───────────────────────────────────────────────────────────

func TestValidateFlagsAllValid(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	tapp.services.EXPECT().ValidateFlags(gomock.Any(), "my-project").Return([]service.FlagReport{
		{Flag: models.FeatureFlag{Key: "a"}},
		{Flag: models.FeatureFlag{Key: "b"}},
	}, nil)

	err := tapp.app.ValidateFlags(context.Background(), false)
	require.NoError(t, err)
	assert.Contains(t, tapp.out.String(), "All 2 flags are valid")
}

func TestValidateFlagsFailsOnInvalidFlags(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	tapp.services.EXPECT().ValidateFlags(gomock.Any(), "my-project").Return([]service.FlagReport{
		{Flag: models.FeatureFlag{Key: "good"}},
		{Flag: models.FeatureFlag{Key: "bad"}, Err: errors.New("validation failed for variation 1: tcp_port must be an integer")},
	}, nil)

	err := tapp.app.ValidateFlags(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 flags failed validation")

	output := tapp.out.String()
	assert.Contains(t, output, "OK   good")
	assert.Contains(t, output, "FAIL bad")
	assert.Contains(t, output, "tcp_port must be an integer")
}

func TestValidateFlagsFixesInvalidFlagViaEditor(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	broken := []models.Variation{{Value: map[string]any{"tcp_port": "443"}}}
	repaired := []models.Variation{{Value: map[string]any{"tcp_port": float64(443)}}}

	tapp.services.EXPECT().ValidateFlags(gomock.Any(), "my-project").Return([]service.FlagReport{
		{Flag: models.FeatureFlag{Key: "bad", Variations: broken}, Err: errors.New("tcp_port must be an integer")},
	}, nil)
	tapp.prompter.EXPECT().Confirm(`Fix flag "bad" now?`).Return(true, nil)
	tapp.editor.EXPECT().EditVariations(gomock.Any(), broken).Return(repaired, nil)
	tapp.services.EXPECT().
		UpdateVariations(gomock.Any(), "my-project", "bad", repaired).
		Return(models.FeatureFlag{Key: "bad", Variations: repaired}, nil)

	err := tapp.app.ValidateFlags(context.Background(), true)
	require.NoError(t, err)
	assert.Contains(t, tapp.out.String(), `Flag "bad" fixed`)
}

func TestValidateFlagsCountsDeclinedFixesAsFailures(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	tapp.services.EXPECT().ValidateFlags(gomock.Any(), "my-project").Return([]service.FlagReport{
		{Flag: models.FeatureFlag{Key: "bad"}, Err: errors.New("tcp_port must be an integer")},
	}, nil)
	tapp.prompter.EXPECT().Confirm(gomock.Any()).Return(false, nil)

	err := tapp.app.ValidateFlags(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 flags failed validation")
}

func TestValidateFlagsReportsEmptyProject(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	tapp.services.EXPECT().ValidateFlags(gomock.Any(), "my-project").Return(nil, nil)

	err := tapp.app.ValidateFlags(context.Background(), false)
	require.NoError(t, err)
	assert.Contains(t, tapp.out.String(), "No JSON feature flags found")
}

// ── Interactive ─────────────────────────────────────────────────────────────

func TestInteractiveCreateFlow(t *testing.T) {
	tapp := newTestApp(t, "")

	projects := []models.Project{{Key: "my-project", Name: "My Project"}}
	environments := []models.Environment{
		{Key: "production", Name: "Production"},
		{Key: "development", Name: "Development"},
	}
	edited := []models.Variation{{Name: "Production", Value: map[string]any{"tcp_port": float64(443)}}}

	tapp.services.EXPECT().ListProjects(gomock.Any()).Return(projects, nil)
	tapp.prompter.EXPECT().SelectProject(projects).Return(projects[0], nil)
	tapp.prompter.EXPECT().SelectAction().Return(client.ActionCreate, nil)
	tapp.prompter.EXPECT().PromptText("Enter feature flag name", "").Return("Service Port", nil)
	tapp.prompter.EXPECT().PromptText("Enter feature flag key", "service-port").Return("service-port", nil)
	tapp.services.EXPECT().ListEnvironments(gomock.Any(), "my-project").Return(environments, nil)
	tapp.editor.EXPECT().
		EditVariations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, template []models.Variation) ([]models.Variation, error) {
			require.Len(t, template, 2)
			assert.Equal(t, map[string]any{"tcp_port": 443}, template[0].Value)
			assert.Equal(t, map[string]any{"tcp_port": 8080}, template[1].Value)
			return edited, nil
		})
	tapp.prompter.EXPECT().Confirm(`Create flag "service-port"?`).Return(true, nil)
	tapp.services.EXPECT().
		CreateFlag(gomock.Any(), "my-project", "service-port", "Service Port", edited).
		Return(models.FeatureFlag{Key: "service-port", Name: "Service Port"}, nil)

	err := tapp.app.Interactive(context.Background())
	require.NoError(t, err)
	assert.Contains(t, tapp.out.String(), "created successfully")
}

func TestInteractiveCreateAbortsWhenDeclined(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	tapp.prompter.EXPECT().SelectAction().Return(client.ActionCreate, nil)
	tapp.prompter.EXPECT().PromptText("Enter feature flag name", "").Return("Service Port", nil)
	tapp.prompter.EXPECT().PromptText("Enter feature flag key", "service-port").Return("service-port", nil)
	tapp.services.EXPECT().ListEnvironments(gomock.Any(), "my-project").Return(nil, nil)
	tapp.editor.EXPECT().
		EditVariations(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, template []models.Variation) ([]models.Variation, error) {
			return template, nil
		})
	tapp.prompter.EXPECT().Confirm(gomock.Any()).Return(false, nil)

	err := tapp.app.Interactive(context.Background())
	assert.ErrorIs(t, err, client.ErrAborted)
}

func TestInteractiveValidateAsksAboutFixing(t *testing.T) {
	tapp := newTestApp(t, "my-project")

	tapp.prompter.EXPECT().SelectAction().Return(client.ActionValidate, nil)
	tapp.prompter.EXPECT().Confirm("Offer to fix invalid flags?").Return(false, nil)
	tapp.services.EXPECT().ValidateFlags(gomock.Any(), "my-project").Return([]service.FlagReport{
		{Flag: models.FeatureFlag{Key: "good"}},
	}, nil)

	err := tapp.app.Interactive(context.Background())
	require.NoError(t, err)
}

func TestInteractiveStopsWithoutProjects(t *testing.T) {
	tapp := newTestApp(t, "")

	tapp.services.EXPECT().ListProjects(gomock.Any()).Return(nil, nil)

	err := tapp.app.Interactive(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no projects available")
}
