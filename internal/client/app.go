package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MGalimov/flagport/internal/logger"
	"github.com/MGalimov/flagport/internal/service"
	"github.com/MGalimov/flagport/models"
)

// App drives the user-facing workflows, wiring the flag service, the
// interactive prompter and the external editor together.
type App struct {
	services   service.FlagService
	prompter   Prompter
	editor     VariationsEditor
	projectKey string
	out        io.Writer
	logger     *logger.Logger
}

// NewApp returns an App bound to the given collaborators. projectKey may be
// empty, in which case workflows prompt the user to pick a project. A nil
// out defaults to stdout.
func NewApp(services service.FlagService, prompter Prompter, editor VariationsEditor, projectKey string, out io.Writer, log *logger.Logger) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{
		services:   services,
		prompter:   prompter,
		editor:     editor,
		projectKey: projectKey,
		out:        out,
		logger:     log,
	}
}

// CreateFlag creates a JSON feature flag from a variations file and
// optionally applies per-environment targeting rules given as
// "environment:rules.json" pairs. Rule application failures are reported but
// do not fail the whole workflow once the flag itself exists.
func (a *App) CreateFlag(ctx context.Context, flagKey, flagName, variationsFile string, envRules []string) error {
	project, err := a.resolveProject(ctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(variationsFile)
	if err != nil {
		return fmt.Errorf("read variations file: %w", err)
	}
	variations, err := models.DecodeVariations(data)
	if err != nil {
		return fmt.Errorf("parse variations file %s: %w", variationsFile, err)
	}

	created, err := a.services.CreateFlag(ctx, project, flagKey, flagName, variations)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Flag %q created successfully (key: %s)\n", created.Name, created.Key)
	a.copyKeyToClipboard(created.Key)

	for _, rule := range envRules {
		envKey, path, ok := strings.Cut(rule, ":")
		if !ok || envKey == "" || path == "" {
			fmt.Fprintf(a.out, "Skipping invalid environment rule %q (expected environment:rules.json)\n", rule)
			continue
		}
		if err := a.applyTargetingRules(ctx, project, created.Key, envKey, path); err != nil {
			fmt.Fprintf(a.out, "Failed to apply targeting rules for environment %q: %v\n", envKey, err)
			a.logger.Warn().Err(err).Str("environment", envKey).Msg("targeting rules not applied")
			continue
		}
		fmt.Fprintf(a.out, "Targeting rules applied to environment %q\n", envKey)
	}
	return nil
}

func (a *App) applyTargetingRules(ctx context.Context, project, flagKey, envKey, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rules file: %w", err)
	}
	var rules []models.TargetingRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return a.services.ReplaceTargetingRules(ctx, project, flagKey, envKey, rules)
}

// UpdateVariations lets the user pick a JSON flag, edit its variations in
// the external editor and push the result back after confirmation.
func (a *App) UpdateVariations(ctx context.Context) error {
	project, err := a.resolveProject(ctx)
	if err != nil {
		return err
	}

	flags, err := a.services.ListJSONFlags(ctx, project)
	if err != nil {
		return err
	}
	if len(flags) == 0 {
		return fmt.Errorf("%w in project %q", ErrNoJSONFlags, project)
	}

	flag, err := a.prompter.SelectFlag(flags)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Current variations of %q:\n", flag.Key)
	a.printVariations(flag.Variations)

	edited, err := a.editor.EditVariations(ctx, flag.Variations)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Updated variations:")
	a.printVariations(edited)

	ok, err := a.prompter.Confirm("Update the flag with these variations?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Update cancelled")
		return ErrAborted
	}

	if _, err := a.services.UpdateVariations(ctx, project, flag.Key, edited); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Flag %q updated successfully\n", flag.Key)
	return nil
}

// ValidateFlags checks every JSON flag in the project against the tcp_port
// contract and reports violations. With fix set, the user is offered the
// editor for each invalid flag. It returns an error when invalid flags
// remain, so the command exits non-zero.
func (a *App) ValidateFlags(ctx context.Context, fix bool) error {
	project, err := a.resolveProject(ctx)
	if err != nil {
		return err
	}

	reports, err := a.services.ValidateFlags(ctx, project)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintf(a.out, "No JSON feature flags found in project %q\n", project)
		return nil
	}

	var invalid []service.FlagReport
	for _, report := range reports {
		if report.Valid() {
			fmt.Fprintf(a.out, "OK   %s\n", report.Flag.Key)
			continue
		}
		fmt.Fprintf(a.out, "FAIL %s\n", report.Flag.Key)
		for _, line := range strings.Split(report.Err.Error(), "\n") {
			fmt.Fprintf(a.out, "     %s\n", line)
		}
		invalid = append(invalid, report)
	}

	if len(invalid) == 0 {
		fmt.Fprintf(a.out, "All %d flags are valid\n", len(reports))
		return nil
	}

	remaining := len(invalid)
	if fix {
		for _, report := range invalid {
			if a.fixFlag(ctx, project, report) {
				remaining--
			}
		}
	}
	if remaining > 0 {
		return fmt.Errorf("%d of %d flags failed validation", remaining, len(reports))
	}
	fmt.Fprintf(a.out, "All %d flags fixed\n", len(invalid))
	return nil
}

func (a *App) fixFlag(ctx context.Context, project string, report service.FlagReport) bool {
	ok, err := a.prompter.Confirm(fmt.Sprintf("Fix flag %q now?", report.Flag.Key))
	if err != nil || !ok {
		return false
	}
	edited, err := a.editor.EditVariations(ctx, report.Flag.Variations)
	if err != nil {
		fmt.Fprintf(a.out, "Editing %q failed: %v\n", report.Flag.Key, err)
		return false
	}
	if _, err := a.services.UpdateVariations(ctx, project, report.Flag.Key, edited); err != nil {
		fmt.Fprintf(a.out, "Updating %q failed: %v\n", report.Flag.Key, err)
		return false
	}
	fmt.Fprintf(a.out, "Flag %q fixed\n", report.Flag.Key)
	return true
}

// Interactive runs the menu-driven mode: pick a project, pick an action,
// then hand off to the matching workflow.
func (a *App) Interactive(ctx context.Context) error {
	if _, err := a.resolveProject(ctx); err != nil {
		return err
	}

	action, err := a.prompter.SelectAction()
	if err != nil {
		return err
	}

	switch action {
	case ActionCreate:
		return a.interactiveCreate(ctx)
	case ActionUpdate:
		return a.UpdateVariations(ctx)
	case ActionValidate:
		fix, err := a.prompter.Confirm("Offer to fix invalid flags?")
		if err != nil {
			return err
		}
		return a.ValidateFlags(ctx, fix)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func (a *App) interactiveCreate(ctx context.Context) error {
	project := a.projectKey

	name, err := a.prompter.PromptText("Enter feature flag name", "")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("flag name must not be empty")
	}

	suggested := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	key, err := a.prompter.PromptText("Enter feature flag key", suggested)
	if err != nil {
		return err
	}

	template := a.templateVariations(ctx, project)
	variations, err := a.editor.EditVariations(ctx, template)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Variations to create:")
	a.printVariations(variations)

	ok, err := a.prompter.Confirm(fmt.Sprintf("Create flag %q?", key))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Creation cancelled")
		return ErrAborted
	}

	created, err := a.services.CreateFlag(ctx, project, key, name, variations)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Flag %q created successfully (key: %s)\n", created.Name, created.Key)
	a.copyKeyToClipboard(created.Key)
	return nil
}

// templateVariations builds one starter variation per environment of the
// project, defaulting the port to 443 for production-like environments and
// 8080 otherwise. Without environment info it falls back to a generic pair.
func (a *App) templateVariations(ctx context.Context, project string) []models.Variation {
	environments, err := a.services.ListEnvironments(ctx, project)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not list environments, using default template")
	}
	if len(environments) == 0 {
		return []models.Variation{
			{Name: "Production", Description: "Production configuration", Value: map[string]any{"tcp_port": 443}},
			{Name: "Development", Description: "Development configuration", Value: map[string]any{"tcp_port": 8080}},
		}
	}

	variations := make([]models.Variation, 0, len(environments))
	for _, env := range environments {
		port := 8080
		if strings.Contains(strings.ToLower(env.Key), "prod") {
			port = 443
		}
		variations = append(variations, models.Variation{
			Name:        env.Name,
			Description: fmt.Sprintf("%s configuration", env.Name),
			Value:       map[string]any{"tcp_port": port},
		})
	}
	return variations
}

// resolveProject returns the configured project key, prompting the user to
// pick one when none was provided. The choice is remembered for subsequent
// calls within the same run.
func (a *App) resolveProject(ctx context.Context) (string, error) {
	if a.projectKey != "" {
		return a.projectKey, nil
	}

	projects, err := a.services.ListProjects(ctx)
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "", fmt.Errorf("no projects available")
	}

	project, err := a.prompter.SelectProject(projects)
	if err != nil {
		return "", err
	}
	a.projectKey = project.Key
	return a.projectKey, nil
}

func (a *App) printVariations(variations []models.Variation) {
	for i, variation := range variations {
		value, err := json.Marshal(variation.Value)
		if err != nil {
			value = []byte(fmt.Sprintf("%v", variation.Value))
		}
		label := variation.Name
		if label == "" {
			label = fmt.Sprintf("variation %d", i+1)
		}
		fmt.Fprintf(a.out, "  %d. %s: %s\n", i+1, label, value)
	}
}

func (a *App) copyKeyToClipboard(key string) {
	if err := clipboard.WriteAll(key); err != nil {
		a.logger.Debug().Err(err).Msg("clipboard unavailable")
		return
	}
	fmt.Fprintln(a.out, "Flag key copied to clipboard")
}
