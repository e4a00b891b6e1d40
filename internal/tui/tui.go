// Package tui implements the interactive terminal prompts: selection menus
// over remote resources, text inputs, and confirmations.
//
// Each prompt runs as its own short-lived bubbletea program, so the sequence
// of prompts stays strictly sequential and external processes (the text
// editor) can run between them without fighting over the terminal.
package tui

import (
	"fmt"

	"github.com/MGalimov/flagport/internal/client"
	"github.com/MGalimov/flagport/models"
)

// TUI implements [client.Prompter] on top of bubbletea.
type TUI struct {
}

func New() *TUI {
	return &TUI{}
}

// SelectProject shows the project pick list and returns the chosen project.
func (t *TUI) SelectProject(projects []models.Project) (models.Project, error) {
	labels := make([]string, 0, len(projects))
	for _, p := range projects {
		labels = append(labels, fmt.Sprintf("%s (key: %s)", p.Name, p.Key))
	}

	idx, err := selectFromList("Available projects", labels)
	if err != nil {
		return models.Project{}, err
	}
	return projects[idx], nil
}

// SelectFlag shows the feature-flag pick list and returns the chosen flag.
func (t *TUI) SelectFlag(flags []models.FeatureFlag) (models.FeatureFlag, error) {
	labels := make([]string, 0, len(flags))
	for _, f := range flags {
		labels = append(labels, fmt.Sprintf("%s (key: %s)", f.Name, f.Key))
	}

	idx, err := selectFromList("Available JSON feature flags", labels)
	if err != nil {
		return models.FeatureFlag{}, err
	}
	return flags[idx], nil
}

// SelectAction shows the main interactive menu.
func (t *TUI) SelectAction() (client.Action, error) {
	actions := []client.Action{client.ActionCreate, client.ActionUpdate, client.ActionValidate}
	labels := []string{
		"Create a new JSON feature flag",
		"Update an existing JSON feature flag",
		"Validate existing JSON feature flags",
	}

	idx, err := selectFromList("What would you like to do?", labels)
	if err != nil {
		return "", err
	}
	return actions[idx], nil
}

// PromptText asks for a single line of text; an empty submission falls back
// to the suggestion.
func (t *TUI) PromptText(title, suggestion string) (string, error) {
	return promptText(title, suggestion)
}

// Confirm asks a yes/no question.
func (t *TUI) Confirm(question string) (bool, error) {
	return confirm(question)
}
