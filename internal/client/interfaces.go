package client

import (
	"context"

	"github.com/MGalimov/flagport/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mocks.go -package=mock

// Action is a top-level choice in the interactive menu.
type Action string

const (
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionValidate Action = "validate"
)

// Prompter abstracts the interactive terminal prompts so workflows can be
// tested without a TTY.
type Prompter interface {
	// SelectProject lets the user pick one of the projects.
	SelectProject(projects []models.Project) (models.Project, error)

	// SelectFlag lets the user pick one of the flags.
	SelectFlag(flags []models.FeatureFlag) (models.FeatureFlag, error)

	// SelectAction shows the main menu.
	SelectAction() (Action, error)

	// PromptText asks for one line of text; empty input falls back to the
	// suggestion.
	PromptText(title, suggestion string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
}

// VariationsEditor abstracts the external-editor round-trip.
type VariationsEditor interface {
	// EditVariations opens the variations in the user's editor and returns
	// the edited list, or an error when editing fails or produces invalid
	// JSON.
	EditVariations(ctx context.Context, variations []models.Variation) ([]models.Variation, error)
}
