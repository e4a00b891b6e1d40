// Package cli defines the flagport command tree: create, update and validate
// subcommands plus the interactive mode that runs when the root command is
// invoked without a subcommand.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MGalimov/flagport/internal/adapter"
	"github.com/MGalimov/flagport/internal/client"
	"github.com/MGalimov/flagport/internal/config"
	"github.com/MGalimov/flagport/internal/editor"
	"github.com/MGalimov/flagport/internal/logger"
	"github.com/MGalimov/flagport/internal/service"
	"github.com/MGalimov/flagport/internal/tui"
	"github.com/MGalimov/flagport/internal/validators"
)

var version = "dev"

// Connection flags, shared by every subcommand. Empty values fall back to
// the LD_* environment variables (see the config package).
var conn config.Config

// Flat-mode flags on the root command, kept for backwards compatibility with
// the pre-subcommand invocation style.
var (
	rootFlagKey        string
	rootFlagName       string
	rootVariationsFile string
	rootEnvRules       []string
)

var rootCmd = &cobra.Command{
	Use:   "flagport",
	Short: "Manage LaunchDarkly JSON flags that carry TCP port configuration",
	Long: `flagport creates, updates and validates LaunchDarkly feature flags whose
JSON variation values configure a TCP port. Every variation value must be a
JSON object with an integer "tcp_port" property between 0 and 65535; flagport
enforces that rule before anything is sent to the API.

Run without a subcommand for the interactive mode, or pass --flag-key,
--flag-name and --variations directly to create a flag in one shot.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flatMode := rootFlagKey != "" || rootFlagName != "" || rootVariationsFile != ""
		if flatMode && (rootFlagKey == "" || rootFlagName == "" || rootVariationsFile == "") {
			return errors.New("--flag-key, --flag-name and --variations must be provided together")
		}

		app, err := buildApp()
		if err != nil {
			return err
		}
		if flatMode {
			return app.CreateFlag(cmd.Context(), rootFlagKey, rootFlagName, rootVariationsFile, rootEnvRules)
		}
		return app.Interactive(cmd.Context())
	},
}

// Execute runs the command tree. Declined confirmations surface as
// [client.ErrAborted], which callers may treat as a plain non-zero exit.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion overrides the version reported by --version with build-time
// information.
func SetVersion(buildVersion, buildCommit string) {
	version = buildVersion
	if buildCommit != "" {
		version = fmt.Sprintf("%s (%s)", buildVersion, buildCommit)
	}
	rootCmd.Version = version
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&conn.APIKey, "api-key", "", "LaunchDarkly API key (default $LD_API_KEY)")
	pf.StringVar(&conn.ProjectKey, "project-key", "", "project key (default $LD_PROJECT_KEY)")
	pf.StringVar(&conn.BaseURL, "base-url", "", "API base URL (default $LD_BASE_URL or "+config.DefaultBaseURL+")")
	pf.DurationVar(&conn.Timeout, "timeout", 0, "HTTP request timeout (default $LD_TIMEOUT or "+config.DefaultTimeout.String()+")")

	f := rootCmd.Flags()
	f.StringVar(&rootFlagKey, "flag-key", "", "feature flag key (flat create mode)")
	f.StringVar(&rootFlagName, "flag-name", "", "feature flag name (flat create mode)")
	f.StringVar(&rootVariationsFile, "variations", "", "path to a JSON file with the flag variations (flat create mode)")
	f.StringArrayVar(&rootEnvRules, "env-rules", nil, "targeting rules per environment as environment:rules.json (repeatable)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(validateCmd)
}

// buildApp assembles the full client stack: merged configuration, logger,
// REST adapter, validating service layer, terminal prompter and external
// editor.
func buildApp() (*client.App, error) {
	cfg, err := config.GetConfig(conn)
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger("flagport")

	flagAdapter, err := adapter.NewHTTPFlagAdapter(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init API client: %w", err)
	}

	services := service.NewFlagService(flagAdapter, validators.NewPortValidator(), log)

	return client.NewApp(services, tui.New(), editor.New(log), cfg.ProjectKey, nil, log), nil
}
