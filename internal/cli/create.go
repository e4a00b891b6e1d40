package cli

import (
	"github.com/spf13/cobra"
)

var (
	createFlagKey        string
	createFlagName       string
	createVariationsFile string
	createEnvRules       []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a JSON feature flag from a variations file",
	Long: `Create a project-level JSON feature flag. The variations file must contain
a JSON array of variation objects whose "value" is an object with an integer
"tcp_port" property between 0 and 65535.

Targeting rules can be applied per environment with repeated --env-rules
pairs, e.g. --env-rules production:prod-rules.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		return app.CreateFlag(cmd.Context(), createFlagKey, createFlagName, createVariationsFile, createEnvRules)
	},
}

func init() {
	f := createCmd.Flags()
	f.StringVar(&createFlagKey, "flag-key", "", "feature flag key")
	f.StringVar(&createFlagName, "flag-name", "", "feature flag name")
	f.StringVar(&createVariationsFile, "variations", "", "path to a JSON file with the flag variations")
	f.StringArrayVar(&createEnvRules, "env-rules", nil, "targeting rules per environment as environment:rules.json (repeatable)")

	cobra.CheckErr(createCmd.MarkFlagRequired("flag-key"))
	cobra.CheckErr(createCmd.MarkFlagRequired("flag-name"))
	cobra.CheckErr(createCmd.MarkFlagRequired("variations"))
}
