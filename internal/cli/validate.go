package cli

import (
	"github.com/spf13/cobra"
)

var validateFix bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every JSON flag of the project against the tcp_port rule",
	Long: `Scan the project's JSON feature flags and report each variation value that
violates the tcp_port contract. The command exits non-zero when invalid flags
remain, so it can gate CI pipelines.

With --fix, flagport offers to open each invalid flag in the editor and
update it in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		return app.ValidateFlags(cmd.Context(), validateFix)
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateFix, "fix", false, "offer to fix invalid flags in the editor")
}
