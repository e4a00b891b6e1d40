package cli

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit the variations of an existing JSON flag in $EDITOR",
	Long: `Pick one of the project's JSON feature flags, edit its variations in the
external editor ($VISUAL, $EDITOR or vi) and push the result back. The edited
variations are validated against the tcp_port rule before the update is sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		return app.UpdateVariations(cmd.Context())
	},
}
