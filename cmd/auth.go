package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/lyrics-grabber/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage the Genius access token.

Use 'auth set-token' to store your token in the configuration file.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	authSetTokenCmd = &cobra.Command{
		Use:   "set-token [token]",
		Short: "Save a Genius access token to the configuration file",
		Long: `Saves a Genius client access token to the configuration file.

Create a token at https://genius.com/api-clients. When the token is not
given as an argument you are asked for it. Other settings in the file
and their order are kept.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: initConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) > 0 {
				token = args[0]
			}

			return app.ExecuteAuthSetTokenCommand(cmd.Context(), appConfig, token, os.Stdin, os.Stderr)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authCmd.AddCommand(authSetTokenCmd)

	rootCmd.AddCommand(authCmd)
}
