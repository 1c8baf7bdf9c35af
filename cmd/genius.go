package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/lyrics-grabber/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var geniusCmd = &cobra.Command{
	Use:   "genius",
	Short: "Search Genius by lyrics snippet, title or artist",
	Long: `Searches the Genius API and prints the lyrics of the song you pick.

Search modes:
1) a lyrics snippet, optionally narrowed to one artist
2) a song title, optionally narrowed to one artist
3) an artist, browsing albums and their songs

An access token is read from the configuration file or from the
GENIUS_CLIENT_ACCESS_TOKEN or GENIUS_ACCESS_TOKEN environment variables.
Without one you are asked for it before anything is searched.`,
	Args:    cobra.NoArgs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.ExecuteGeniusCommand(cmd.Context(), appConfig, os.Stdin, os.Stdout)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addSessionFlags(geniusCmd.Flags())

	rootCmd.AddCommand(geniusCmd)
}
