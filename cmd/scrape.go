package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/lyrics-grabber/internal/app"
	"github.com/oshokin/lyrics-grabber/internal/config"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Search lyrics.com for a lyrics fragment",
	Long: `Searches lyrics.com for a lyrics fragment, lists the matching songs
and prints the lyrics of the one you pick.

Every matching song page is fetched to learn its title and artist, with a
polite delay between requests. Use --fetch-mode browser when the site
rejects plain HTTP clients.`,
	Args:    cobra.NoArgs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.ExecuteScrapeCommand(cmd.Context(), appConfig, os.Stdin, os.Stdout)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := scrapeCmd.Flags()

	addSessionFlags(flags)

	flags.StringP(
		flagFetchMode,
		"m",
		"",
		"how pages are loaded: "+config.FetchModeHTTP+" or "+config.FetchModeBrowser+" (headless Chromium).")

	rootCmd.AddCommand(scrapeCmd)
}
