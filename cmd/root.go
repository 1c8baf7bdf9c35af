package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	"github.com/oshokin/lyrics-grabber/internal/version"
)

const (
	flagMaxResults  = "max-results"
	flagFetchMode   = "fetch-mode"
	flagFormat      = "format"
	flagEmbedLyrics = "embed-lyrics"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "lyrics-grabber",
		Short: "Find song lyrics from a fragment, a title or an artist.",
		Long: `Lyrics Grabber is an interactive CLI for finding song lyrics.
It offers two independent sessions:
- scrape: search lyrics.com pages for a lyrics fragment
- genius: search the Genius API by snippet, title or artist

After the lyrics are shown it can download the song's audio with yt-dlp.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.SetVersionTemplate("{{.Name}} " + version.Full() + "\n")
}

func initConfig(cmd *cobra.Command, _ []string) error {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)

	return nil
}

// addSessionFlags registers the flags shared by the search sessions.
func addSessionFlags(flags *pflag.FlagSet) {
	flags.Int64P(
		flagMaxResults,
		"n",
		0,
		"maximum number of results to offer.")

	flags.StringP(
		flagFormat,
		"f",
		"",
		"default audio format for downloads: mp3, m4a, webm, aac, wav or flac.")

	flags.BoolP(
		flagEmbedLyrics,
		"l",
		false,
		"embed lyrics and cover art into downloaded mp3 and flac files.")
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup(flagMaxResults); flag != nil && flag.Changed {
		cfg.MaxResults, _ = flags.GetInt64(flagMaxResults)
	}

	if flag := flags.Lookup(flagFetchMode); flag != nil && flag.Changed {
		cfg.FetchMode, _ = flags.GetString(flagFetchMode)
	}

	if flag := flags.Lookup(flagFormat); flag != nil && flag.Changed {
		cfg.AudioFormat, _ = flags.GetString(flagFormat)
	}

	if flag := flags.Lookup(flagEmbedLyrics); flag != nil && flag.Changed {
		cfg.EmbedLyrics, _ = flags.GetBool(flagEmbedLyrics)
	}

	return config.ValidateConfig(cfg)
}
