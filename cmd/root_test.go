package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/constants"
)

const testBaseConfigContent = `
genius_access_token: "config_token"
log_level: "info"
max_results: 7
fetch_mode: "http"
audio_format: "m4a"
embed_lyrics: false
`

func newSessionTestCommand() *cobra.Command {
	testCmd := &cobra.Command{Use: "test"}

	addSessionFlags(testCmd.Flags())
	testCmd.Flags().StringP(flagFetchMode, "m", "", "fetch mode")

	return testCmd
}

func loadTestConfig(t *testing.T, content string) *config.Config {
	t.Helper()

	t.Setenv("GENIUS_CLIENT_ACCESS_TOKEN", "")
	t.Setenv("GENIUS_ACCESS_TOKEN", "")

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")

	err := os.WriteFile(configPath, []byte(content), constants.DefaultFilePermissions)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:funlen // It's a comprehensive integration test.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, int64(7), cfg.MaxResults)
				assert.Equal(t, config.FetchModeHTTP, cfg.FetchMode)
				assert.Equal(t, "m4a", cfg.AudioFormat)
				assert.False(t, cfg.EmbedLyrics)
			},
		},
		{
			name:  "max results flag",
			flags: map[string]string{flagMaxResults: "3"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, int64(3), cfg.MaxResults)
				assert.Equal(t, "m4a", cfg.AudioFormat)
			},
		},
		{
			name:  "fetch mode flag is normalized",
			flags: map[string]string{flagFetchMode: " Browser "},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, config.FetchModeBrowser, cfg.FetchMode)
			},
		},
		{
			name:  "format flag is normalized",
			flags: map[string]string{flagFormat: "FLAC"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "flac", cfg.AudioFormat)
			},
		},
		{
			name:  "embed lyrics flag",
			flags: map[string]string{flagEmbedLyrics: "true"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.EmbedLyrics)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				flagMaxResults:  "20",
				flagFetchMode:   "browser",
				flagFormat:      "wav",
				flagEmbedLyrics: "true",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, int64(20), cfg.MaxResults)
				assert.Equal(t, config.FetchModeBrowser, cfg.FetchMode)
				assert.Equal(t, "wav", cfg.AudioFormat)
				assert.True(t, cfg.EmbedLyrics)
				assert.Equal(t, "config_token", cfg.GeniusAccessToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, testBaseConfigContent)
			testCmd := newSessionTestCommand()

			for name, value := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(name, value))
			}

			require.NoError(t, bindFlagsToConfig(testCmd.Flags(), cfg))
			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values fail validation.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	tests := []struct {
		name          string
		flagName      string
		flagValue     string
		expectedError error
	}{
		{name: "zero max results", flagName: flagMaxResults, flagValue: "0", expectedError: config.ErrInvalidMaxResults},
		{name: "negative max results", flagName: flagMaxResults, flagValue: "-1", expectedError: config.ErrInvalidMaxResults},
		{name: "huge max results", flagName: flagMaxResults, flagValue: "1099511627776", expectedError: config.ErrInvalidMaxResults},
		{name: "unknown fetch mode", flagName: flagFetchMode, flagValue: "carrier-pigeon", expectedError: config.ErrUnknownFetchMode},
		{name: "unknown format", flagName: flagFormat, flagValue: "ogg", expectedError: config.ErrUnknownAudioFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, testBaseConfigContent)
			testCmd := newSessionTestCommand()

			require.NoError(t, testCmd.Flags().Set(tt.flagName, tt.flagValue))

			err := bindFlagsToConfig(testCmd.Flags(), cfg)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		LogLevel:       "info",
		MaxResults:     10,
		RequestTimeout: "15s",
		PoliteDelay:    "800ms",
		MaxPageSize:    "5 MB",
		PageCacheSize:  64,
		YtdlpPath:      "yt-dlp",
		OutputTemplate: "%(title)s.%(ext)s",
	}

	// Calling with empty flag set should just validate the config.
	err := bindFlagsToConfig(pflag.NewFlagSet("test", pflag.ContinueOnError), cfg)
	require.NoError(t, err)
	assert.Equal(t, config.FetchModeHTTP, cfg.FetchMode)
	assert.Equal(t, constants.DefaultAudioFormat, cfg.AudioFormat)
}

func TestCommandTree(t *testing.T) {
	t.Parallel()

	for _, path := range [][]string{{"scrape"}, {"genius"}, {"auth", "set-token"}} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.NotNil(t, found.RunE, path)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, scrapeCmd.Flags().Lookup(flagFetchMode))
	assert.Nil(t, geniusCmd.Flags().Lookup(flagFetchMode))
	assert.NotEmpty(t, rootCmd.Version)
}
