package config

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/lyrics-grabber/internal/constants"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	"github.com/oshokin/lyrics-grabber/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// GeniusAccessToken is the bearer token for the Genius API.
	GeniusAccessToken string `mapstructure:"genius_access_token"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxResults caps how many search results are offered.
	MaxResults int64 `mapstructure:"max_results"`
	// RequestTimeout bounds a single HTTP request (e.g., "15s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// PoliteDelay is the minimum pause between lyrics.com requests (e.g., "800ms").
	PoliteDelay string `mapstructure:"polite_delay"`
	// MaxPageSize caps a downloaded HTML page (e.g., "5 MB").
	MaxPageSize string `mapstructure:"max_page_size"`
	// PageCacheSize is the number of song pages and lyrics kept in memory.
	PageCacheSize int64 `mapstructure:"page_cache_size"`
	// FetchMode selects how lyrics.com pages are downloaded: "http" or "browser".
	FetchMode string `mapstructure:"fetch_mode"`
	// ExcludedTerms drops Genius hits whose title contains any of them.
	ExcludedTerms []string `mapstructure:"excluded_terms"`
	// SkipNonSongs drops Genius hits that are not songs.
	SkipNonSongs bool `mapstructure:"skip_non_songs"`
	// YtdlpPath is the yt-dlp executable name or path.
	YtdlpPath string `mapstructure:"ytdlp_path"`
	// AudioFormat is the default audio format offered for downloads.
	AudioFormat string `mapstructure:"audio_format"`
	// AudioQuality is passed to yt-dlp as --audio-quality.
	AudioQuality string `mapstructure:"audio_quality"`
	// OutputTemplate is passed to yt-dlp as -o.
	OutputTemplate string `mapstructure:"output_template"`
	// EmbedLyrics writes the shown lyrics into the downloaded file.
	EmbedLyrics bool `mapstructure:"embed_lyrics"`
	// LyricsComBaseURL is the lyrics.com site root (set automatically).
	LyricsComBaseURL string
	// GeniusWebBaseURL is the genius.com site root (set automatically).
	GeniusWebBaseURL string
	// GeniusAPIBaseURL is the authenticated Genius API root (set automatically).
	GeniusAPIBaseURL string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedPoliteDelay is the parsed pause between lyrics.com requests.
	ParsedPoliteDelay time.Duration
	// ParsedMaxPageSize is the parsed page size limit in bytes.
	ParsedMaxPageSize int64
}

const (
	// LyricsComBaseURL is the base URL of lyrics.com.
	LyricsComBaseURL = "https://www.lyrics.com"
	// GeniusWebBaseURL is the base URL of genius.com, which also serves the public search API.
	GeniusWebBaseURL = "https://genius.com"
	// GeniusAPIBaseURL is the base URL of the authenticated Genius API.
	GeniusAPIBaseURL = "https://api.genius.com"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".lyrics-grabber.yaml"

	// FetchModeHTTP downloads pages with the plain HTTP client.
	FetchModeHTTP = "http"
	// FetchModeBrowser renders pages with a headless browser.
	FetchModeBrowser = "browser"

	// MaxResultsLimit is the largest accepted max_results.
	MaxResultsLimit = 100

	// GeniusTokenKey is the configuration key of the Genius access token.
	GeniusTokenKey = "genius_access_token"

	// Environment variables checked for the token, in order.
	geniusClientTokenEnv = "GENIUS_CLIENT_ACCESS_TOKEN"
	geniusTokenEnv       = "GENIUS_ACCESS_TOKEN"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidMaxResults indicates that max_results is out of range.
	ErrInvalidMaxResults = errors.New("max_results must be between 1 and 100")
	// ErrInvalidRequestTimeout indicates that request_timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidPoliteDelay indicates that polite_delay is negative.
	ErrInvalidPoliteDelay = errors.New("polite_delay cannot be negative")
	// ErrInvalidMaxPageSize indicates that max_page_size is zero.
	ErrInvalidMaxPageSize = errors.New("max_page_size must be positive")
	// ErrInvalidPageCacheSize indicates that page_cache_size is not positive.
	ErrInvalidPageCacheSize = errors.New("page_cache_size must be a positive integer")
	// ErrUnknownFetchMode indicates that fetch_mode is neither http nor browser.
	ErrUnknownFetchMode = errors.New("unknown fetch mode")
	// ErrUnknownAudioFormat indicates that audio_format is not supported.
	ErrUnknownAudioFormat = errors.New("unknown audio format")
	// ErrEmptyYtdlpPath indicates that ytdlp_path is empty.
	ErrEmptyYtdlpPath = errors.New("ytdlp_path cannot be empty")
	// ErrEmptyOutputTemplate indicates that output_template is empty.
	ErrEmptyOutputTemplate = errors.New("output_template cannot be empty")
	// ErrEmptyAccessToken indicates that an empty token was about to be saved.
	ErrEmptyAccessToken = errors.New("access token cannot be empty")
)

// setDefaults registers the value of every key that the file may omit.
func setDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("max_results", 10) //nolint:mnd // Default result count.
	viper.SetDefault("request_timeout", "15s")
	viper.SetDefault("polite_delay", "800ms")
	viper.SetDefault("max_page_size", "5 MB")
	viper.SetDefault("page_cache_size", 64) //nolint:mnd // Default cache capacity.
	viper.SetDefault("fetch_mode", FetchModeHTTP)
	viper.SetDefault("excluded_terms", []string{"(Remix)", "(Live)"})
	viper.SetDefault("skip_non_songs", true)
	viper.SetDefault("ytdlp_path", "yt-dlp")
	viper.SetDefault("audio_format", constants.DefaultAudioFormat)
	viper.SetDefault("audio_quality", "0")
	viper.SetDefault("output_template", "%(title)s.%(ext)s")
	viper.SetDefault("embed_lyrics", false)
}

// LoadConfig loads configuration settings from a YAML file.
// An explicit file must exist; the default file is read only when present.
// The Genius token may also come from the environment.
func LoadConfig(configFilename string) (*Config, error) {
	viper.Reset()
	setDefaults()

	if err := viper.BindEnv(GeniusTokenKey, geniusClientTokenEnv, geniusTokenEnv); err != nil {
		return nil, fmt.Errorf("failed to bind token environment variables: %w", err)
	}

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if isExplicit || fileExists(configFilename) {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:funlen,cyclop // Validation functions naturally have high complexity and length due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.GeniusAccessToken = strings.TrimSpace(cfg.GeniusAccessToken)
	cfg.LyricsComBaseURL = cmp.Or(cfg.LyricsComBaseURL, LyricsComBaseURL)
	cfg.GeniusWebBaseURL = cmp.Or(cfg.GeniusWebBaseURL, GeniusWebBaseURL)
	cfg.GeniusAPIBaseURL = cmp.Or(cfg.GeniusAPIBaseURL, GeniusAPIBaseURL)

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if cfg.MaxResults <= 0 || cfg.MaxResults > MaxResultsLimit {
		return fmt.Errorf("%w: %d", ErrInvalidMaxResults, cfg.MaxResults)
	}

	cfg.ParsedRequestTimeout, err = time.ParseDuration(strings.TrimSpace(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedPoliteDelay, err = time.ParseDuration(strings.TrimSpace(cfg.PoliteDelay))
	if err != nil {
		return fmt.Errorf("failed to parse polite delay: %w", err)
	}

	if cfg.ParsedPoliteDelay < 0 {
		return ErrInvalidPoliteDelay
	}

	parsedMaxPageSize, err := humanize.ParseBytes(strings.TrimSpace(cfg.MaxPageSize))
	if err != nil {
		return fmt.Errorf("failed to parse max page size: %w", err)
	}

	if parsedMaxPageSize == 0 {
		return ErrInvalidMaxPageSize
	}

	// io.LimitReader accepts only int64.
	cfg.ParsedMaxPageSize = utils.SafeUint64ToInt64(parsedMaxPageSize)

	if cfg.PageCacheSize <= 0 {
		return ErrInvalidPageCacheSize
	}

	cfg.FetchMode = strings.ToLower(strings.TrimSpace(cfg.FetchMode))
	if cfg.FetchMode == "" {
		cfg.FetchMode = FetchModeHTTP
	}

	if cfg.FetchMode != FetchModeHTTP && cfg.FetchMode != FetchModeBrowser {
		return fmt.Errorf("%w: '%s'", ErrUnknownFetchMode, cfg.FetchMode)
	}

	cfg.AudioFormat = strings.ToLower(strings.TrimSpace(cfg.AudioFormat))
	if cfg.AudioFormat == "" {
		cfg.AudioFormat = constants.DefaultAudioFormat
	}

	if !slices.Contains(constants.SupportedAudioFormats(), cfg.AudioFormat) {
		return fmt.Errorf("%w: '%s'", ErrUnknownAudioFormat, cfg.AudioFormat)
	}

	if strings.TrimSpace(cfg.YtdlpPath) == "" {
		return ErrEmptyYtdlpPath
	}

	if strings.TrimSpace(cfg.OutputTemplate) == "" {
		return ErrEmptyOutputTemplate
	}

	return nil
}

// SaveConfig writes the Genius access token to the config file
// while preserving the original format and order of the other keys.
func SaveConfig(cfg *Config) error {
	token := strings.TrimSpace(cfg.GeniusAccessToken)
	if token == "" {
		return ErrEmptyAccessToken
	}

	configFile := getConfigFilePath()

	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, token, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	setTokenInNode(&node, token)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file holding only the token.
func handleMissingConfigFile(configFile, token string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content, err := yaml.Marshal(map[string]string{GeniusTokenKey: token})
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// setTokenInNode updates the token value in the YAML node tree,
// appending the key when the document does not have it yet.
func setTokenInNode(node *yaml.Node, token string) {
	// An empty file parses to a node without content.
	if len(node.Content) == 0 {
		node.Kind = yaml.DocumentNode
		node.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}

	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return
	}

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != GeniusTokenKey {
			continue
		}

		valueNode := mapNode.Content[i+1]
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = token

		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: GeniusTokenKey},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: token, Style: yaml.DoubleQuotedStyle},
	)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
