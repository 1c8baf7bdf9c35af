package download

import (
	"strings"

	"github.com/oshokin/lyrics-grabber/internal/constants"
)

// DownloadRequest describes the audio to fetch for a chosen song.
//
//nolint:revive // Exported name kept explicit for callers outside the package.
type DownloadRequest struct {
	Artist string
	Title  string
	// Format is one of constants.SupportedAudioFormats.
	Format string
	// Lyrics are embedded into the file when embedding is enabled.
	Lyrics string
	// ArtworkURL is embedded as the front cover when embedding is enabled.
	ArtworkURL string
}

// SearchQuery returns the YouTube search text for the request.
func (r *DownloadRequest) SearchQuery() string {
	return strings.Join(strings.Fields(r.Artist+" "+r.Title+" "+searchQuerySuffix), " ")
}

// DownloadResult is the outcome of one yt-dlp run.
//
//nolint:revive // Pairs with DownloadRequest.
type DownloadResult struct {
	// ExitCode is the yt-dlp process exit status.
	ExitCode int
	// FilePath is the final file yt-dlp reported, empty when unknown.
	FilePath string
}

// ParseAudioFormat normalizes a user-entered format.
// Empty input selects the default silently; unknown input selects the default and reports false.
func ParseAudioFormat(raw string) (string, bool) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		return constants.DefaultAudioFormat, true
	}

	for _, supported := range constants.SupportedAudioFormats() {
		if format == supported {
			return format, true
		}
	}

	return constants.DefaultAudioFormat, false
}
