package download_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oshokin/lyrics-grabber/internal/constants"
	"github.com/oshokin/lyrics-grabber/internal/service/download"
)

func TestParseAudioFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected string
		known    bool
	}{
		{raw: "", expected: constants.AudioFormatMP3, known: true},
		{raw: "   ", expected: constants.AudioFormatMP3, known: true},
		{raw: "flac", expected: constants.AudioFormatFLAC, known: true},
		{raw: " M4A ", expected: constants.AudioFormatM4A, known: true},
		{raw: "webm", expected: constants.AudioFormatWEBM, known: true},
		{raw: "aac", expected: constants.AudioFormatAAC, known: true},
		{raw: "wav", expected: constants.AudioFormatWAV, known: true},
		{raw: "ogg", expected: constants.AudioFormatMP3, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			format, known := download.ParseAudioFormat(tt.raw)
			assert.Equal(t, tt.expected, format)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestDownloadRequest_SearchQuery(t *testing.T) {
	t.Parallel()

	req := &download.DownloadRequest{Artist: "Queen", Title: " Bohemian  Rhapsody "}
	assert.Equal(t, "Queen Bohemian Rhapsody audio", req.SearchQuery())

	req = &download.DownloadRequest{Title: "Hello"}
	assert.Equal(t, "Hello audio", req.SearchQuery())
}

func TestSupportsTagging(t *testing.T) {
	t.Parallel()

	assert.True(t, download.SupportsTagging(constants.AudioFormatMP3))
	assert.True(t, download.SupportsTagging(constants.AudioFormatFLAC))
	assert.False(t, download.SupportsTagging(constants.AudioFormatM4A))
	assert.False(t, download.SupportsTagging(constants.AudioFormatWAV))
}
