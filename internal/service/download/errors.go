package download

import "errors"

// Static error definitions for better error handling.
var (
	// ErrToolNotFound indicates that the yt-dlp executable could not be located.
	ErrToolNotFound = errors.New("yt-dlp not found")
	// ErrDownloadFailed indicates that yt-dlp ran but did not succeed.
	ErrDownloadFailed = errors.New("download failed")
	// ErrEmptyTrackPath indicates that the file to tag is not known.
	ErrEmptyTrackPath = errors.New("track path cannot be empty")
	// ErrUnsupportedTagFormat indicates a file type lyrics cannot be embedded into.
	ErrUnsupportedTagFormat = errors.New("lyrics embedding is not supported for this format")
	// ErrMalformedFLAC indicates a FLAC file without a readable audio stream.
	ErrMalformedFLAC = errors.New("malformed FLAC file")
)
