package constants

// Audio formats yt-dlp can extract to.
const (
	AudioFormatMP3  = "mp3"
	AudioFormatM4A  = "m4a"
	AudioFormatWEBM = "webm"
	AudioFormatAAC  = "aac"
	AudioFormatWAV  = "wav"
	AudioFormatFLAC = "flac"

	// DefaultAudioFormat is used when no format, or an unknown one, is requested.
	DefaultAudioFormat = AudioFormatMP3
)

// SupportedAudioFormats returns the accepted formats in the order they are offered to the user.
func SupportedAudioFormats() []string {
	return []string{
		AudioFormatMP3,
		AudioFormatM4A,
		AudioFormatWEBM,
		AudioFormatAAC,
		AudioFormatWAV,
		AudioFormatFLAC,
	}
}
