package download

const (
	// searchQuerySuffix biases the YouTube search towards audio uploads.
	searchQuerySuffix = "audio"
	// searchPrefix makes yt-dlp download the first YouTube search hit.
	searchPrefix = "ytsearch1:"
	// printFilePathTemplate makes yt-dlp print the final file path.
	printFilePathTemplate = "after_move:filepath"
	// maxArtworkSize caps the cover image download.
	maxArtworkSize = 10 << 20
	// lyricsDescriptor labels embedded lyrics.
	lyricsDescriptor = "Lyrics"
)
