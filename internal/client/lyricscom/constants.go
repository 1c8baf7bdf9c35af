package lyricscom

const (
	// searchURI is the path of the search results page.
	searchURI = "serp.php"
	// searchQueryParam carries the search text.
	searchQueryParam = "st"
	// searchTypeParam selects what the search matches against.
	searchTypeParam = "type"
	// searchTypeLyrics searches inside lyrics rather than titles.
	searchTypeLyrics = "lyrics"

	// songLinkPrefix marks anchors that point to song pages.
	songLinkPrefix = "/lyric/"
	// artistLinkPrefix marks anchors that point to artist pages.
	artistLinkPrefix = "/artist/"

	// lyricsBodySelector is where lyrics.com normally keeps the lyrics.
	lyricsBodySelector = "pre#lyric-body-text"
	// minLyricsLength is the length a fallback block must exceed to count as lyrics.
	minLyricsLength = 100
	// minLyricsLineBreaks is the number of line breaks a fallback div must have.
	minLyricsLineBreaks = 2

	// titleSuffix is appended to song titles in page headings.
	titleSuffix = " Lyrics"
	// artistNoise is stripped from artist headings.
	artistNoise = "Lyrics"
)

const (
	// UnknownTitle replaces a missing song title.
	UnknownTitle = "Unknown title"
	// UnknownArtist replaces a missing artist name.
	UnknownArtist = "Unknown artist"
)
