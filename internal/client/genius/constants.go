package genius

const (
	// publicAPIPrefix is the path of the public API on the web host.
	publicAPIPrefix = "api"

	// searchLyricsURI searches inside lyrics (public API).
	searchLyricsURI = "search/lyrics"
	// artistAlbumsURI lists an artist's albums (public API).
	artistAlbumsURI = "artists/%d/albums"
	// albumTracksURI lists an album's tracks (public API).
	albumTracksURI = "albums/%d/tracks"
	// searchURI searches songs by title and artist (authenticated API).
	searchURI = "search"
	// artistSongsURI lists an artist's songs (authenticated API).
	artistSongsURI = "artists/%d/songs"

	// PageSize is the number of entries requested per listing page.
	PageSize = 50

	// HitTypeSong marks search hits that are songs.
	HitTypeSong = "song"

	// lyricsContainerSelector matches the blocks that hold the lyrics on a song page.
	lyricsContainerSelector = `div[data-lyrics-container="true"]`
	// excludedFromSelectionSelector matches annotations embedded inside lyrics blocks.
	excludedFromSelectionSelector = "[data-exclude-from-selection]"
	// legacyLyricsSelector matches the lyrics block of the old page layout.
	legacyLyricsSelector = "div.lyrics"
)
