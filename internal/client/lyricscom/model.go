package lyricscom

// SongPage is what a lyrics.com song page yields.
type SongPage struct {
	// URL is the absolute address of the page.
	URL string
	// Title is the song title, UnknownTitle when the page has none.
	Title string
	// Artist is the performer, UnknownArtist when the page has none.
	Artist string
	// Lyrics is the lyrics text, empty when nothing looked like lyrics.
	Lyrics string
}

// HasLyrics reports whether a lyrics body was found.
func (p *SongPage) HasLyrics() bool {
	return p != nil && p.Lyrics != ""
}
