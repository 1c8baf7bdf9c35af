package lyrics

// SearchResult is one candidate song offered to the user.
type SearchResult struct {
	// Title is the song title.
	Title string
	// Artist is the performer.
	Artist string
	// URL is the song page; it also identifies the result.
	URL string
	// ID is the Genius song ID, zero for lyrics.com results.
	ID int64
	// ArtworkURL is the cover image, when the source has one.
	ArtworkURL string
	// Album is the album name, when the source has one.
	Album string
}

// LyricsDocument is the lyrics of a selected result.
// Title and Artist are always copied from the selected SearchResult.
type LyricsDocument struct {
	Title  string
	Artist string
	// Body is the plain-text lyrics, empty when the source returned none.
	Body string
	// URL is the page the lyrics were taken from.
	URL string
	// ArtworkURL is carried over from the result for tag embedding.
	ArtworkURL string
}

// HasBody reports whether any lyrics were returned.
func (d *LyricsDocument) HasBody() bool {
	return d != nil && d.Body != ""
}

// ArtistRef identifies a Genius artist.
type ArtistRef struct {
	ID   int64
	Name string
	URL  string
}

// AlbumRef identifies a Genius album.
type AlbumRef struct {
	ID          int64
	Name        string
	URL         string
	CoverArtURL string
}

// AlbumGroup is a set of an artist's songs sharing an album name.
type AlbumGroup struct {
	// Name is the album name or NoAlbumGroupName.
	Name  string
	Songs []SearchResult
}

// NoAlbumGroupName collects songs without an album.
const NoAlbumGroupName = "(no album)"

// newLyricsDocument builds the document for a selected result.
func newLyricsDocument(result SearchResult, body string) *LyricsDocument {
	return &LyricsDocument{
		Title:      result.Title,
		Artist:     result.Artist,
		Body:       body,
		URL:        result.URL,
		ArtworkURL: result.ArtworkURL,
	}
}
