package genius

type (
	// envelope wraps every Genius API payload.
	envelope[T any] struct {
		Meta     Meta `json:"meta"`
		Response T    `json:"response"`
	}

	// Meta carries the API-level status.
	Meta struct {
		Status  int    `json:"status"`
		Message string `json:"message,omitempty"`
	}

	// Artist is the artist part of a song or search hit.
	Artist struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	// AlbumInfo is the album a song belongs to, when Genius knows it.
	AlbumInfo struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	// Song is a song as returned by search and listing endpoints.
	Song struct {
		ID              int64      `json:"id"`
		Title           string     `json:"title"`
		FullTitle       string     `json:"full_title"`
		URL             string     `json:"url"`
		SongArtImageURL string     `json:"song_art_image_url"`
		HeaderImageURL  string     `json:"header_image_thumbnail_url"`
		LyricsState     string     `json:"lyrics_state"`
		Instrumental    bool       `json:"instrumental"`
		ArtistNames     string     `json:"artist_names"`
		PrimaryArtist   *Artist    `json:"primary_artist"`
		Album           *AlbumInfo `json:"album"`
	}

	// Hit is one search hit.
	Hit struct {
		Index  string `json:"index"`
		Type   string `json:"type"`
		Result *Song  `json:"result"`
	}

	// Section groups hits in a public search response.
	Section struct {
		Type string `json:"type"`
		Hits []*Hit `json:"hits"`
	}

	// Album is an entry of an artist's album list.
	Album struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		URL         string `json:"url"`
		CoverArtURL string `json:"cover_art_url"`
	}

	// Track is an entry of an album's track list.
	Track struct {
		Number int   `json:"number"`
		Song   *Song `json:"song"`
	}

	// AlbumsPage is one page of an artist's albums.
	AlbumsPage struct {
		Albums   []*Album `json:"albums"`
		NextPage int      `json:"next_page"`
	}

	// TracksPage is one page of an album's tracks.
	TracksPage struct {
		Tracks   []*Track `json:"tracks"`
		NextPage int      `json:"next_page"`
	}

	// SongsPage is one page of an artist's songs.
	SongsPage struct {
		Songs    []*Song `json:"songs"`
		NextPage int     `json:"next_page"`
	}

	sectionsResponse struct {
		Sections []*Section `json:"sections"`
	}

	hitsResponse struct {
		Hits []*Hit `json:"hits"`
	}
)

// ArtistName returns the primary artist name, falling back to the credited names.
func (s *Song) ArtistName() string {
	if s == nil {
		return ""
	}

	if s.PrimaryArtist != nil && s.PrimaryArtist.Name != "" {
		return s.PrimaryArtist.Name
	}

	return s.ArtistNames
}

// ArtworkURL returns the best cover image Genius offers for the song.
func (s *Song) ArtworkURL() string {
	if s == nil {
		return ""
	}

	if s.SongArtImageURL != "" {
		return s.SongArtImageURL
	}

	return s.HeaderImageURL
}

// AlbumName returns the album name or an empty string.
func (s *Song) AlbumName() string {
	if s == nil || s.Album == nil {
		return ""
	}

	return s.Album.Name
}
