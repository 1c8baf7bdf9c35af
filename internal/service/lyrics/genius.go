package lyrics

//go:generate $MOCKGEN -source=genius.go -destination=mocks/genius_mock.go

import (
	"cmp"
	"context"
	"strings"

	"github.com/oshokin/lyrics-grabber/internal/client/genius"
	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	"github.com/oshokin/lyrics-grabber/internal/utils"
)

// GeniusService finds lyrics through the Genius API.
type GeniusService interface {
	// SearchByLyrics finds songs containing a lyrics snippet, optionally by one artist only.
	SearchByLyrics(ctx context.Context, snippet, artistFilter string) ([]SearchResult, error)
	// SearchByTitle finds songs by title, optionally by one artist only.
	SearchByTitle(ctx context.Context, title, artistFilter string) ([]SearchResult, error)
	// FindArtist resolves an artist name; nil means no artist matched.
	FindArtist(ctx context.Context, name string) (*ArtistRef, error)
	// ListAlbums returns the artist's albums.
	ListAlbums(ctx context.Context, artist ArtistRef) ([]AlbumRef, error)
	// ListAlbumSongs returns the songs of an album in track order.
	ListAlbumSongs(ctx context.Context, album AlbumRef) ([]SearchResult, error)
	// GroupArtistSongs groups the artist's songs by album name.
	GroupArtistSongs(ctx context.Context, artist ArtistRef) ([]AlbumGroup, error)
	// FetchLyrics returns the lyrics of a selected result.
	FetchLyrics(ctx context.Context, result SearchResult) (*LyricsDocument, error)
}

// GeniusServiceImpl implements GeniusService over the Genius client.
type GeniusServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client talks to Genius.
	client genius.Client
}

// NewGeniusService creates and returns a new instance of GeniusService.
func NewGeniusService(cfg *config.Config, client genius.Client) GeniusService {
	return &GeniusServiceImpl{
		cfg:    cfg,
		client: client,
	}
}

// SearchByLyrics finds songs containing a lyrics snippet.
// A non-empty artistFilter keeps only hits whose primary artist equals it, ignoring case.
func (s *GeniusServiceImpl) SearchByLyrics(
	ctx context.Context,
	snippet string,
	artistFilter string,
) ([]SearchResult, error) {
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return nil, nil
	}

	hits, err := s.client.SearchLyrics(ctx, snippet)
	if err != nil {
		return nil, classifyError(err)
	}

	return s.filterHits(hits, artistFilter), nil
}

// SearchByTitle finds songs by title.
// The artist, when given, is appended to the query and also used as a strict filter.
func (s *GeniusServiceImpl) SearchByTitle(
	ctx context.Context,
	title string,
	artistFilter string,
) ([]SearchResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}

	query := strings.TrimSpace(title + " " + strings.TrimSpace(artistFilter))

	hits, err := s.client.SearchSongs(ctx, query)
	if err != nil {
		return nil, classifyError(err)
	}

	return s.filterHits(hits, artistFilter), nil
}

// FindArtist resolves an artist name through a song search.
// An exact name match wins; otherwise the primary artist of the first song hit is used.
func (s *GeniusServiceImpl) FindArtist(ctx context.Context, name string) (*ArtistRef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil //nolint:nilnil // No name, no artist.
	}

	hits, err := s.client.SearchSongs(ctx, name)
	if err != nil {
		return nil, classifyError(err)
	}

	var fallback *genius.Artist

	for _, hit := range hits {
		if !isSongHit(hit) || hit.Result.PrimaryArtist == nil || hit.Result.PrimaryArtist.ID == 0 {
			continue
		}

		artist := hit.Result.PrimaryArtist
		if strings.EqualFold(strings.TrimSpace(artist.Name), name) {
			return toArtistRef(artist), nil
		}

		if fallback == nil {
			fallback = artist
		}
	}

	if fallback == nil {
		logger.Debugf(ctx, "No artist found for %q", name)

		return nil, nil //nolint:nilnil // Not found is not an error.
	}

	return toArtistRef(fallback), nil
}

// ListAlbums returns the artist's albums across all pages.
func (s *GeniusServiceImpl) ListAlbums(ctx context.Context, artist ArtistRef) ([]AlbumRef, error) {
	var albums []AlbumRef

	for page := 1; page != 0 && page <= maxListPages; {
		response, err := s.client.GetArtistAlbums(ctx, artist.ID, page)
		if err != nil {
			return nil, classifyError(err)
		}

		for _, album := range response.Albums {
			if album == nil || album.Name == "" {
				continue
			}

			albums = append(albums, AlbumRef{
				ID:          album.ID,
				Name:        album.Name,
				URL:         album.URL,
				CoverArtURL: album.CoverArtURL,
			})
		}

		page = response.NextPage
	}

	logger.Debugf(ctx, "Artist %q has %d albums", artist.Name, len(albums))

	return albums, nil
}

// ListAlbumSongs returns the songs of an album in track order.
// Excluded terms and non-song entries are filtered out; max_results does not apply.
func (s *GeniusServiceImpl) ListAlbumSongs(ctx context.Context, album AlbumRef) ([]SearchResult, error) {
	var songs []*genius.Song

	for page := 1; page != 0 && page <= maxListPages; {
		response, err := s.client.GetAlbumTracks(ctx, album.ID, page)
		if err != nil {
			return nil, classifyError(err)
		}

		for _, track := range response.Tracks {
			if track != nil && track.Song != nil {
				songs = append(songs, track.Song)
			}
		}

		page = response.NextPage
	}

	results := make([]SearchResult, 0, len(songs))

	for _, song := range songs {
		if !s.isWanted(song) {
			continue
		}

		result := toSearchResult(song)
		result.Album = album.Name
		result.ArtworkURL = cmp.Or(result.ArtworkURL, album.CoverArtURL)

		results = append(results, result)
	}

	return results, nil
}

// GroupArtistSongs groups the artist's songs by album name, in order of first appearance.
// Songs without an album end up in the NoAlbumGroupName group.
func (s *GeniusServiceImpl) GroupArtistSongs(ctx context.Context, artist ArtistRef) ([]AlbumGroup, error) {
	var (
		groups []AlbumGroup
		index  = make(map[string]int)
	)

	for page := 1; page != 0 && page <= maxListPages; {
		response, err := s.client.GetArtistSongs(ctx, artist.ID, page)
		if err != nil {
			return nil, classifyError(err)
		}

		for _, song := range response.Songs {
			if !s.isWanted(song) {
				continue
			}

			name := cmp.Or(strings.TrimSpace(song.AlbumName()), NoAlbumGroupName)

			position, ok := index[name]
			if !ok {
				position = len(groups)
				index[name] = position

				groups = append(groups, AlbumGroup{Name: name})
			}

			groups[position].Songs = append(groups[position].Songs, toSearchResult(song))
		}

		page = response.NextPage
	}

	return groups, nil
}

// FetchLyrics returns the lyrics of a selected result.
func (s *GeniusServiceImpl) FetchLyrics(ctx context.Context, result SearchResult) (*LyricsDocument, error) {
	body, err := s.client.FetchLyrics(ctx, result.URL)
	if err != nil {
		return nil, classifyError(err)
	}

	if body == "" {
		logger.Warnf(ctx, "No lyrics found on '%s'", result.URL)
	}

	return newLyricsDocument(result, body), nil
}

// filterHits converts hits into results in API order.
// Hits without a title, artist or URL are dropped, as are exact duplicates.
func (s *GeniusServiceImpl) filterHits(hits []*genius.Hit, artistFilter string) []SearchResult {
	var (
		artistFilterTrimmed = strings.TrimSpace(artistFilter)
		maxResults          = int(s.cfg.MaxResults)
		results             = make([]SearchResult, 0, min(len(hits), maxResults))
		seen                = make(map[SearchResult]struct{}, len(hits))
	)

	for _, hit := range hits {
		if len(results) >= maxResults {
			break
		}

		if !isSongHit(hit) || !s.isWanted(hit.Result) {
			continue
		}

		result := toSearchResult(hit.Result)
		if result.Title == "" || result.Artist == "" || result.URL == "" {
			continue
		}

		if artistFilterTrimmed != "" && !strings.EqualFold(result.Artist, artistFilterTrimmed) {
			continue
		}

		if _, ok := seen[result]; ok {
			continue
		}

		seen[result] = struct{}{}

		results = append(results, result)
	}

	return results
}

// isWanted applies the excluded terms and the non-song filter.
func (s *GeniusServiceImpl) isWanted(song *genius.Song) bool {
	if song == nil {
		return false
	}

	if utils.ContainsAnyFold(song.Title, s.cfg.ExcludedTerms) {
		return false
	}

	if s.cfg.SkipNonSongs && (song.Instrumental || utils.ContainsAnyFold(song.Title, nonSongTerms)) {
		return false
	}

	return true
}

func isSongHit(hit *genius.Hit) bool {
	return hit != nil && hit.Result != nil && (hit.Type == "" || hit.Type == genius.HitTypeSong)
}

func toSearchResult(song *genius.Song) SearchResult {
	return SearchResult{
		Title:      strings.TrimSpace(song.Title),
		Artist:     strings.TrimSpace(song.ArtistName()),
		URL:        strings.TrimSpace(song.URL),
		ID:         song.ID,
		ArtworkURL: song.ArtworkURL(),
		Album:      song.AlbumName(),
	}
}

func toArtistRef(artist *genius.Artist) *ArtistRef {
	return &ArtistRef{
		ID:   artist.ID,
		Name: artist.Name,
		URL:  artist.URL,
	}
}
