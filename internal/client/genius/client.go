package genius

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	http_transport "github.com/oshokin/lyrics-grabber/internal/transport/http"
)

// Client defines the interface for interacting with Genius.
type Client interface {
	// SearchLyrics searches song lyrics for a fragment; hits keep the API order across sections.
	SearchLyrics(ctx context.Context, fragment string) ([]*Hit, error)
	// SearchSongs runs a general search, typically "title artist".
	SearchSongs(ctx context.Context, query string) ([]*Hit, error)
	// GetArtistAlbums returns one page of an artist's albums.
	GetArtistAlbums(ctx context.Context, artistID int64, page int) (*AlbumsPage, error)
	// GetAlbumTracks returns one page of an album's tracks.
	GetAlbumTracks(ctx context.Context, albumID int64, page int) (*TracksPage, error)
	// GetArtistSongs returns one page of an artist's songs.
	GetArtistSongs(ctx context.Context, artistID int64, page int) (*SongsPage, error)
	// FetchLyrics scrapes the lyrics from a song page; an empty string means the page has none.
	FetchLyrics(ctx context.Context, songURL string) (string, error)
}

// ClientImpl implements the Client interface for Genius.
type ClientImpl struct {
	// accessToken is sent as a bearer token with every request.
	accessToken string
	// publicAPIURL is the root of the public API.
	publicAPIURL string
	// apiURL is the root of the authenticated API.
	apiURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// maxPageSize caps the bytes read from a song page.
	maxPageSize int64
	// lyricsCache keeps scraped lyrics by song URL.
	lyricsCache *lru.Cache[string, string]
}

// NewClient creates and returns a new instance of ClientImpl.
// cfg.GeniusAccessToken must already be resolved.
func NewClient(cfg *config.Config) (Client, error) {
	token := strings.TrimSpace(cfg.GeniusAccessToken)
	if token == "" {
		return nil, ErrMissingAccessToken
	}

	publicAPIURL, err := url.JoinPath(cfg.GeniusWebBaseURL, publicAPIPrefix)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	if _, err = url.Parse(cfg.GeniusAPIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	lyricsCache, err := lru.New[string, string](int(cfg.PageCacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create lyrics cache: %w", err)
	}

	return &ClientImpl{
		accessToken:  token,
		publicAPIURL: publicAPIURL,
		apiURL:       cfg.GeniusAPIBaseURL,
		httpClient:   http_transport.NewClient(http_transport.ClientOptions{Timeout: cfg.ParsedRequestTimeout}),
		maxPageSize:  cfg.ParsedMaxPageSize,
		lyricsCache:  lyricsCache,
	}, nil
}

// SearchLyrics searches song lyrics for a fragment.
func (c *ClientImpl) SearchLyrics(ctx context.Context, fragment string) ([]*Hit, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, nil
	}

	response, err := fetchJSON[sectionsResponse](c, ctx, c.publicAPIURL, searchLyricsURI, url.Values{"q": {fragment}})
	if err != nil {
		return nil, err
	}

	var hits []*Hit
	for _, section := range response.Sections {
		if section != nil {
			hits = append(hits, section.Hits...)
		}
	}

	logger.Debugf(ctx, "Lyrics search for %q returned %d hits", fragment, len(hits))

	return hits, nil
}

// SearchSongs runs a general search.
func (c *ClientImpl) SearchSongs(ctx context.Context, query string) ([]*Hit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	response, err := fetchJSON[hitsResponse](c, ctx, c.apiURL, searchURI, url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Search for %q returned %d hits", query, len(response.Hits))

	return response.Hits, nil
}

// GetArtistAlbums returns one page of an artist's albums.
func (c *ClientImpl) GetArtistAlbums(ctx context.Context, artistID int64, page int) (*AlbumsPage, error) {
	return fetchJSON[AlbumsPage](c, ctx, c.publicAPIURL, fmt.Sprintf(artistAlbumsURI, artistID), pageQuery(page))
}

// GetAlbumTracks returns one page of an album's tracks.
func (c *ClientImpl) GetAlbumTracks(ctx context.Context, albumID int64, page int) (*TracksPage, error) {
	return fetchJSON[TracksPage](c, ctx, c.publicAPIURL, fmt.Sprintf(albumTracksURI, albumID), pageQuery(page))
}

// GetArtistSongs returns one page of an artist's songs.
func (c *ClientImpl) GetArtistSongs(ctx context.Context, artistID int64, page int) (*SongsPage, error) {
	return fetchJSON[SongsPage](c, ctx, c.apiURL, fmt.Sprintf(artistSongsURI, artistID), pageQuery(page))
}

// FetchLyrics scrapes the lyrics from a song page.
// Results are cached per URL, including pages without lyrics.
func (c *ClientImpl) FetchLyrics(ctx context.Context, songURL string) (string, error) {
	if cached, ok := c.lyricsCache.Get(songURL); ok {
		logger.Debugf(ctx, "Lyrics cache hit: %s", songURL)

		return cached, nil
	}

	body, err := c.downloadPage(ctx, songURL)
	if err != nil {
		return "", err
	}

	lyrics, err := parseLyricsPage(bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	c.lyricsCache.Add(songURL, lyrics)

	return lyrics, nil
}

func (c *ClientImpl) authorize(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+c.accessToken)
}

func (c *ClientImpl) downloadPage(ctx context.Context, pageURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// Song pages are public, so a 401 or 403 here is a website block, not a token problem.
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, c.maxPageSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if int64(len(body)) > c.maxPageSize {
		return nil, fmt.Errorf("%w: %s is larger than %s",
			ErrPageTooLarge, pageURL, humanize.Bytes(uint64(c.maxPageSize))) //nolint:gosec // Size is positive.
	}

	logger.Debugf(ctx, "Downloaded %s (%s)", pageURL, humanize.Bytes(uint64(len(body))))

	return body, nil
}
