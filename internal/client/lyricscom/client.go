package lyricscom

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	"github.com/oshokin/lyrics-grabber/internal/transport/browser"
	http_transport "github.com/oshokin/lyrics-grabber/internal/transport/http"
)

// Client defines the interface for scraping lyrics.com.
type Client interface {
	// SearchSongURLs returns up to limit song page URLs matching a lyrics fragment.
	SearchSongURLs(ctx context.Context, query string, limit int) ([]string, error)
	// FetchSongPage downloads and parses a song page, serving repeats from cache.
	FetchSongPage(ctx context.Context, songURL string) (*SongPage, error)
	// GetBaseURL returns the site root used to resolve relative links.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for lyrics.com.
type ClientImpl struct {
	// baseURL is the site root.
	baseURL *url.URL
	// httpClient downloads pages in the plain HTTP mode.
	httpClient *http.Client
	// pageFetcher renders pages in the browser mode; nil otherwise.
	pageFetcher browser.PageFetcher
	// limiter spaces consecutive page loads by the polite delay.
	limiter *rate.Limiter
	// maxPageSize caps the bytes read from one response.
	maxPageSize int64
	// pageCache keeps parsed song pages by URL.
	pageCache *lru.Cache[string, *SongPage]
}

// NewClient creates and returns a new instance of ClientImpl.
// Pages are rendered by pageFetcher when it is not nil, otherwise downloaded over HTTP.
func NewClient(cfg *config.Config, pageFetcher browser.PageFetcher) (Client, error) {
	baseURL, err := url.Parse(cfg.LyricsComBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	pageCache, err := lru.New[string, *SongPage](int(cfg.PageCacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	limit := rate.Inf
	if cfg.ParsedPoliteDelay > 0 {
		limit = rate.Every(cfg.ParsedPoliteDelay)
	}

	return &ClientImpl{
		baseURL:     baseURL,
		httpClient:  http_transport.NewClient(http_transport.ClientOptions{Timeout: cfg.ParsedRequestTimeout}),
		pageFetcher: pageFetcher,
		limiter:     rate.NewLimiter(limit, 1),
		maxPageSize: cfg.ParsedMaxPageSize,
		pageCache:   pageCache,
	}, nil
}

// SearchSongURLs returns up to limit song page URLs matching a lyrics fragment.
// A blank query returns no URLs and sends no request.
func (c *ClientImpl) SearchSongURLs(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil, nil
	}

	searchURL := c.baseURL.JoinPath(searchURI)
	searchURL.RawQuery = url.Values{
		searchQueryParam: {query},
		searchTypeParam:  {searchTypeLyrics},
	}.Encode()

	doc, err := c.loadDocument(ctx, searchURL.String())
	if err != nil {
		return nil, err
	}

	links := parseSongLinks(doc, c.baseURL, limit)

	logger.Debugf(ctx, "Search for %q returned %d song links", query, len(links))

	return links, nil
}

// FetchSongPage downloads and parses a song page.
// Parsed pages are cached, so showing the lyrics of a search result costs no request.
func (c *ClientImpl) FetchSongPage(ctx context.Context, songURL string) (*SongPage, error) {
	if cached, ok := c.pageCache.Get(songURL); ok {
		logger.Debugf(ctx, "Song page cache hit: %s", songURL)

		return cached, nil
	}

	doc, err := c.loadDocument(ctx, songURL)
	if err != nil {
		return nil, err
	}

	page := parseSongPage(doc, songURL)
	c.pageCache.Add(songURL, page)

	return page, nil
}

// GetBaseURL returns the site root used to resolve relative links.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL.String()
}

func (c *ClientImpl) loadDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if c.pageFetcher != nil {
		html, err := c.pageFetcher.FetchHTML(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}

		return parseHTML(strings.NewReader(html))
	}

	body, err := c.download(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return parseHTML(bytes.NewReader(body))
}

func (c *ClientImpl) download(ctx context.Context, pageURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	// One extra byte tells a page of exactly maxPageSize apart from a larger one.
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

func parseHTML(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHTML, err)
	}

	return doc, nil
}
