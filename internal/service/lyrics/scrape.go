package lyrics

//go:generate $MOCKGEN -source=scrape.go -destination=mocks/scrape_mock.go

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/oshokin/lyrics-grabber/internal/client/lyricscom"
	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
)

// ScrapeService finds lyrics by scraping lyrics.com.
type ScrapeService interface {
	// Search returns songs whose lyrics match the query, in site order.
	Search(ctx context.Context, query string) ([]SearchResult, error)
	// FetchLyrics returns the lyrics of a selected result.
	FetchLyrics(ctx context.Context, result SearchResult) (*LyricsDocument, error)
}

// ScrapeServiceImpl implements ScrapeService over the lyrics.com client.
type ScrapeServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client talks to lyrics.com.
	client lyricscom.Client
	// progressOut receives the progress bar; io.Discard hides it.
	progressOut io.Writer
}

// NewScrapeService creates and returns a new instance of ScrapeService.
func NewScrapeService(cfg *config.Config, client lyricscom.Client, progressOut io.Writer) ScrapeService {
	if progressOut == nil {
		progressOut = io.Discard
	}

	return &ScrapeServiceImpl{
		cfg:         cfg,
		client:      client,
		progressOut: progressOut,
	}
}

// Search returns songs whose lyrics match the query, in site order.
// Every candidate page is fetched for its title and artist; pages that fail are skipped.
func (s *ScrapeServiceImpl) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	songURLs, err := s.client.SearchSongURLs(ctx, query, int(s.cfg.MaxResults))
	if err != nil {
		return nil, classifyError(err)
	}

	logger.Debugf(ctx, "Search for %q returned %d song links", query, len(songURLs))

	if len(songURLs) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(songURLs),
		progressbar.OptionSetWriter(s.progressOut),
		progressbar.OptionSetDescription(progressDescription),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	defer func() {
		_ = bar.Finish()
	}()

	var (
		results = make([]SearchResult, 0, len(songURLs))
		seen    = make(map[SearchResult]struct{}, len(songURLs))
	)

	for _, songURL := range songURLs {
		page, fetchErr := s.client.FetchSongPage(ctx, songURL)

		_ = bar.Add(1)

		if fetchErr != nil {
			if errors.Is(fetchErr, context.Canceled) {
				return nil, fetchErr
			}

			logger.Warnf(ctx, "Skipping song page '%s': %v", songURL, fetchErr)

			continue
		}

		result := SearchResult{
			Title:  page.Title,
			Artist: page.Artist,
			URL:    page.URL,
		}

		if _, ok := seen[result]; ok {
			continue
		}

		seen[result] = struct{}{}

		results = append(results, result)
		if len(results) >= int(s.cfg.MaxResults) {
			break
		}
	}

	return results, nil
}

// FetchLyrics returns the lyrics of a selected result.
// Pages fetched during Search come from the client's cache.
func (s *ScrapeServiceImpl) FetchLyrics(ctx context.Context, result SearchResult) (*LyricsDocument, error) {
	page, err := s.client.FetchSongPage(ctx, result.URL)
	if err != nil {
		return nil, classifyError(err)
	}

	if !page.HasLyrics() {
		logger.Warnf(ctx, "No lyrics found on '%s'", result.URL)
	}

	return newLyricsDocument(result, page.Lyrics), nil
}
