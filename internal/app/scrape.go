package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/lyrics-grabber/internal/client/lyricscom"
	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	"github.com/oshokin/lyrics-grabber/internal/prompt"
	"github.com/oshokin/lyrics-grabber/internal/service/download"
	"github.com/oshokin/lyrics-grabber/internal/service/lyrics"
	"github.com/oshokin/lyrics-grabber/internal/transport/browser"
)

const queryLabel = "Enter a lyrics fragment: "

// ExecuteScrapeCommand runs one lyrics.com session reading answers from in and printing to out.
func ExecuteScrapeCommand(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	ctx = withSessionID(ctx)

	var pageFetcher browser.PageFetcher

	if cfg.FetchMode == config.FetchModeBrowser {
		pageFetcher = browser.NewFetcher(cfg.ParsedRequestTimeout)

		defer pageFetcher.Close(context.WithoutCancel(ctx))
	}

	client, err := lyricscom.NewClient(cfg, pageFetcher)
	if err != nil {
		return fmt.Errorf("failed to initialize lyrics.com client: %w", err)
	}

	logger.Debugf(ctx, "Scraping %s in %s mode", client.GetBaseURL(), cfg.FetchMode)

	var (
		service  = lyrics.NewScrapeService(cfg, client, progressWriter())
		invoker  = download.NewInvoker(cfg, download.NewYtdlpDownloader(cfg), download.NewTagProcessor())
		prompter = prompt.NewLinePrompter(in, out)
	)

	return NewSession(cfg, prompter, lyrics.NewPresenter(out), invoker).RunScrape(ctx, service)
}

// RunScrape asks for a lyrics fragment and walks the user through the matches.
func (s *Session) RunScrape(ctx context.Context, service lyrics.ScrapeService) error {
	query, err := s.ask(queryLabel)
	if err != nil {
		return err
	}

	results, err := service.Search(ctx, query)
	if err != nil {
		return err
	}

	return s.pickAndShow(ctx, results, service.FetchLyrics)
}

// progressWriter hides the progress bar when debug logs would interleave with it.
func progressWriter() io.Writer {
	if logger.IsDebugLevel() {
		return io.Discard
	}

	return os.Stderr
}
