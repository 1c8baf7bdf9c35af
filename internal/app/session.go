package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/constants"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	"github.com/oshokin/lyrics-grabber/internal/prompt"
	"github.com/oshokin/lyrics-grabber/internal/service/download"
	"github.com/oshokin/lyrics-grabber/internal/service/lyrics"
)

const (
	selectLabel     = "Select a number (" + lyrics.CancelKey + " to cancel): "
	downloadLabel   = "Download audio from YouTube? [y/N]: "
	noResultsText   = "No results found."
	cancelledText   = "Cancelled."
	answerYesNoText = "Answer 'y' or 'n'."
)

// Session owns the prompt loops of one interactive run.
type Session struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// prompter reads the user's answers.
	prompter prompt.Prompter
	// presenter prints lists and lyrics.
	presenter lyrics.Presenter
	// invoker downloads audio; nil disables the download offer.
	invoker download.Invoker
}

// lyricsFetcher returns the lyrics of a selected result.
type lyricsFetcher func(ctx context.Context, result lyrics.SearchResult) (*lyrics.LyricsDocument, error)

// NewSession creates a session over the given collaborators.
func NewSession(
	cfg *config.Config,
	prompter prompt.Prompter,
	presenter lyrics.Presenter,
	invoker download.Invoker,
) *Session {
	return &Session{
		cfg:       cfg,
		prompter:  prompter,
		presenter: presenter,
		invoker:   invoker,
	}
}

// withSessionID tags every log line of the run with a fresh session ID.
func withSessionID(ctx context.Context) context.Context {
	return logger.WithKV(ctx, "session_id", uuid.NewString())
}

// ask reads one answer; a closed input becomes an input error.
func (s *Session) ask(label string) (string, error) {
	answer, err := s.prompter.Ask(label)
	if errors.Is(err, prompt.ErrEndOfInput) {
		return "", fmt.Errorf("%w: %w", lyrics.ErrInput, err)
	}

	return answer, err
}

// choose shows a list and asks for an entry until the answer is valid.
// The second value is false when the user cancelled.
func (s *Session) choose(count int, show func()) (int, bool, error) {
	show()

	for {
		raw, err := s.ask(selectLabel)
		if err != nil {
			return 0, false, err
		}

		if lyrics.IsCancel(raw) {
			s.presenter.ShowMessage(cancelledText)

			return 0, false, nil
		}

		index, err := lyrics.ParseSelection(raw, count)
		if err != nil {
			s.presenter.ShowMessage("%v", err)

			continue
		}

		return index, true, nil
	}
}

// pickAndShow lets the user pick a result, prints its lyrics and offers the download.
func (s *Session) pickAndShow(ctx context.Context, results []lyrics.SearchResult, fetch lyricsFetcher) error {
	if len(results) == 0 {
		s.presenter.ShowMessage(noResultsText)

		return nil
	}

	index, ok, err := s.choose(len(results), func() {
		s.presenter.ShowResults(results)
	})
	if err != nil || !ok {
		return err
	}

	selected := results[index]

	logger.DebugKV(ctx, "Result selected", "title", selected.Title, "artist", selected.Artist, "url", selected.URL)

	doc, err := fetch(ctx, selected)
	if err != nil {
		return err
	}

	s.presenter.ShowLyrics(doc)

	return s.offerDownload(ctx, doc)
}

// offerDownload asks whether to download the song's audio and runs the download.
// A failed download is a warning; a missing tool ends the run.
func (s *Session) offerDownload(ctx context.Context, doc *lyrics.LyricsDocument) error {
	if s.invoker == nil {
		return nil
	}

	for {
		raw, err := s.ask(downloadLabel)
		if err != nil {
			return err
		}

		wanted, err := lyrics.ParseYesNo(raw)
		if err != nil {
			s.presenter.ShowMessage(answerYesNoText)

			continue
		}

		if !wanted {
			return nil
		}

		break
	}

	formatLabel := fmt.Sprintf("Audio format (%s). Press Enter for '%s': ",
		strings.Join(constants.SupportedAudioFormats(), "/"), s.cfg.AudioFormat)

	rawFormat, err := s.ask(formatLabel)
	if err != nil {
		return err
	}

	result, err := s.invoker.Download(ctx, &download.DownloadRequest{
		Artist:     doc.Artist,
		Title:      doc.Title,
		Format:     cmp.Or(strings.TrimSpace(rawFormat), s.cfg.AudioFormat),
		Lyrics:     doc.Body,
		ArtworkURL: doc.ArtworkURL,
	})

	switch {
	case errors.Is(err, download.ErrDownloadFailed):
		logger.Warnf(ctx, "%v", err)

		return nil
	case err != nil:
		return err
	}

	if result.FilePath != "" {
		s.presenter.ShowMessage("Saved to %s", result.FilePath)
	}

	return nil
}
