package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/lyrics-grabber/internal/client/genius"
	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	"github.com/oshokin/lyrics-grabber/internal/prompt"
	"github.com/oshokin/lyrics-grabber/internal/service/download"
	"github.com/oshokin/lyrics-grabber/internal/service/lyrics"
)

const (
	menuText = `Genius search modes:
1) Search by lyrics snippet
2) Search by song title
3) Search by artist (browse albums and songs)
0) Exit`
	menuLabel         = "Select an option: "
	tokenLabel        = "Genius access token: "
	snippetLabel      = "Paste a distinctive lyrics fragment: "
	titleLabel        = "Song title: "
	artistFilterLabel = "Artist to narrow results (Enter to skip): "
	artistLabel       = "Artist name: "
	searchFailedText  = "Search failed: %v"
)

// ExecuteGeniusCommand runs one Genius session reading answers from in and printing to out.
// Without a configured token the user is asked for one before anything is sent.
func ExecuteGeniusCommand(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	ctx = withSessionID(ctx)

	prompter := prompt.NewLinePrompter(in, out)

	if err := resolveAccessToken(cfg, prompter); err != nil {
		return err
	}

	client, err := genius.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize Genius client: %w", err)
	}

	var (
		service = lyrics.NewGeniusService(cfg, client)
		invoker = download.NewInvoker(cfg, download.NewYtdlpDownloader(cfg), download.NewTagProcessor())
	)

	return NewSession(cfg, prompter, lyrics.NewPresenter(out), invoker).RunGenius(ctx, service)
}

// resolveAccessToken asks for a token when none is configured.
func resolveAccessToken(cfg *config.Config, prompter prompt.Prompter) error {
	if strings.TrimSpace(cfg.GeniusAccessToken) != "" {
		return nil
	}

	token, err := prompter.AskSecret(tokenLabel)
	if err != nil && !errors.Is(err, prompt.ErrEndOfInput) {
		return err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: %w", lyrics.ErrAuthentication, genius.ErrMissingAccessToken)
	}

	cfg.GeniusAccessToken = token

	return nil
}

// RunGenius shows the search mode menu until the user exits.
// Closing the input at the menu ends the session normally.
func (s *Session) RunGenius(ctx context.Context, service lyrics.GeniusService) error {
	for {
		s.presenter.ShowMessage(menuText)

		choice, err := s.prompter.Ask(menuLabel)
		if errors.Is(err, prompt.ErrEndOfInput) {
			return nil
		}

		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.searchByLyrics(ctx, service)
		case "2":
			err = s.searchByTitle(ctx, service)
		case "3":
			err = s.browseArtist(ctx, service)
		case "0", lyrics.CancelKey:
			return nil
		default:
			s.presenter.ShowMessage("Unknown option %q.", choice)

			continue
		}

		if err != nil {
			if !isRecoverable(err) {
				return err
			}

			logger.Warnf(ctx, "Genius request failed: %v", err)
			s.presenter.ShowMessage(searchFailedText, err)
		}
	}
}

// isRecoverable reports whether the menu can continue after err.
// A rejected token, a closed input or an interrupt still end the session.
func isRecoverable(err error) bool {
	return errors.Is(err, lyrics.ErrRemote) || errors.Is(err, lyrics.ErrNetwork)
}

func (s *Session) searchByLyrics(ctx context.Context, service lyrics.GeniusService) error {
	snippet, err := s.ask(snippetLabel)
	if err != nil {
		return err
	}

	artistFilter, err := s.ask(artistFilterLabel)
	if err != nil {
		return err
	}

	results, err := service.SearchByLyrics(ctx, snippet, artistFilter)
	if err != nil {
		return err
	}

	return s.pickAndShow(ctx, results, service.FetchLyrics)
}

func (s *Session) searchByTitle(ctx context.Context, service lyrics.GeniusService) error {
	title, err := s.ask(titleLabel)
	if err != nil {
		return err
	}

	artistFilter, err := s.ask(artistFilterLabel)
	if err != nil {
		return err
	}

	results, err := service.SearchByTitle(ctx, title, artistFilter)
	if err != nil {
		return err
	}

	return s.pickAndShow(ctx, results, service.FetchLyrics)
}

// browseArtist walks artist -> album -> song.
// When the album listing fails or is empty, the artist's songs are grouped by album instead.
func (s *Session) browseArtist(ctx context.Context, service lyrics.GeniusService) error {
	name, err := s.ask(artistLabel)
	if err != nil {
		return err
	}

	artist, err := service.FindArtist(ctx, name)
	if err != nil {
		return err
	}

	if artist == nil {
		s.presenter.ShowMessage("No artist found for %q.", strings.TrimSpace(name))

		return nil
	}

	albums, err := service.ListAlbums(ctx, *artist)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, lyrics.ErrAuthentication):
		return err
	case err != nil:
		logger.Warnf(ctx, "Album listing for %s failed, grouping songs instead: %v", artist.Name, err)
	case len(albums) > 0:
		return s.browseAlbums(ctx, service, *artist, albums)
	}

	return s.browseSongGroups(ctx, service, *artist)
}

func (s *Session) browseAlbums(
	ctx context.Context,
	service lyrics.GeniusService,
	artist lyrics.ArtistRef,
	albums []lyrics.AlbumRef,
) error {
	index, ok, err := s.choose(len(albums), func() {
		s.presenter.ShowAlbums(albums)
	})
	if err != nil || !ok {
		return err
	}

	album := albums[index]

	songs, err := service.ListAlbumSongs(ctx, album)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, lyrics.ErrAuthentication):
		return err
	case err != nil:
		logger.Warnf(ctx, "Track listing for %s failed, searching the artist's songs instead: %v", album.Name, err)
	case len(songs) > 0:
		return s.pickAndShow(ctx, songs, service.FetchLyrics)
	}

	songs, err = albumSongsFromArtist(ctx, service, artist, album)
	if err != nil {
		return err
	}

	return s.pickAndShow(ctx, songs, service.FetchLyrics)
}

// albumSongsFromArtist collects the artist's songs whose album name contains the album's name.
func albumSongsFromArtist(
	ctx context.Context,
	service lyrics.GeniusService,
	artist lyrics.ArtistRef,
	album lyrics.AlbumRef,
) ([]lyrics.SearchResult, error) {
	groups, err := service.GroupArtistSongs(ctx, artist)
	if err != nil {
		return nil, err
	}

	wanted := strings.ToLower(strings.TrimSpace(album.Name))
	if wanted == "" {
		return nil, nil
	}

	var songs []lyrics.SearchResult

	for _, group := range groups {
		if group.Name == lyrics.NoAlbumGroupName {
			continue
		}

		if strings.Contains(strings.ToLower(group.Name), wanted) {
			songs = append(songs, group.Songs...)
		}
	}

	return songs, nil
}

func (s *Session) browseSongGroups(ctx context.Context, service lyrics.GeniusService, artist lyrics.ArtistRef) error {
	groups, err := service.GroupArtistSongs(ctx, artist)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		s.presenter.ShowMessage(noResultsText)

		return nil
	}

	index, ok, err := s.choose(len(groups), func() {
		s.presenter.ShowAlbumGroups(groups)
	})
	if err != nil || !ok {
		return err
	}

	return s.pickAndShow(ctx, groups[index].Songs, service.FetchLyrics)
}
