package download

//go:generate $MOCKGEN -source=invoker.go -destination=mocks/invoker_mock.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os/exec"
	"path"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	http_transport "github.com/oshokin/lyrics-grabber/internal/transport/http"
	"github.com/oshokin/lyrics-grabber/internal/utils"
)

// Invoker downloads the audio of a chosen song.
type Invoker interface {
	// Download checks for yt-dlp, runs it and embeds lyrics when configured.
	// A non-zero yt-dlp exit yields ErrDownloadFailed together with the result.
	Download(ctx context.Context, req *DownloadRequest) (*DownloadResult, error)
}

// InvokerImpl implements Invoker.
type InvokerImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// downloader runs yt-dlp.
	downloader AudioDownloader
	// tagProcessor embeds lyrics into the downloaded file.
	tagProcessor TagProcessor
	// httpClient fetches cover art.
	httpClient *http.Client
	// lookPath resolves the yt-dlp executable.
	lookPath func(file string) (string, error)
}

// NewInvoker creates and returns a new instance of Invoker.
func NewInvoker(cfg *config.Config, downloader AudioDownloader, tagProcessor TagProcessor) Invoker {
	return &InvokerImpl{
		cfg:          cfg,
		downloader:   downloader,
		tagProcessor: tagProcessor,
		httpClient:   http_transport.NewClient(http_transport.ClientOptions{Timeout: cfg.ParsedRequestTimeout}),
		lookPath:     exec.LookPath,
	}
}

// Download checks for yt-dlp, runs it and embeds lyrics when configured.
func (i *InvokerImpl) Download(ctx context.Context, req *DownloadRequest) (*DownloadResult, error) {
	executable, err := i.lookPath(i.cfg.YtdlpPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrToolNotFound, i.cfg.YtdlpPath, err)
	}

	format, ok := ParseAudioFormat(req.Format)
	if !ok {
		logger.Warnf(ctx, "Unknown audio format '%s', using %s", req.Format, format)
	}

	query := req.SearchQuery()

	logger.Infof(ctx, "Downloading top YouTube result for: %s", query)

	result, err := i.downloader.DownloadAudio(ctx, executable, query, format)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	if result.ExitCode != 0 {
		return result, fmt.Errorf("%w: yt-dlp exited with code %d", ErrDownloadFailed, result.ExitCode)
	}

	if result.FilePath != "" {
		logger.Infof(ctx, "Saved audio to '%s'", result.FilePath)
	}

	if i.cfg.EmbedLyrics {
		i.embedLyrics(ctx, req, format, result.FilePath)
	}

	return result, nil
}

// embedLyrics writes the request metadata into the downloaded file.
// Every problem is logged as a warning; the download itself already succeeded.
func (i *InvokerImpl) embedLyrics(ctx context.Context, req *DownloadRequest, format, filePath string) {
	if !SupportsTagging(format) {
		logger.Warnf(ctx, "Skipping lyrics embedding: %v (%s)", ErrUnsupportedTagFormat, format)

		return
	}

	if filePath == "" {
		logger.Warnf(ctx, "Skipping lyrics embedding: %v", ErrEmptyTrackPath)

		return
	}

	var cover *CoverImage

	if req.ArtworkURL != "" {
		var err error

		cover, err = i.fetchArtwork(ctx, req.ArtworkURL)
		if err != nil {
			logger.Warnf(ctx, "Failed to fetch cover art: %v", err)
		}
	}

	err := i.tagProcessor.WriteTags(ctx, &WriteTagsRequest{
		TrackPath: filePath,
		Format:    format,
		Title:     req.Title,
		Artist:    req.Artist,
		Lyrics:    req.Lyrics,
		Cover:     cover,
	})
	if err != nil {
		logger.Warnf(ctx, "Failed to embed lyrics into '%s': %v", filePath, err)

		return
	}

	logger.Infof(ctx, "Embedded lyrics into '%s'", filePath)
}

func (i *InvokerImpl) fetchArtwork(ctx context.Context, artworkURL string) (*CoverImage, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, artworkURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	response, err := i.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status %d", response.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxArtworkSize+1))
	if err != nil {
		return nil, err
	}

	if len(data) > maxArtworkSize {
		return nil, fmt.Errorf("cover art exceeds %s", humanize.IBytes(maxArtworkSize))
	}

	logger.Debugf(ctx, "Fetched cover art (%s)", humanize.IBytes(uint64(len(data))))

	return &CoverImage{
		Data:     data,
		MIMEType: artworkMIMEType(response.Header.Get("Content-Type"), artworkURL),
	}, nil
}

// artworkMIMEType prefers the response header and falls back to the URL extension.
func artworkMIMEType(contentType, artworkURL string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && !utils.IsTextContentType(mediaType) {
		return mediaType
	}

	return mime.TypeByExtension(path.Ext(artworkURL))
}
