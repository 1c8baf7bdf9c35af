package download

//go:generate $MOCKGEN -source=downloader.go -destination=mocks/downloader_mock.go

import (
	"context"
	"errors"
	"strings"

	"github.com/lrstanley/go-ytdlp"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
)

// AudioDownloader runs the external download tool.
type AudioDownloader interface {
	// DownloadAudio downloads the first YouTube hit for query as audio in the given format.
	// A non-zero exit status is reported in the result, not as an error.
	DownloadAudio(ctx context.Context, executable, query, format string) (*DownloadResult, error)
}

// YtdlpDownloader implements AudioDownloader with go-ytdlp.
type YtdlpDownloader struct {
	// audioQuality is passed to --audio-quality.
	audioQuality string
	// outputTemplate is passed to -o.
	outputTemplate string
}

// NewYtdlpDownloader creates and returns a new instance of AudioDownloader.
func NewYtdlpDownloader(cfg *config.Config) AudioDownloader {
	return &YtdlpDownloader{
		audioQuality:   cfg.AudioQuality,
		outputTemplate: cfg.OutputTemplate,
	}
}

// DownloadAudio downloads the first YouTube hit for query as audio in the given format.
func (d *YtdlpDownloader) DownloadAudio(
	ctx context.Context,
	executable string,
	query string,
	format string,
) (*DownloadResult, error) {
	command := ytdlp.New().
		SetExecutable(executable).
		ExtractAudio().
		AudioFormat(format).
		AudioQuality(d.audioQuality).
		Output(d.outputTemplate).
		Print(printFilePathTemplate)

	target := searchPrefix + query

	logger.DebugKV(ctx, "Running yt-dlp", "executable", executable, "target", target, "format", format)

	result, err := command.Run(ctx, target)
	if result == nil {
		if err == nil {
			err = ErrDownloadFailed
		}

		return nil, err
	}

	if errors.Is(err, context.Canceled) {
		return nil, err
	}

	if err != nil && result.ExitCode == 0 {
		// The process did not report a status of its own.
		return nil, err
	}

	logger.Debugf(ctx, "yt-dlp exited with code %d", result.ExitCode)

	return &DownloadResult{
		ExitCode: result.ExitCode,
		FilePath: lastLine(result.Stdout),
	}, nil
}

// lastLine returns the last non-blank line of the output.
func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")

	return strings.TrimSpace(lines[len(lines)-1])
}
