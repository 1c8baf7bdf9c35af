package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/logger"
	"github.com/oshokin/lyrics-grabber/internal/prompt"
	"github.com/oshokin/lyrics-grabber/internal/service/lyrics"
)

// ExecuteAuthSetTokenCommand stores a Genius access token in the configuration file.
// An empty token argument is asked for interactively.
func ExecuteAuthSetTokenCommand(ctx context.Context, cfg *config.Config, token string, in io.Reader, out io.Writer) error {
	token = strings.TrimSpace(token)
	if token == "" {
		answer, err := prompt.NewLinePrompter(in, out).AskSecret(tokenLabel)
		if err != nil {
			return fmt.Errorf("%w: %w", lyrics.ErrInput, err)
		}

		token = strings.TrimSpace(answer)
	}

	if token == "" {
		return fmt.Errorf("%w: %w", lyrics.ErrInput, config.ErrEmptyAccessToken)
	}

	cfg.GeniusAccessToken = token

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "Try searching: lyrics-grabber genius")

	return nil
}
