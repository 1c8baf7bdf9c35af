package lyrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/lyrics-grabber/internal/client/genius"
	"github.com/oshokin/lyrics-grabber/internal/client/lyricscom"
)

// Static error definitions for better error handling.
var (
	// ErrNetwork indicates a transport or connection failure.
	ErrNetwork = errors.New("network error")
	// ErrRemote indicates that the source answered with an error or an unusable payload.
	ErrRemote = errors.New("remote error")
	// ErrAuthentication indicates a missing or rejected access token.
	ErrAuthentication = errors.New("authentication error")
	// ErrInput indicates invalid user input.
	ErrInput = errors.New("invalid input")
)

// classifyError wraps a client error into the error taxonomy.
// Cancellation is returned untouched so callers can tell Ctrl+C from a failure.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, genius.ErrUnauthorized),
		errors.Is(err, genius.ErrMissingAccessToken):
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	case errors.Is(err, genius.ErrRequestFailed),
		errors.Is(err, lyricscom.ErrRequestFailed),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	default:
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}
}
