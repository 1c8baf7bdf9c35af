package app

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/lyrics-grabber/internal/config"
	"github.com/oshokin/lyrics-grabber/internal/service/lyrics"
)

// Not parallel: the configuration lives in process-wide viper state and the working directory.
func TestExecuteAuthSetTokenCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GENIUS_CLIENT_ACCESS_TOKEN", "")
	t.Setenv("GENIUS_ACCESS_TOKEN", "")

	require.NoError(t, os.WriteFile(config.DefaultConfigFilename, []byte("log_level: debug\nmax_results: 5\n"), 0o600))

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	err = ExecuteAuthSetTokenCommand(context.Background(), cfg, "", strings.NewReader("secret-token\n"), new(bytes.Buffer))
	require.NoError(t, err)

	content, err := os.ReadFile(config.DefaultConfigFilename)
	require.NoError(t, err)
	assert.Equal(t, "log_level: debug\nmax_results: 5\ngenius_access_token: \"secret-token\"\n", string(content))
}

func TestExecuteAuthSetTokenCommand_EmptyToken(t *testing.T) {
	t.Chdir(t.TempDir())

	err := ExecuteAuthSetTokenCommand(context.Background(), &config.Config{}, "  ", strings.NewReader("\n"), new(bytes.Buffer))
	require.ErrorIs(t, err, lyrics.ErrInput)
	require.ErrorIs(t, err, config.ErrEmptyAccessToken)

	_, err = os.Stat(config.DefaultConfigFilename)
	require.ErrorIs(t, err, os.ErrNotExist)
}
