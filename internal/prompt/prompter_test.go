package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_Ask(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	prompter := NewLinePrompter(strings.NewReader("first\r\n\nlast"), &out)

	answer, err := prompter.Ask("One: ")
	require.NoError(t, err)
	assert.Equal(t, "first", answer)

	answer, err = prompter.Ask("Two: ")
	require.NoError(t, err)
	assert.Empty(t, answer)

	answer, err = prompter.Ask("Three: ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = prompter.Ask("Four: ")
	require.ErrorIs(t, err, ErrEndOfInput)

	assert.Equal(t, "One: Two: Three: Four: ", out.String())
}

func TestLinePrompter_AskSecretWithoutTerminal(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	prompter := NewLinePrompter(strings.NewReader("token-value\n"), &out)

	answer, err := prompter.AskSecret("Token: ")
	require.NoError(t, err)
	assert.Equal(t, "token-value", answer)
	assert.Equal(t, "Token: ", out.String())

	_, err = prompter.AskSecret("Token: ")
	require.ErrorIs(t, err, ErrEndOfInput)
}
