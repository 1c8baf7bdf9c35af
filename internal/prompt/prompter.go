package prompt

//go:generate $MOCKGEN -source=prompter.go -destination=mocks/prompter_mock.go

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user questions.
type Prompter interface {
	// Ask prints the label and returns the next input line without its line ending.
	Ask(label string) (string, error)
	// AskSecret is Ask without echo when the input is a terminal.
	AskSecret(label string) (string, error)
}

// LinePrompter implements Prompter over a reader and a writer.
type LinePrompter struct {
	// reader buffers the input.
	reader *bufio.Reader
	// out receives the labels.
	out io.Writer
	// terminal is the input file when it is an interactive terminal.
	terminal *os.File
}

// Static error definitions for better error handling.
var (
	// ErrEndOfInput indicates that the input closed before an answer was given.
	ErrEndOfInput = errors.New("end of input")
)

// NewLinePrompter creates and returns a new instance of Prompter.
func NewLinePrompter(in io.Reader, out io.Writer) Prompter {
	prompter := &LinePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		prompter.terminal = file
	}

	return prompter
}

// Ask prints the label and returns the next input line without its line ending.
func (p *LinePrompter) Ask(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			return "", ErrEndOfInput
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// AskSecret is Ask without echo when the input is a terminal.
func (p *LinePrompter) AskSecret(label string) (string, error) {
	if p.terminal == nil {
		return p.Ask(label)
	}

	_, _ = fmt.Fprint(p.out, label)

	secret, err := term.ReadPassword(int(p.terminal.Fd()))

	_, _ = fmt.Fprintln(p.out)

	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}
