package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// Prompter asks the operator yes/no questions
type Prompter interface {
	Confirm(message string) (bool, error)
}

// IsInteractive reports whether stdin is a terminal survey can drive.
// GITSTRAP_TEST_NO_INTERACTIVE forces the line-reading fallback.
func IsInteractive() bool {
	if os.Getenv("GITSTRAP_TEST_NO_INTERACTIVE") != "" {
		return false
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewPrompter returns a survey prompter on a terminal and a line reader on
// everything else (pipes, files, CI).
func NewPrompter() Prompter {
	if IsInteractive() {
		return surveyPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}

type surveyPrompter struct{}

func (surveyPrompter) Confirm(message string) (bool, error) {
	answer := false
	prompt := &survey.Confirm{Message: message, Default: false}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return answer, nil
}

// LinePrompter writes the question and reads one line of input.
// Only "y" (any case) counts as yes.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter over the given streams
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm prints "<message> (y/n): " and reads the answer. End of input declines.
func (p *LinePrompter) Confirm(message string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s (y/n): ", message); err != nil {
		return false, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	return strings.ToLower(line) == "y", nil
}

// FixedPrompter answers every question the same way without asking
type FixedPrompter bool

// Confirm returns the fixed answer
func (p FixedPrompter) Confirm(string) (bool, error) {
	return bool(p), nil
}
