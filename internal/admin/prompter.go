package admin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers to interactive questions.
type Prompter interface {
	ReadLine(label string) (string, error)
	// ReadPassword reads a secret without echoing it when the input is a
	// terminal.
	ReadPassword(label string) (string, error)
}

type termPrompter struct {
	in     *bufio.Reader
	fd     int
	isTerm bool
	out    io.Writer
}

// NewTermPrompter prompts on out and reads from in. Passwords are read with
// echo disabled when in is a terminal and as plain lines otherwise, so the
// tool also works with piped input.
func NewTermPrompter(in *os.File, out io.Writer) Prompter {
	fd := int(in.Fd())
	return &termPrompter{
		in:     bufio.NewReader(in),
		fd:     fd,
		isTerm: term.IsTerminal(fd),
		out:    out,
	}
}

func newLinePrompter(in io.Reader, out io.Writer) Prompter {
	return &termPrompter{in: bufio.NewReader(in), fd: -1, out: out}
}

func (p *termPrompter) ReadLine(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("%w: %s: %w", ErrReadingInput, label, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *termPrompter) ReadPassword(label string) (string, error) {
	if !p.isTerm {
		return p.ReadLine(label)
	}

	fmt.Fprintf(p.out, "%s: ", label)
	password, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadingInput, label, err)
	}
	return string(password), nil
}
