// Package prompt reads passwords from the controlling terminal without echo.
package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when stdin is not a terminal and no password was supplied.
	ErrNotTerminal = errors.New("interactive input required: stdin is not a terminal")
	// ErrMismatch is returned when the confirmation differs from the first entry.
	ErrMismatch = errors.New("passwords do not match")
	// ErrEmpty is returned for an empty password.
	ErrEmpty = errors.New("empty password")
)

// Prompter asks for passwords on a file descriptor.
type Prompter struct {
	// Out receives the prompt text.
	Out io.Writer
	// FD is the descriptor read from.
	FD int

	isTerminal func(fd int) bool
	read       func(fd int) ([]byte, error)
}

// New returns a Prompter reading from stdin and prompting on stderr.
func New() *Prompter {
	return &Prompter{
		Out:        os.Stderr,
		FD:         int(os.Stdin.Fd()),
		isTerminal: term.IsTerminal,
		read:       term.ReadPassword,
	}
}

// WithReader replaces the terminal with read, for non-interactive callers.
func (p *Prompter) WithReader(read func(fd int) ([]byte, error)) *Prompter {
	p.isTerminal = func(int) bool { return true }
	p.read = read

	return p
}

// Password asks once, or twice when confirm is set, and returns the entry.
func (p *Prompter) Password(confirm bool) (string, error) {
	if !p.isTerminal(p.FD) {
		return "", ErrNotTerminal
	}

	first, err := p.ask("Password: ")
	if err != nil {
		return "", err
	}

	if len(first) == 0 {
		return "", ErrEmpty
	}

	if confirm {
		second, err := p.ask("Confirm password: ")
		if err != nil {
			return "", err
		}

		if !bytes.Equal(first, second) {
			return "", ErrMismatch
		}
	}

	return string(first), nil
}

func (p *Prompter) ask(label string) ([]byte, error) {
	fmt.Fprint(p.Out, label)

	pw, err := p.read(p.FD)

	fmt.Fprintln(p.Out)

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return pw, nil
}
