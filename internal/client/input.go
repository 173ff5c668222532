package client

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// promptLine prints prompt and reads one trimmed line.
func promptLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}

		return "", errors.Wrap(err, "read input")
	}

	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo.
func (a *App) promptPassword(prompt string) (string, error) {
	if _, err := fmt.Fprint(a.errOut, prompt+": "); err != nil {
		return "", err
	}
	pw, err := a.readPassword(a.stdinFd)
	fmt.Fprintln(a.errOut)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return string(pw), nil
}

// valueOrPrompt returns value, or asks for it when empty.
func (a *App) valueOrPrompt(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	return promptLine(a.in, a.errOut, prompt)
}
