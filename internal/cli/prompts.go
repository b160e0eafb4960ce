package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	mnemoerr "github.com/mrz1836/mnemosss/pkg/errors"
)

// out is a helper for CLI output that ignores write errors (standard pattern for CLI tools).
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func out(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func outln(w io.Writer, args ...interface{}) {
	fmt.Fprintln(w, args...)
}

// promptShareMnemonic prompts interactively for one share's mnemonic phrase,
// reading a full line from scanner so multi-word phrases survive intact.
func promptShareMnemonic(w io.Writer, scanner *bufio.Scanner, label string) (string, error) {
	out(w, "%s: ", label)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", mnemoerr.WithSuggestion(mnemoerr.ErrInvalidInput, "no input provided")
	}

	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return "", mnemoerr.WithSuggestion(mnemoerr.ErrInvalidInput, "no input provided")
	}

	return line, nil
}
