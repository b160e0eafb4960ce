// Package shareblock groups a text stream into per-share,
// whitespace-normalized word strings, the format mnemosss shares are read
// from on disk or stdin.
package shareblock

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// wordLine matches a line whose first non-space character is a word
// character; anything else (blank lines aside) is a comment/separator.
var wordLine = regexp.MustCompile(`^\s*\w`)

// Parse reads text from r and returns the share strings it contains.
//
// Rules: each line is trimmed; a line whose first non-space character is
// not a word character is a comment and is discarded, also terminating any
// in-progress share; a blank line terminates the current share (if any);
// word lines accumulate into the current share; consecutive separators do
// not emit empty shares; any in-progress share is flushed at EOF.
func Parse(r io.Reader) ([]string, error) {
	var shares []string
	var words []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			if len(words) > 0 {
				shares = append(shares, strings.Join(words, " "))
				words = nil
			}
		case !wordLine.MatchString(line):
			// Comment/separator line: discard and close any open share.
			if len(words) > 0 {
				shares = append(shares, strings.Join(words, " "))
				words = nil
			}
		default:
			words = append(words, strings.Fields(line)...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(words) > 0 {
		shares = append(shares, strings.Join(words, " "))
	}

	return shares, nil
}

// ParseString is a convenience wrapper around Parse for in-memory text.
func ParseString(text string) ([]string, error) {
	return Parse(strings.NewReader(text))
}
