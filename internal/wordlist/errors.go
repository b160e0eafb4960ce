package wordlist

import "errors"

var (
	// ErrConfiguration is returned when the embedded wordlist resource does
	// not contain exactly Radix unique entries. This is fatal at init.
	ErrConfiguration = errors.New("wordlist configuration is invalid")

	// ErrInvalidWord is returned when a mnemonic contains a token that is
	// not present in the wordlist.
	ErrInvalidWord = errors.New("mnemonic contains a word not in the wordlist")
)
