// Package errors provides structured error handling for mnemosss's CLI
// shell. It wraps the core sentinel errors returned by internal/wordlist,
// internal/mnemonic, internal/frame, internal/field, internal/sss, and
// internal/shareblock with an exit code and an optional suggestion, for
// display. It never changes what the core packages return to a Go caller.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes for the CLI.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input (bad word, bad share format, threshold/count out of range)
	ExitChecksum = 3 // Frame checksum mismatch
	ExitNotFound = 4 // Resource not found (share file, config path)
)

// MnemoError is the structured error type surfaced by the CLI shell.
type MnemoError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *MnemoError) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *MnemoError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for MnemoError.
func (e *MnemoError) Is(target error) bool {
	var t *MnemoError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &MnemoError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &MnemoError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrNotFound = &MnemoError{
		Code:     "NOT_FOUND",
		Message:  "resource not found",
		ExitCode: ExitNotFound,
	}

	ErrInvalidWord = &MnemoError{
		Code:     "INVALID_WORD",
		Message:  "mnemonic contains a word that is not in the wordlist",
		ExitCode: ExitInput,
	}

	ErrChecksumMismatch = &MnemoError{
		Code:     "CHECKSUM_MISMATCH",
		Message:  "share checksum does not match — the share was mistyped or corrupted",
		ExitCode: ExitChecksum,
	}

	ErrInvalidShare = &MnemoError{
		Code:     "INVALID_SHARE",
		Message:  "one of the supplied shares could not be parsed",
		ExitCode: ExitInput,
	}

	ErrInsufficientShares = &MnemoError{
		Code:     "INSUFFICIENT_SHARES",
		Message:  "not enough shares were supplied to meet the advertised threshold",
		ExitCode: ExitInput,
	}

	ErrConfigInvalid = &MnemoError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}
)

// New creates a new MnemoError with the given code and message.
func New(code, message string) *MnemoError {
	return &MnemoError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context, preserving its code,
// details, suggestion and exit code if it is already a MnemoError.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var me *MnemoError
	if errors.As(err, &me) {
		return &MnemoError{
			Code:       me.Code,
			Message:    fmt.Sprintf("%s: %s", msg, me.Message),
			Details:    me.Details,
			Suggestion: me.Suggestion,
			Cause:      err,
			ExitCode:   me.ExitCode,
		}
	}

	return &MnemoError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var me *MnemoError
	if errors.As(err, &me) {
		return &MnemoError{
			Code:       me.Code,
			Message:    me.Message,
			Details:    details,
			Suggestion: me.Suggestion,
			Cause:      me.Cause,
			ExitCode:   me.ExitCode,
		}
	}

	return &MnemoError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var me *MnemoError
	if errors.As(err, &me) {
		return &MnemoError{
			Code:       me.Code,
			Message:    me.Message,
			Details:    me.Details,
			Suggestion: suggestion,
			Cause:      me.Cause,
			ExitCode:   me.ExitCode,
		}
	}

	return &MnemoError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var me *MnemoError
	if errors.As(err, &me) {
		return me.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var me *MnemoError
	if errors.As(err, &me) {
		return me.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
