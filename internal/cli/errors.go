package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/mrz1836/mnemosss/internal/frame"
	"github.com/mrz1836/mnemosss/internal/sss"
	"github.com/mrz1836/mnemosss/internal/wordlist"
	mnemoerr "github.com/mrz1836/mnemosss/pkg/errors"
)

// quotedToken extracts the %q-quoted token from an error message produced
// by wordlist.IndexOf, so a typo suggestion can be attached.
var quotedToken = regexp.MustCompile(`"([^"]*)"`)

// translateCoreError maps an error returned by internal/sss, internal/frame,
// internal/mnemonic, or internal/wordlist onto a pkg/errors.MnemoError with
// an appropriate exit code, preserving the original error as Cause.
func translateCoreError(err error) error {
	if err == nil {
		return nil
	}

	var invalidShare *sss.InvalidShareError
	if errors.As(err, &invalidShare) {
		cause := translateCoreError(invalidShare.Cause)
		var me *mnemoerr.MnemoError
		template := mnemoerr.ErrInvalidShare
		if errors.As(cause, &me) {
			template = me
		}
		return &mnemoerr.MnemoError{
			Code:       template.Code,
			Message:    template.Message,
			Details:    map[string]string{"share": strconv.Itoa(invalidShare.Index + 1)},
			Suggestion: template.Suggestion,
			Cause:      err,
			ExitCode:   template.ExitCode,
		}
	}

	var insufficient *sss.InsufficientSharesError
	if errors.As(err, &insufficient) {
		return &mnemoerr.MnemoError{
			Code:    mnemoerr.ErrInsufficientShares.Code,
			Message: mnemoerr.ErrInsufficientShares.Message,
			Details: map[string]string{
				"have": strconv.Itoa(insufficient.Have),
				"need": strconv.Itoa(insufficient.Need),
			},
			Cause:    err,
			ExitCode: mnemoerr.ErrInsufficientShares.ExitCode,
		}
	}

	var overflow *frame.OverflowError
	if errors.As(err, &overflow) {
		return &mnemoerr.MnemoError{
			Code:     mnemoerr.ErrInvalidInput.Code,
			Message:  fmt.Sprintf("value does not fit in %d bits", overflow.Bits),
			Cause:    err,
			ExitCode: mnemoerr.ExitInput,
		}
	}

	switch {
	case errors.Is(err, frame.ErrChecksumMismatch):
		return &mnemoerr.MnemoError{
			Code:     mnemoerr.ErrChecksumMismatch.Code,
			Message:  mnemoerr.ErrChecksumMismatch.Message,
			Cause:    err,
			ExitCode: mnemoerr.ErrChecksumMismatch.ExitCode,
		}
	case errors.Is(err, wordlist.ErrInvalidWord):
		suggestion := ""
		if m := quotedToken.FindStringSubmatch(err.Error()); len(m) == 2 {
			if s := wordlist.Suggest(m[1]); s != "" {
				suggestion = fmt.Sprintf("did you mean %q?", s)
			}
		}
		return &mnemoerr.MnemoError{
			Code:       mnemoerr.ErrInvalidWord.Code,
			Message:    mnemoerr.ErrInvalidWord.Message,
			Suggestion: suggestion,
			Cause:      err,
			ExitCode:   mnemoerr.ErrInvalidWord.ExitCode,
		}
	case errors.Is(err, sss.ErrThresholdTooSmall),
		errors.Is(err, sss.ErrNotEnoughShares),
		errors.Is(err, sss.ErrTooManyShares),
		errors.Is(err, sss.ErrDuplicateShare):
		return &mnemoerr.MnemoError{
			Code:     mnemoerr.ErrInvalidInput.Code,
			Message:  err.Error(),
			Cause:    err,
			ExitCode: mnemoerr.ExitInput,
		}
	case errors.Is(err, wordlist.ErrConfiguration):
		return &mnemoerr.MnemoError{
			Code:     mnemoerr.ErrGeneral.Code,
			Message:  err.Error(),
			Cause:    err,
			ExitCode: mnemoerr.ExitGeneral,
		}
	default:
		return mnemoerr.Wrap(err, "operation failed")
	}
}
