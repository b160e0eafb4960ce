package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/mnemosss/internal/frame"
	"github.com/mrz1836/mnemosss/internal/sss"
	"github.com/mrz1836/mnemosss/internal/wordlist"
	mnemoerr "github.com/mrz1836/mnemosss/pkg/errors"
)

func TestTranslateCoreError_Nil(t *testing.T) {
	assert.NoError(t, translateCoreError(nil))
}

func TestTranslateCoreError_ChecksumMismatch(t *testing.T) {
	translated := translateCoreError(frame.ErrChecksumMismatch)

	var me *mnemoerr.MnemoError
	require.True(t, errors.As(translated, &me))
	assert.Equal(t, mnemoerr.ExitChecksum, me.ExitCode)
	assert.True(t, errors.Is(translated, mnemoerr.ErrChecksumMismatch))
}

func TestTranslateCoreError_InvalidWordSuggestsNeighbor(t *testing.T) {
	good, err := wordlist.WordOf(5)
	require.NoError(t, err)

	typo := good + "x"
	_, idxErr := wordlist.IndexOf(typo)
	require.Error(t, idxErr)

	translated := translateCoreError(idxErr)

	var me *mnemoerr.MnemoError
	require.True(t, errors.As(translated, &me))
	assert.Equal(t, mnemoerr.ExitInput, me.ExitCode)
	assert.True(t, errors.Is(translated, mnemoerr.ErrInvalidWord))
	assert.Contains(t, me.Suggestion, good)
}

func TestTranslateCoreError_InvalidShareWrapsCause(t *testing.T) {
	invalidShare := &sss.InvalidShareError{Index: 2, Cause: frame.ErrChecksumMismatch}

	translated := translateCoreError(invalidShare)

	var me *mnemoerr.MnemoError
	require.True(t, errors.As(translated, &me))
	assert.Equal(t, "3", me.Details["share"])
	assert.Equal(t, mnemoerr.ExitChecksum, me.ExitCode)
}

func TestTranslateCoreError_InsufficientShares(t *testing.T) {
	insufficient := &sss.InsufficientSharesError{Have: 2, Need: 3}

	translated := translateCoreError(insufficient)

	var me *mnemoerr.MnemoError
	require.True(t, errors.As(translated, &me))
	assert.Equal(t, "2", me.Details["have"])
	assert.Equal(t, "3", me.Details["need"])
}

func TestTranslateCoreError_ThresholdTooSmall(t *testing.T) {
	translated := translateCoreError(sss.ErrThresholdTooSmall)

	var me *mnemoerr.MnemoError
	require.True(t, errors.As(translated, &me))
	assert.Equal(t, mnemoerr.ExitInput, me.ExitCode)
}
