package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/mnemosss/internal/output"
	"github.com/mrz1836/mnemosss/internal/shareblock"
	mnemoerr "github.com/mrz1836/mnemosss/pkg/errors"
)

// parseBlockCmd splits a pasted block of text into the individual share
// mnemonics it contains, without attempting to recover anything.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var parseBlockCmd = &cobra.Command{
	Use:   "parse-block [file|-]",
	Short: "Split a text block into individual share mnemonics",
	Long: `Parse a block of text — as written down on paper or pasted from a backup —
into the individual share strings it contains, without attempting to recombine
them.

Blank lines and comment lines (lines not starting with a word character)
separate shares; consecutive separators do not produce empty entries.`,
	Example: `  mnemosss parse-block shares.txt
  cat shares.txt | mnemosss parse-block
  mnemosss parse-block -`,
	Args:    cobra.MaximumNArgs(1),
	GroupID: groupCore,
	RunE:    runParseBlock,
}

// parseBlockResult is the JSON envelope for a parse-block operation.
type parseBlockResult struct {
	Shares []string `json:"shares"`
	Count  int      `json:"count"`
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(parseBlockCmd)
}

func runParseBlock(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin

	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0]) //nolint:gosec // path is an explicit CLI argument
		if err != nil {
			if os.IsNotExist(err) {
				return mnemoerr.WithSuggestion(mnemoerr.ErrNotFound, fmt.Sprintf("no such file: %s", args[0]))
			}
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}

	shares, err := shareblock.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing share block: %w", err)
	}

	w := cmd.OutOrStdout()
	if formatter.Format() == output.FormatJSON {
		return writeJSON(w, parseBlockResult{Shares: shares, Count: len(shares)})
	}

	for i, s := range shares {
		out(w, "%d: %s\n", i+1, s)
	}

	return nil
}
