package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/mnemosss/internal/output"
	"github.com/mrz1836/mnemosss/internal/shareblock"
	"github.com/mrz1836/mnemosss/internal/sss"
	mnemoerr "github.com/mrz1836/mnemosss/pkg/errors"
)

// combineCmd recovers a secret from a threshold of its shares.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var combineCmd = &cobra.Command{
	Use:   "combine [file|-]",
	Short: "Recover a secret from its mnemonic shares",
	Long: `Recombine a threshold of previously split shares back into the original
secret mnemonic.

Shares are read, one per paragraph, from FILE, from stdin if FILE is "-" or
omitted and stdin is piped, or interactively one line at a time (blank line
to finish) if stdin is a terminal.`,
	Example: `  mnemosss combine shares.txt
  cat shares.txt | mnemosss combine
  mnemosss combine -
  mnemosss combine`,
	Args:    cobra.MaximumNArgs(1),
	GroupID: groupCore,
	RunE:    runCombine,
}

// combineResult is the JSON envelope for a combine operation.
type combineResult struct {
	Secret     string `json:"secret"`
	SharesUsed int    `json:"shares_used"`
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	shares, err := collectShares(cmd, args)
	if err != nil {
		return err
	}

	secretMnemonic, err := sss.Combine(shares)
	if err != nil {
		return translateCoreError(err)
	}

	logger.CombineEvent(len(shares))

	w := cmd.OutOrStdout()
	if formatter.Format() == output.FormatJSON {
		return writeJSON(w, combineResult{Secret: secretMnemonic, SharesUsed: len(shares)})
	}

	outln(w, secretMnemonic)
	return nil
}

// collectShares gathers share mnemonics from a file argument, piped stdin,
// or an interactive prompt, in that priority order.
func collectShares(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) == 1 {
		return readSharesFrom(args[0])
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
		return shareblock.Parse(os.Stdin)
	}

	return promptShares(cmd)
}

func readSharesFrom(path string) ([]string, error) {
	if path == "-" {
		return shareblock.Parse(os.Stdin)
	}

	f, err := os.Open(path) //nolint:gosec // path is an explicit CLI argument
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mnemoerr.WithSuggestion(mnemoerr.ErrNotFound, fmt.Sprintf("no such file: %s", path))
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var r io.Reader = f
	return shareblock.Parse(r)
}

// promptShares interactively reads one share per line until a blank line,
// used when stdin is a terminal and no file was given.
func promptShares(cmd *cobra.Command) ([]string, error) {
	outln(cmd.OutOrStdout(), "Enter share mnemonics one per line, blank line to finish:")

	var shares []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		share, err := promptShareMnemonic(cmd.OutOrStdout(), scanner, fmt.Sprintf("Share %d", len(shares)+1))
		if err != nil {
			if len(shares) > 0 {
				break
			}
			return nil, err
		}
		shares = append(shares, share)
	}

	return shares, nil
}
