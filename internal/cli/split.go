package cli

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"github.com/mrz1836/mnemosss/internal/output"
	"github.com/mrz1836/mnemosss/internal/sss"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	splitThreshold int
	splitShares    int
	splitLong      bool
)

// splitCmd generates a new secret and its mnemonic shares.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a new secret into mnemonic shares",
	Long: `Generate a random secret and split it into N mnemonic shares, any K of
which are sufficient to recover it.

Each share and the secret itself are rendered as a sequence of words drawn
from the mnemosss wordlist. By default the secret is drawn from a 127-bit
prime field; pass --long to use the 521-bit field instead.`,
	Example: `  mnemosss split --threshold 3 --shares 5
  mnemosss split -k 2 -n 3 --long
  mnemosss split -k 3 -n 5 -o json`,
	GroupID: groupCore,
	RunE:    runSplit,
}

// splitResult is the JSON envelope for a split operation.
type splitResult struct {
	Secret       string   `json:"secret"`
	Shares       []string `json:"shares"`
	Threshold    int      `json:"threshold"`
	ShareCount   int      `json:"share_count"`
	SecretBitLen int      `json:"secret_bit_len"`
	Long         bool     `json:"long"`
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().IntVarP(&splitThreshold, "threshold", "k", 0,
		"number of shares required to reconstruct the secret (default: config split.default_threshold)")
	splitCmd.Flags().IntVarP(&splitShares, "shares", "n", 0,
		"total number of shares to generate (default: config split.default_shares)")
	splitCmd.Flags().BoolVar(&splitLong, "long", false,
		"use the long (521-bit) prime field instead of the default 127-bit field")
}

func runSplit(cmd *cobra.Command, _ []string) error {
	threshold := splitThreshold
	if !cmd.Flags().Changed("threshold") {
		threshold = cfg.Split.DefaultThreshold
	}

	shares := splitShares
	if !cmd.Flags().Changed("shares") {
		shares = cfg.Split.DefaultShares
	}

	long := splitLong
	if !cmd.Flags().Changed("long") {
		long = cfg.Split.Long
	}

	secretMnemonic, shareMnemonics, bitLen, err := sss.Split(threshold, shares, long, rand.Reader)
	if err != nil {
		return translateCoreError(err)
	}

	logger.SplitEvent(threshold, shares, long, bitLen)

	w := cmd.OutOrStdout()
	if formatter.Format() == output.FormatJSON {
		return writeJSON(w, splitResult{
			Secret:       secretMnemonic,
			Shares:       shareMnemonics,
			Threshold:    threshold,
			ShareCount:   shares,
			SecretBitLen: bitLen,
			Long:         long,
		})
	}

	outln(w, "Secret:")
	outln(w, " ", secretMnemonic)
	outln(w)
	outln(w, "Shares (any", threshold, "of", shares, "recover the secret):")
	for i, s := range shareMnemonics {
		out(w, "  %d: %s\n", i+1, s)
	}

	return nil
}
