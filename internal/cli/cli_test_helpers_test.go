package cli

import (
	"github.com/spf13/pflag"
)

// resetCommandFlags clears the Changed bit on a command's own flags plus
// the root's persistent flags, so a flag value left over from an earlier
// Execute() call in the same test binary doesn't leak into the next one.
// Cobra's flag parser never resets Changed on its own between runs.
func resetCommandFlags(cmd interface{ Flags() *pflag.FlagSet }) {
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
}

// resetGlobalCLIState resets the package-level flag-backed globals mutated
// by split's and root's flags between test cases.
func resetGlobalCLIState() {
	homeDir = ""
	outputFormat = ""
	verbose = false
	splitThreshold = 0
	splitShares = 0
	splitLong = false
}
