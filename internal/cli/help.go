package cli

import (
	"github.com/spf13/cobra"
)

// walkCommands visits every command in the mnemosss tree depth-first —
// split/combine/parse-block/config/completion/version — used by the help
// and flag-documentation tests in help_test.go to audit the whole surface.
func walkCommands(cmd *cobra.Command, fn func(*cobra.Command)) {
	fn(cmd)
	for _, sub := range cmd.Commands() {
		walkCommands(sub, fn)
	}
}
