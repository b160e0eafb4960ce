package cli

import (
	"io"

	"github.com/mrz1836/mnemosss/internal/output"
)

// writeJSON renders v as indented JSON through the package's shared
// output.Formatter — the same encoder split/combine/parse-block/config
// use for -o json, rather than re-implementing the encoder locally.
func writeJSON(w io.Writer, v any) error {
	return output.NewFormatter(output.FormatJSON, w).Print(v)
}
