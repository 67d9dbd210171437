// Package report prints the post-load confirmation of the exported
// environment. The report is program output, not logging, so it goes
// to the given writer as plain NAME=value lines with secrets redacted.
package report

import (
	"fmt"
	"io"

	"github.com/amaumene/envrun/internal/redact"
)

// Write prints one line per allow-listed name, in order. Secrets are
// shown as their redacted preview; unset names are shown as (not set).
func Write(w io.Writer, names []string, values map[string]string, isSecret func(string) bool) {
	for _, name := range names {
		value, ok := values[name]
		switch {
		case !ok:
			fmt.Fprintf(w, "%s=(not set)\n", name)
		case isSecret(name):
			fmt.Fprintf(w, "%s=%s\n", name, redact.Preview(value))
		default:
			fmt.Fprintf(w, "%s=%s\n", name, value)
		}
	}
}
